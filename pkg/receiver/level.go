package receiver

import "github.com/chewxy/math32"

// Level summarizes the loudness of a stretch of samples, normalized to full
// scale (1.0 = ±32768).
type Level struct {
	RMS  float32
	Peak float32
}

// Measure computes the RMS and peak amplitude of the samples.
func Measure(samples []int16) Level {
	if len(samples) == 0 {
		return Level{}
	}

	var sum, peak float32
	for _, s := range samples {
		v := float32(s) / 32768
		if v < 0 {
			v = -v
		}
		if v > peak {
			peak = v
		}
		sum += v * v
	}
	return Level{
		RMS:  math32.Sqrt(sum / float32(len(samples))),
		Peak: peak,
	}
}
