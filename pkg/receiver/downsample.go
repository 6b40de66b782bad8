package receiver

import "strings"

// Downsample decimates samples to at most maxPoints values for display.
// Destination-based: reuses dst if it has sufficient capacity, otherwise
// allocates. Returns the destination slice.
func Downsample(dst []int16, samples []int16, maxPoints int) []int16 {
	if len(samples) <= maxPoints {
		if cap(dst) >= len(samples) {
			dst = dst[:len(samples)]
			copy(dst, samples)
			return dst
		}
		result := make([]int16, len(samples))
		copy(result, samples)
		return result
	}

	if cap(dst) >= maxPoints {
		dst = dst[:0]
	} else {
		dst = make([]int16, 0, maxPoints)
	}

	step := float64(len(samples)) / float64(maxPoints)
	for i := 0; i < maxPoints; i++ {
		idx := int(float64(i) * step)
		if idx < len(samples) {
			dst = append(dst, samples[idx])
		}
	}
	return dst
}

var envelopeRamp = []rune(" .:-=+*#%@")

// Envelope renders a compact one-line amplitude view of the samples, width
// characters wide. Each character maps the peak amplitude of its bucket onto
// a density ramp.
func Envelope(samples []int16, width int) string {
	if width <= 0 || len(samples) == 0 {
		return ""
	}
	if width > len(samples) {
		width = len(samples)
	}

	var sb strings.Builder
	bucket := len(samples) / width
	for i := 0; i < width; i++ {
		var peak int32
		for _, s := range samples[i*bucket : (i+1)*bucket] {
			v := int32(s)
			if v < 0 {
				v = -v
			}
			if v > peak {
				peak = v
			}
		}
		idx := int(peak * int32(len(envelopeRamp)-1) / 32768)
		sb.WriteRune(envelopeRamp[idx])
	}
	return sb.String()
}
