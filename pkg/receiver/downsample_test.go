package receiver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDownsample(t *testing.T) {
	samples := make([]int16, 1000)
	for i := range samples {
		samples[i] = int16(i)
	}

	t.Run("fewer samples than points copies all", func(t *testing.T) {
		got := Downsample(nil, samples[:10], 100)
		assert.Equal(t, samples[:10], got)
	})

	t.Run("decimates to maxPoints", func(t *testing.T) {
		got := Downsample(nil, samples, 100)
		assert.Len(t, got, 100)
		assert.Equal(t, int16(0), got[0])
		assert.Equal(t, int16(990), got[99])
	})

	t.Run("reuses dst capacity", func(t *testing.T) {
		dst := make([]int16, 0, 100)
		got := Downsample(dst, samples, 100)
		assert.Len(t, got, 100)
		assert.Equal(t, cap(dst), cap(got), "dst should be reused")
	})

	t.Run("allocates when dst too small", func(t *testing.T) {
		dst := make([]int16, 0, 10)
		got := Downsample(dst, samples, 100)
		assert.Len(t, got, 100)
	})
}

func TestEnvelope(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, "", Envelope(nil, 40))
		assert.Equal(t, "", Envelope([]int16{1}, 0))
	})

	t.Run("silence renders spaces", func(t *testing.T) {
		assert.Equal(t, "    ", Envelope(make([]int16, 400), 4))
	})

	t.Run("loud half renders denser than quiet half", func(t *testing.T) {
		samples := make([]int16, 400)
		for i := 200; i < 400; i++ {
			samples[i] = 32000
		}
		env := Envelope(samples, 4)
		assert.Len(t, env, 4)
		assert.Equal(t, ' ', rune(env[0]))
		assert.NotEqual(t, ' ', rune(env[3]))
	})
}
