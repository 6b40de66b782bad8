package capture

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSampleClock_SpacingAt8kHz(t *testing.T) {
	c := NewSampleClock(125)

	var accepted []uint32
	for now := uint32(0); now < 10000; now += 50 {
		if c.Due(now) {
			accepted = append(accepted, now)
		}
	}

	assert.NotEmpty(t, accepted)
	for i := 1; i < len(accepted); i++ {
		assert.GreaterOrEqual(t, accepted[i]-accepted[i-1], uint32(125),
			"accepted samples %d and %d too close", i-1, i)
	}
}

func TestSampleClock_AtMostOnePerCall(t *testing.T) {
	c := NewSampleClock(125)
	c.Reset(0)

	// A long stall covers many intervals, but only one sample is accepted
	// and the reference snaps to the current reading.
	assert.True(t, c.Due(10000))
	assert.False(t, c.Due(10050))
	assert.False(t, c.Due(10100))
	assert.True(t, c.Due(10125))
}

func TestSampleClock_NotDueBeforeInterval(t *testing.T) {
	c := NewSampleClock(125)
	c.Reset(1000)

	assert.False(t, c.Due(1000))
	assert.False(t, c.Due(1124))
	assert.True(t, c.Due(1125))
}

func TestSampleClock_CounterWraparound(t *testing.T) {
	c := NewSampleClock(125)
	c.Reset(0xFFFFFF00)

	assert.False(t, c.Due(0xFFFFFF50)) // 80 µs elapsed
	assert.True(t, c.Due(0x00000050))  // 336 µs elapsed across the wrap
	assert.False(t, c.Due(0x00000060))
}
