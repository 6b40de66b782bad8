package capture

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDebouncer_BounceTrainNeverStabilizes(t *testing.T) {
	d := NewDebouncer(40000)

	// Level toggles every 5 ms for 400 ms: always faster than the 40 ms
	// window, so no stable transition may be reported.
	pulses := 0
	for now := uint32(0); now < 400000; now += 1000 {
		raw := (now/5000)%2 == 1
		if d.Update(raw, now) {
			pulses++
		}
	}
	assert.Zero(t, pulses)
	assert.False(t, d.Stable())
}

func TestDebouncer_StablePressReportedOnce(t *testing.T) {
	d := NewDebouncer(40000)

	pulses := 0
	for now := uint32(0); now < 200000; now += 1000 {
		raw := now >= 10000 // pressed at 10 ms and held
		if d.Update(raw, now) {
			pulses++
			// one full window after the level change
			assert.Equal(t, uint32(50000), now)
		}
	}
	assert.Equal(t, 1, pulses)
	assert.True(t, d.Stable())
}

func TestDebouncer_ReleaseNotReported(t *testing.T) {
	d := NewDebouncer(40000)

	pulses := 0
	for now := uint32(0); now < 400000; now += 1000 {
		raw := now >= 10000 && now < 200000
		if d.Update(raw, now) {
			pulses++
		}
	}
	assert.Equal(t, 1, pulses)
	assert.False(t, d.Stable(), "release must be tracked silently")
}

func TestDebouncer_SecondPressAfterRelease(t *testing.T) {
	d := NewDebouncer(40000)

	pulses := 0
	press := func(from, to uint32) func(uint32) bool {
		return func(now uint32) bool { return now >= from && now < to }
	}
	first := press(10000, 100000)
	second := press(300000, 400000)
	for now := uint32(0); now < 500000; now += 1000 {
		if d.Update(first(now) || second(now), now) {
			pulses++
		}
	}
	assert.Equal(t, 2, pulses)
}

func TestDebouncer_CounterWraparound(t *testing.T) {
	d := NewDebouncer(40000)

	// Press lands just before the 2^32 µs wrap; the stable transition is due
	// after it.
	start := uint32(0xFFFFFFFF) - 20000
	pulses := 0
	for i := uint32(0); i < 100; i++ {
		now := start + i*1000 // wraps past zero
		if d.Update(true, now) {
			pulses++
		}
	}
	assert.Equal(t, 1, pulses)
}
