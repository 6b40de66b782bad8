package capture

// SampleClock gates ADC conversions at a fixed period against a wrapping
// microsecond counter. At most one conversion is accepted per call: if the
// loop stalls past several intervals, the missed samples are skipped rather
// than burst out, and the reference point snaps to the current reading so
// jitter does not accumulate.
type SampleClock struct {
	interval uint32
	last     uint32
}

// NewSampleClock returns a clock with the given period in microseconds.
func NewSampleClock(intervalMicros uint32) SampleClock {
	return SampleClock{interval: intervalMicros}
}

// Due reports whether a sample should be taken now and, if so, latches now as
// the new reference point. The subtraction is unsigned, so counter wraparound
// is handled for any gap below 2^32 µs.
func (c *SampleClock) Due(nowMicros uint32) bool {
	if nowMicros-c.last < c.interval {
		return false
	}
	c.last = nowMicros
	return true
}

// Reset re-arms the clock so the next sample is due one full interval after
// now. Called when a session starts, after the guard delay.
func (c *SampleClock) Reset(nowMicros uint32) {
	c.last = nowMicros
}
