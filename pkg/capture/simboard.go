package capture

// SimBoard is an in-memory Board for tests and the mock link device. Time is
// virtual: every Micros call advances the clock by Step and Sleep advances it
// by the full blocking duration, so the loop schedules exactly as it would on
// hardware without any wall-clock waiting.
type SimBoard struct {
	Now  uint32 // virtual time, µs
	Step uint32 // loop overhead applied by each Micros call

	// ButtonLowAt reports whether the trigger pin reads LOW (pressed) at the
	// given virtual time. Nil means never pressed.
	ButtonLowAt func(nowMicros uint32) bool

	// MicAt produces the raw ADC reading for a conversion at the given
	// virtual time. Nil reads zero.
	MicAt func(nowMicros uint32) uint16

	LED       bool
	LEDWrites int
}

var _ Board = (*SimBoard)(nil)

func (b *SimBoard) ReadButton() bool {
	low := b.ButtonLowAt != nil && b.ButtonLowAt(b.Now)
	return !low // electrical level: HIGH when released
}

func (b *SimBoard) ReadMic() uint16 {
	if b.MicAt == nil {
		return 0
	}
	return b.MicAt(b.Now)
}

func (b *SimBoard) SetLED(on bool) {
	b.LED = on
	b.LEDWrites++
}

func (b *SimBoard) Micros() uint32 {
	now := b.Now
	b.Now += b.Step
	return now
}

func (b *SimBoard) Sleep(ms uint32) {
	b.Now += ms * 1000
}
