package capture

// TriggerPolicy selects how raw button levels become start pulses.
type TriggerPolicy uint8

const (
	// TriggerEdgeDebounce accepts a press only after the raw level has held
	// steady for the debounce window. Non-blocking.
	TriggerEdgeDebounce TriggerPolicy = iota
	// TriggerSimpleDelay accepts any LOW read immediately and blocks the
	// whole loop for RetriggerDelayMillis after handling it. Cheaper, but a
	// release during the blocking window is missed.
	TriggerSimpleDelay
)

// MarkerMode selects the sentinel framing on the wire.
type MarkerMode uint8

const (
	// MarkerBurst sends a 4-byte ASCII token repeated with a short pacing
	// delay between repeats, so a receiver that opens late still locks on.
	MarkerBurst MarkerMode = iota
	// MarkerLine sends a single newline-terminated text token.
	MarkerLine
)

// Profile holds the compile-time constants of one firmware variant.
type Profile struct {
	SampleRate      uint32 // Hz
	DurationSeconds uint32
	ADCBits         uint8 // raw reading resolution, 10 or 12
	BaudRate        uint32

	Trigger              TriggerPolicy
	DebounceMicros       uint32 // edge policy: minimum stable duration
	RetriggerDelayMillis uint32 // simple policy: blocking delay after a press
	GuardDelayMillis     uint32 // pause between start marker and first sample

	Markers          MarkerMode
	StartRepeats     int
	StopRepeats      int
	MarkerPaceMillis uint32
}

// MaxSamples returns the number of samples in one full session.
func (p Profile) MaxSamples() uint32 {
	return p.SampleRate * p.DurationSeconds
}

// IntervalMicros returns the sampling period in microseconds.
func (p Profile) IntervalMicros() uint32 {
	return 1000000 / p.SampleRate
}

// The three shipped variants.
var (
	// ProfileRobust is the 8 kHz / 10-bit board with an edge-debounced
	// trigger and repeated STRT/DONE sentinels.
	ProfileRobust = Profile{
		SampleRate:       8000,
		DurationSeconds:  15,
		ADCBits:          10,
		BaudRate:         500000,
		Trigger:          TriggerEdgeDebounce,
		DebounceMicros:   40000,
		GuardDelayMillis: 20,
		Markers:          MarkerBurst,
		StartRepeats:     25,
		StopRepeats:      10,
		MarkerPaceMillis: 2,
	}

	// ProfileSimple is the same board with the blocking-delay trigger.
	ProfileSimple = Profile{
		SampleRate:           8000,
		DurationSeconds:      15,
		ADCBits:              10,
		BaudRate:             500000,
		Trigger:              TriggerSimpleDelay,
		RetriggerDelayMillis: 200,
		GuardDelayMillis:     20,
		Markers:              MarkerBurst,
		StartRepeats:         25,
		StopRepeats:          10,
		MarkerPaceMillis:     2,
	}

	// ProfileESP32 is the 16 kHz / 12-bit variant with textual START/STOP
	// lines on a faster serial link.
	ProfileESP32 = Profile{
		SampleRate:           16000,
		DurationSeconds:      15,
		ADCBits:              12,
		BaudRate:             921600,
		Trigger:              TriggerSimpleDelay,
		RetriggerDelayMillis: 200,
		GuardDelayMillis:     20,
		Markers:              MarkerLine,
		StartRepeats:         1,
		StopRepeats:          1,
	}
)

var profilesByName = map[string]Profile{
	"robust": ProfileRobust,
	"simple": ProfileSimple,
	"esp32":  ProfileESP32,
}

// ProfileByName looks up a shipped variant for the host-side tools.
func ProfileByName(name string) (Profile, bool) {
	p, ok := profilesByName[name]
	return p, ok
}
