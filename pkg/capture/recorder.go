package capture

import (
	"context"
	"io"
)

// State of the recording loop.
type State uint8

const (
	Idle State = iota
	Recording
)

// Recorder is the whole device: a debounced trigger, a fixed-rate sampling
// scheduler and a framed serial emitter driven by one cooperative loop. All
// state lives in this struct and is touched only by the loop; nothing is
// allocated on the sampling path.
type Recorder struct {
	board   Board
	profile Profile
	emitter *Emitter

	debouncer Debouncer
	clock     SampleClock
	state     State
	count     uint32
}

// NewRecorder wires a board and an output byte stream into a recorder using
// the given variant profile. The recorder starts Idle with the LED off.
func NewRecorder(board Board, w io.Writer, p Profile) *Recorder {
	return &Recorder{
		board:     board,
		profile:   p,
		emitter:   NewEmitter(w, p, board.Sleep),
		debouncer: NewDebouncer(p.DebounceMicros),
		clock:     NewSampleClock(p.IntervalMicros()),
	}
}

// State returns the current loop state.
func (r *Recorder) State() State {
	return r.state
}

// SampleCount returns the number of samples emitted in the current session.
func (r *Recorder) SampleCount() uint32 {
	return r.count
}

// Tick runs one iteration of the control loop: poll the trigger, and while
// recording take at most one sample if the interval has elapsed. Errors come
// only from the output stream; real UARTs never report one.
func (r *Recorder) Tick() error {
	now := r.board.Micros()
	pressed := !r.board.ReadButton() // pull-up wiring, LOW = pressed

	var pulse bool
	switch r.profile.Trigger {
	case TriggerSimpleDelay:
		pulse = pressed
	default:
		pulse = r.debouncer.Update(pressed, now)
	}

	switch r.state {
	case Idle:
		if !pulse {
			return nil
		}
		if r.profile.Trigger == TriggerSimpleDelay {
			// Blocks everything, including sampling. Accepted trade-off
			// of the simple variants.
			r.board.Sleep(r.profile.RetriggerDelayMillis)
		}
		return r.begin()

	case Recording:
		// A press mid-session is ignored; the session always runs to its
		// sample-count threshold.
		if !r.clock.Due(now) {
			return nil
		}
		raw := r.board.ReadMic()
		if err := r.emitter.WriteSample(PCM(raw, r.profile.ADCBits)); err != nil {
			return err
		}
		r.count++
		if r.count >= r.profile.MaxSamples() {
			return r.finish()
		}
	}
	return nil
}

// begin starts a session: counter reset, LED on, start sentinel, then a short
// guard delay so the receiver can lock onto the marker stream before PCM
// bytes follow.
func (r *Recorder) begin() error {
	r.count = 0
	r.board.SetLED(true)
	if err := r.emitter.WriteMarker(MarkerStart); err != nil {
		return err
	}
	r.board.Sleep(r.profile.GuardDelayMillis)
	r.state = Recording
	r.clock.Reset(r.board.Micros())
	return nil
}

// finish ends a session: LED off, stop sentinel, back to Idle.
func (r *Recorder) finish() error {
	r.board.SetLED(false)
	r.state = Idle
	return r.emitter.WriteMarker(MarkerStop)
}

// Run drives the loop until ctx is cancelled or the output stream fails. On
// hardware the stream never fails and ctx is context.Background, so Run
// effectively loops forever.
func (r *Recorder) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := r.Tick(); err != nil {
			return err
		}
	}
}
