package capture

import "io"

// Sentinel tokens shared by the firmware and the host-side receiver.
const (
	StartToken = "STRT"
	StopToken  = "DONE"
	StartLine  = "START\n"
	StopLine   = "STOP\n"
)

// MarkerKind identifies a sentinel marker.
type MarkerKind uint8

const (
	MarkerStart MarkerKind = iota
	MarkerStop
)

// Emitter writes sentinel markers and PCM samples onto the serial byte
// stream. There is no flow control: a slow sink blocks the write, which in
// turn stalls the sampling loop.
type Emitter struct {
	w       io.Writer
	profile Profile
	pace    func(ms uint32)
	buf     [2]byte
}

// NewEmitter wraps w with the profile's framing. pace blocks between marker
// repeats in burst mode; nil disables pacing.
func NewEmitter(w io.Writer, p Profile, pace func(ms uint32)) *Emitter {
	if pace == nil {
		pace = func(uint32) {}
	}
	return &Emitter{w: w, profile: p, pace: pace}
}

// WriteMarker emits the start or stop sentinel. In burst mode the 4-byte
// token is repeated with a pacing delay after each repeat; in line mode a
// single newline-terminated token is written.
func (e *Emitter) WriteMarker(kind MarkerKind) error {
	if e.profile.Markers == MarkerLine {
		tok := StartLine
		if kind == MarkerStop {
			tok = StopLine
		}
		_, err := io.WriteString(e.w, tok)
		return err
	}

	tok, repeats := StartToken, e.profile.StartRepeats
	if kind == MarkerStop {
		tok, repeats = StopToken, e.profile.StopRepeats
	}
	for i := 0; i < repeats; i++ {
		if _, err := io.WriteString(e.w, tok); err != nil {
			return err
		}
		e.pace(e.profile.MarkerPaceMillis)
	}
	return nil
}

// WriteSample writes v as exactly 2 bytes, little-endian two's complement,
// with no delimiter. The receiver counts bytes to stay synchronized.
func (e *Emitter) WriteSample(v int16) error {
	e.buf[0] = byte(uint16(v))
	e.buf[1] = byte(uint16(v) >> 8)
	_, err := e.w.Write(e.buf[:])
	return err
}
