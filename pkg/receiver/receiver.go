package receiver

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Tawfiq06/MakeUofT/pkg/capture"
)

// Recording is one decoded capture session.
type Recording struct {
	Samples []int16
	Rate    int // Hz
}

// Duration returns the audio length of the recording.
func (r Recording) Duration() time.Duration {
	if r.Rate == 0 {
		return 0
	}
	return time.Duration(len(r.Samples)) * time.Second / time.Duration(r.Rate)
}

// Scanner locates capture sessions on a raw serial byte stream. The wire has
// no length framing: the scanner resynchronizes on the start sentinel, reads
// the fixed-size payload, then confirms the stop sentinel. Anything between
// sessions (trailing stop repeats, line noise) is skipped by the next start
// scan.
type Scanner struct {
	r       *bufio.Reader
	profile capture.Profile
}

// NewScanner wraps r using the variant's sentinel framing and payload size.
func NewScanner(r io.Reader, p capture.Profile) *Scanner {
	return &Scanner{r: bufio.NewReaderSize(r, 64<<10), profile: p}
}

// Next blocks until one full session has been read and decoded. It returns a
// wrapped io.EOF when the stream ends before another session starts.
func (s *Scanner) Next() (Recording, error) {
	if err := s.syncStart(); err != nil {
		return Recording{}, fmt.Errorf("start marker: %w", err)
	}

	payload := make([]byte, 2*s.profile.MaxSamples())
	if _, err := io.ReadFull(s.r, payload); err != nil {
		return Recording{}, fmt.Errorf("payload truncated: %w", err)
	}

	if err := s.syncStop(); err != nil {
		return Recording{}, fmt.Errorf("stop marker: %w", err)
	}

	samples := make([]int16, len(payload)/2)
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(payload[2*i:]))
	}
	return Recording{Samples: samples, Rate: int(s.profile.SampleRate)}, nil
}

// syncStart consumes bytes until the start sentinel has passed. In burst mode
// the remaining repeats of the token are consumed too, so the payload begins
// at the read position.
func (s *Scanner) syncStart() error {
	if s.profile.Markers == capture.MarkerLine {
		// START is a clean text line before any binary payload. Junk from a
		// partially observed previous session may share the line, so match
		// the suffix only.
		for {
			line, err := s.r.ReadString('\n')
			if err != nil {
				return err
			}
			if strings.HasSuffix(strings.TrimRight(line, "\r\n"), "START") {
				return nil
			}
		}
	}

	if err := s.scanFor([]byte(capture.StartToken), 0); err != nil {
		return err
	}
	// Skip the rest of the repetition burst. Bounded by the profile so a
	// payload that happens to begin with the token bytes is not eaten.
	for i := 1; i < s.profile.StartRepeats; i++ {
		peek, err := s.r.Peek(len(capture.StartToken))
		if err != nil || string(peek) != capture.StartToken {
			break
		}
		if _, err := s.r.Discard(len(capture.StartToken)); err != nil {
			return err
		}
	}
	return nil
}

// syncStop confirms the stop sentinel right after the payload. A small slack
// allows stray bytes, but an absent marker is an error: the payload boundary
// was lost and the recording cannot be trusted.
func (s *Scanner) syncStop() error {
	tok := []byte(capture.StopToken)
	limit := len(tok)*s.profile.StopRepeats + 64
	if s.profile.Markers == capture.MarkerLine {
		tok = []byte(capture.StopLine)
		limit = len(tok) + 64
	}
	return s.scanFor(tok, limit)
}

// scanFor reads until token passes through a rolling window. limit bounds the
// number of bytes consumed; 0 means unbounded.
func (s *Scanner) scanFor(token []byte, limit int) error {
	tail := make([]byte, 0, len(token))
	for n := 0; ; n++ {
		if limit > 0 && n >= limit {
			return fmt.Errorf("%q not found within %d bytes", token, limit)
		}
		b, err := s.r.ReadByte()
		if err != nil {
			return err
		}
		if len(tail) == len(token) {
			copy(tail, tail[1:])
			tail[len(tail)-1] = b
		} else {
			tail = append(tail, b)
		}
		if bytes.Equal(tail, token) {
			return nil
		}
	}
}
