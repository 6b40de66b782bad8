package capture

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// shortSession trims a shipped profile to a 1-second capture so the virtual
// clock does not have to cover 15 s of audio per test.
func shortSession(p Profile) Profile {
	p.DurationSeconds = 1
	return p
}

func runUntil(t *testing.T, r *Recorder, cond func() bool, maxTicks int) {
	t.Helper()
	for i := 0; i < maxTicks; i++ {
		require.NoError(t, r.Tick())
		if cond() {
			return
		}
	}
	t.Fatalf("condition not reached after %d ticks", maxTicks)
}

func TestRecorder_FullSession(t *testing.T) {
	prof := shortSession(ProfileRobust)
	var sampleTimes []uint32
	board := &SimBoard{
		Step: 50,
		ButtonLowAt: func(now uint32) bool {
			return now >= 10000 && now < 150000
		},
		MicAt: func(now uint32) uint16 {
			sampleTimes = append(sampleTimes, now)
			return 512
		},
	}
	var buf bytes.Buffer
	r := NewRecorder(board, &buf, prof)

	runUntil(t, r, func() bool { return r.State() == Recording }, 10000)
	assert.True(t, board.LED, "LED on while recording")

	runUntil(t, r, func() bool { return r.State() == Idle }, 200000)
	assert.False(t, board.LED, "LED off after the session")
	assert.Equal(t, 2, board.LEDWrites)

	// 25 start tokens, exactly maxSamples 2-byte samples, 10 stop tokens.
	stream := buf.Bytes()
	require.Len(t, stream, 100+2*int(prof.MaxSamples())+40)
	assert.Equal(t, strings.Repeat(StartToken, 25), string(stream[:100]))
	assert.Equal(t, strings.Repeat(StopToken, 10), string(stream[len(stream)-40:]))

	// Midpoint input maps to all-zero payload.
	payload := stream[100 : len(stream)-40]
	assert.Equal(t, make([]byte, len(payload)), payload)

	// No two conversions closer than the sampling interval.
	require.Len(t, sampleTimes, int(prof.MaxSamples()))
	for i := 1; i < len(sampleTimes); i++ {
		assert.GreaterOrEqual(t, sampleTimes[i]-sampleTimes[i-1], prof.IntervalMicros())
	}
}

func TestRecorder_RetriggerDuringSessionIgnored(t *testing.T) {
	prof := shortSession(ProfileRobust)
	board := &SimBoard{
		Step: 50,
		ButtonLowAt: func(now uint32) bool {
			first := now >= 10000 && now < 100000
			second := now >= 500000 && now < 600000 // mid-capture
			return first || second
		},
		MicAt: func(uint32) uint16 { return 512 },
	}
	var buf bytes.Buffer
	r := NewRecorder(board, &buf, prof)

	runUntil(t, r, func() bool { return r.State() == Recording }, 10000)
	runUntil(t, r, func() bool { return r.State() == Idle }, 200000)

	// The second press must leave no trace: one start burst, one session
	// worth of payload, one stop burst, two LED writes.
	stream := buf.String()
	assert.Equal(t, 25, strings.Count(stream, StartToken))
	assert.Equal(t, 10, strings.Count(stream, StopToken))
	assert.Len(t, stream, 100+2*int(prof.MaxSamples())+40)
	assert.Equal(t, 2, board.LEDWrites)
}

// A press held long past the session end under the blocking-delay policy: the
// session still runs to exactly maxSamples and is neither aborted nor
// restarted mid-capture.
func TestRecorder_SimplePolicyHeldPress(t *testing.T) {
	prof := shortSession(ProfileSimple)
	board := &SimBoard{
		Step:        50,
		ButtonLowAt: func(uint32) bool { return true },
		MicAt:       func(uint32) uint16 { return 1023 },
	}
	var buf bytes.Buffer
	r := NewRecorder(board, &buf, prof)

	runUntil(t, r, func() bool { return r.State() == Recording }, 100)
	// The 200 ms retrigger delay plus marker pacing and the guard interval
	// all block on virtual time.
	assert.Greater(t, board.Now, uint32(200000))

	runUntil(t, r, func() bool { return r.State() == Idle }, 200000)

	stream := buf.Bytes()
	require.Len(t, stream, 100+2*int(prof.MaxSamples())+40)

	// Full-scale input maps every sample to 32704 = 0x7FC0.
	payload := stream[100 : len(stream)-40]
	for i := 0; i < len(payload); i += 2 {
		require.Equal(t, byte(0xC0), payload[i])
		require.Equal(t, byte(0x7F), payload[i+1])
	}
	assert.Equal(t, uint32(prof.MaxSamples()), r.SampleCount())
}

func TestRecorder_IdleUntilPressed(t *testing.T) {
	board := &SimBoard{Step: 50}
	var buf bytes.Buffer
	r := NewRecorder(board, &buf, shortSession(ProfileRobust))

	for i := 0; i < 10000; i++ {
		require.NoError(t, r.Tick())
	}
	assert.Equal(t, Idle, r.State())
	assert.Zero(t, buf.Len())
	assert.Zero(t, board.LEDWrites)
}
