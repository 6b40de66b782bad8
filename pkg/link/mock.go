package link

import (
	"context"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"github.com/chewxy/math32"

	"github.com/Tawfiq06/MakeUofT/pkg/capture"
	"github.com/Tawfiq06/MakeUofT/pkg/config"
	"github.com/Tawfiq06/MakeUofT/pkg/receiver"
)

// Mock simulates the device end to end: a simulated board with a virtual
// clock drives the real firmware loop, whose byte stream runs through an
// in-process pipe into the standard session decoder. Useful for development
// without hardware and for exercising the whole stack in tests.
type Mock struct {
	cfg     *config.MockConfig
	profile capture.Profile

	recordings chan receiver.Recording
	mu         sync.RWMutex
	ctx        context.Context
	cancel     context.CancelFunc
	done       chan struct{}
	connected  bool

	pr *io.PipeReader
	pw *io.PipeWriter
}

// NewMock creates a mocked device for the given variant. A nil cfg uses
// defaults; cfg.SessionSeconds shortens the capture length so simulated
// sessions stay small.
func NewMock(cfg *config.MockConfig, p capture.Profile) *Mock {
	if cfg == nil {
		cfg = &config.Default().Mock
	}
	if cfg.SessionSeconds > 0 {
		p.DurationSeconds = cfg.SessionSeconds
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Mock{
		cfg:        cfg,
		profile:    p,
		recordings: make(chan receiver.Recording, DefaultBufferSize),
		ctx:        ctx,
		cancel:     cancel,
		done:       make(chan struct{}),
	}
}

// Connect starts the simulated firmware loop.
func (m *Mock) Connect() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.connected {
		return fmt.Errorf("already connected")
	}

	m.pr, m.pw = io.Pipe()
	rec := capture.NewRecorder(m.board(), m.pw, m.profile)

	go func() {
		err := rec.Run(m.ctx)
		if err := m.pw.CloseWithError(err); err != nil {
			log.Printf("Error closing mock pipe: %v", err)
		}
	}()
	go decodeSessions(m.ctx, m.pr, m.profile, m.recordings, m.done)

	m.connected = true
	return nil
}

// Close stops the simulated device.
func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.connected {
		return nil
	}

	m.cancel()
	// Unblock the firmware loop if it is mid-write.
	m.pr.CloseWithError(io.ErrClosedPipe)
	m.connected = false

	<-m.done
	close(m.recordings)

	return nil
}

// Recordings returns the channel of decoded sessions.
func (m *Mock) Recordings() <-chan receiver.Recording {
	return m.recordings
}

// IsConnected returns whether the device is currently connected.
func (m *Mock) IsConnected() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.connected
}

// board builds the simulated hardware: a periodically pressed button and a
// microphone carrying a sine tone with a little pseudo-noise, quantized at
// the profile's ADC resolution.
func (m *Mock) board() *capture.SimBoard {
	pressPeriod := uint32(m.cfg.PressPeriod / time.Microsecond)
	if pressPeriod == 0 {
		pressPeriod = 10000000
	}
	pressDur := uint32(m.cfg.PressDuration / time.Microsecond)
	if pressDur == 0 {
		pressDur = 500000
	}
	tone := float32(m.cfg.ToneHz)
	amp := float32(m.cfg.Amplitude)
	noise := float32(m.cfg.NoiseLevel)
	mid := float32(int32(1) << (m.profile.ADCBits - 1))
	max := mid*2 - 1

	return &capture.SimBoard{
		Step: m.profile.IntervalMicros() / 4,
		ButtonLowAt: func(now uint32) bool {
			return now%pressPeriod < pressDur
		},
		MicAt: func(now uint32) uint16 {
			t := float32(now) / 1e6
			v := amp * math32.Sin(2*math32.Pi*tone*t)
			v += noise * math32.Sin(float32(now)*0.0013)
			raw := mid + v*(mid-1)
			if raw < 0 {
				raw = 0
			} else if raw > max {
				raw = max
			}
			return uint16(raw)
		},
	}
}
