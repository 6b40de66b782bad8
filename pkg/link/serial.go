package link

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"sync"

	"go.bug.st/serial"

	"github.com/Tawfiq06/MakeUofT/pkg/capture"
	"github.com/Tawfiq06/MakeUofT/pkg/receiver"
)

// DefaultBufferSize is the default size for the recordings channel buffer.
// Sessions are large, so a handful is plenty.
const DefaultBufferSize = 4

// Port represents a serial port.
type Port struct {
	Name        string
	Description string
}

// Ports returns a list of available serial ports.
func Ports() ([]Port, error) {
	names, err := serial.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("failed to list serial ports: %w", err)
	}

	result := make([]Port, 0, len(names))
	for _, name := range names {
		result = append(result, Port{Name: name, Description: name})
	}
	return result, nil
}

// Serial reads capture sessions from the device's serial port.
type Serial struct {
	port    string
	baud    int
	profile capture.Profile
	bufSize int

	conn       serial.Port
	recordings chan receiver.Recording
	mu         sync.RWMutex
	ctx        context.Context
	cancel     context.CancelFunc
	done       chan struct{}
	connected  bool
}

// NewSerial creates a device on the given port. A zero baud rate uses the
// variant's default; a zero bufSize uses DefaultBufferSize.
func NewSerial(port string, baud int, p capture.Profile, bufSize int) *Serial {
	if baud == 0 {
		baud = int(p.BaudRate)
	}
	if bufSize == 0 {
		bufSize = DefaultBufferSize
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Serial{
		port:       port,
		baud:       baud,
		profile:    p,
		bufSize:    bufSize,
		recordings: make(chan receiver.Recording, bufSize),
		ctx:        ctx,
		cancel:     cancel,
		done:       make(chan struct{}),
	}
}

// Connect opens the serial port and starts decoding sessions.
func (d *Serial) Connect() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.connected {
		return fmt.Errorf("already connected")
	}

	mode := &serial.Mode{
		BaudRate: d.baud,
	}

	port, err := serial.Open(d.port, mode)
	if err != nil {
		return fmt.Errorf("failed to open serial port %s: %w", d.port, err)
	}

	d.conn = port
	d.connected = true

	go decodeSessions(d.ctx, d.conn, d.profile, d.recordings, d.done)

	return nil
}

// Close closes the connection and stops decoding.
func (d *Serial) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.connected {
		return nil
	}

	d.cancel()

	if d.conn != nil {
		if err := d.conn.Close(); err != nil {
			log.Printf("Error closing serial port: %v", err)
		}
		d.conn = nil
	}

	d.connected = false

	<-d.done
	close(d.recordings)

	return nil
}

// Recordings returns the channel of decoded sessions.
func (d *Serial) Recordings() <-chan receiver.Recording {
	return d.recordings
}

// IsConnected returns whether the device is currently connected.
func (d *Serial) IsConnected() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.connected
}

// decodeSessions decodes sessions from the byte stream until the stream ends
// or ctx is cancelled, then closes done. A malformed session is logged and
// skipped; the scanner resynchronizes on the next start marker.
func decodeSessions(ctx context.Context, r io.Reader, p capture.Profile, out chan<- receiver.Recording, done chan<- struct{}) {
	defer close(done)
	defer func() {
		if p := recover(); p != nil {
			log.Printf("Panic in decodeSessions: %v", p)
		}
	}()

	scanner := receiver.NewScanner(r, p)
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		rec, err := scanner.Next()
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) ||
				errors.Is(err, io.ErrClosedPipe) {
				return
			}
			log.Printf("Failed to decode session: %v", err)
			continue
		}

		select {
		case out <- rec:
		case <-ctx.Done():
			return
		default:
			log.Printf("Recordings channel full, dropping session")
		}
	}
}
