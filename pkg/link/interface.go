package link

import "github.com/Tawfiq06/MakeUofT/pkg/receiver"

// Device is a source of decoded capture sessions (real serial port or
// simulated firmware).
type Device interface {
	Connect() error
	Close() error
	Recordings() <-chan receiver.Recording
	IsConnected() bool
}

// Ensure Serial implements Device.
var _ Device = (*Serial)(nil)

// Ensure Mock implements Device.
var _ Device = (*Mock)(nil)
