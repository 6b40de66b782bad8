package capture

// Board is the hardware boundary of the capture loop. The firmware backs it
// with MCU peripherals; SimBoard backs it with a virtual clock for tests and
// the mock link device.
type Board interface {
	// ReadButton returns the electrical level of the trigger pin. The pin is
	// wired with a pull-up, so false (LOW) means the button is pressed.
	ReadButton() bool

	// ReadMic performs one ADC conversion on the microphone pin and returns
	// the raw unsigned reading at the profile's resolution.
	ReadMic() uint16

	// SetLED drives the recording indicator.
	SetLED(on bool)

	// Micros returns a monotonic microsecond counter. It wraps at 2^32;
	// callers must compare readings with unsigned subtraction.
	Micros() uint32

	// Sleep busy-blocks the whole loop for the given number of milliseconds.
	Sleep(ms uint32)
}
