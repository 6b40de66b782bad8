//go:build tinygo

//go:generate tinygo flash -target=xiao
//go:generate tinygo flash -target=xiao -tags=simpletrigger
//go:generate tinygo flash -target=esp32-coreboard -tags=esp32

package main

import (
	"context"
	"machine"
	"time"

	"github.com/Tawfiq06/MakeUofT/pkg/capture"
)

// board adapts the MCU peripherals to the capture loop's hardware boundary.
type board struct {
	mic    machine.ADC
	button machine.Pin
	led    machine.Pin
	shift  uint8 // machine.ADC readings are 16-bit scaled; shift back to raw
	start  time.Time
}

func (b *board) ReadButton() bool {
	return b.button.Get()
}

func (b *board) ReadMic() uint16 {
	return b.mic.Get() >> b.shift
}

func (b *board) SetLED(on bool) {
	if on {
		b.led.High()
	} else {
		b.led.Low()
	}
}

func (b *board) Micros() uint32 {
	// Wraps every ~71 minutes; the loop only ever compares readings with
	// unsigned subtraction.
	return uint32(time.Since(b.start).Microseconds())
}

func (b *board) Sleep(ms uint32) {
	time.Sleep(time.Duration(ms) * time.Millisecond)
}

func main() {
	PIN_BUTTON.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	PIN_LED.Configure(machine.PinConfig{Mode: machine.PinOutput})
	PIN_MIC.Configure(machine.PinConfig{Mode: machine.PinInput})

	machine.InitADC()
	adc := machine.ADC{Pin: PIN_MIC}
	adc.Configure(machine.ADCConfig{
		Reference:  ADC_REFERENCE_MV,
		Resolution: uint32(profile.ADCBits),
	})

	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: profile.BaudRate,
	})

	b := &board{
		mic:    adc,
		button: PIN_BUTTON,
		led:    PIN_LED,
		shift:  16 - profile.ADCBits,
		start:  time.Now(),
	}

	rec := capture.NewRecorder(b, uart, profile)
	for {
		// The UART never reports a write failure, so this loops forever.
		rec.Run(context.Background())
	}
}
