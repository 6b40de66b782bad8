//go:build tinygo && esp32

package main

import (
	"machine"

	"github.com/Tawfiq06/MakeUofT/pkg/capture"
)

const (
	// On-board BOOT button
	PIN_BUTTON = machine.GPIO0
	// On-board LED
	PIN_LED = machine.GPIO2
	// ADC1 channel, usable while WiFi is off
	PIN_MIC = machine.GPIO34

	ADC_REFERENCE_MV = 3300
)

// 16 kHz, 12-bit, 921600 baud with textual START/STOP lines.
var profile = capture.ProfileESP32
