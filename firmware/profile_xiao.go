//go:build tinygo && !esp32 && !simpletrigger

package main

import (
	"machine"

	"github.com/Tawfiq06/MakeUofT/pkg/capture"
)

const (
	// Trigger button to GND, internal pull-up
	PIN_BUTTON = machine.D2
	// Recording indicator LED
	PIN_LED = machine.D3
	// Electret microphone amplifier output
	PIN_MIC = machine.A0

	ADC_REFERENCE_MV = 3300 // Reference voltage in millivolts (3.3V)
)

// 8 kHz, 10-bit, 500000 baud with the edge-debounced trigger and repeated
// STRT/DONE sentinels.
var profile = capture.ProfileRobust
