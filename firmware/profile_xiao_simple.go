//go:build tinygo && !esp32 && simpletrigger

package main

import (
	"machine"

	"github.com/Tawfiq06/MakeUofT/pkg/capture"
)

const (
	PIN_BUTTON = machine.D2
	PIN_LED    = machine.D3
	PIN_MIC    = machine.A0

	ADC_REFERENCE_MV = 3300
)

// Same board and wire format as the robust build, but with the blocking-delay
// trigger: any LOW read starts a session, followed by a 200 ms delay that
// stalls the loop instead of debouncing edges.
var profile = capture.ProfileSimple
