package capture

// PCM converts a raw unsigned ADC reading of the given bit depth into a
// signed 16-bit sample: subtract the midpoint, then scale by 2^(16-bits).
// The scale is a multiplication rather than a shift so negative centered
// values stay well defined.
//
//	10-bit: midpoint 512, scale 64
//	12-bit: midpoint 2048, scale 16
func PCM(raw uint16, bits uint8) int16 {
	mid := int32(1) << (bits - 1)
	scale := int32(1) << (16 - bits)
	return int16((int32(raw) - mid) * scale)
}
