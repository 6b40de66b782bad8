package capture

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPCM(t *testing.T) {
	tests := []struct {
		name string
		raw  uint16
		bits uint8
		want int16
	}{
		{
			name: "10-bit midpoint",
			raw:  512,
			bits: 10,
			want: 0,
		},
		{
			name: "10-bit zero",
			raw:  0,
			bits: 10,
			want: -32768,
		},
		{
			name: "10-bit max",
			raw:  1023,
			bits: 10,
			want: 32704, // (1023-512)*64
		},
		{
			name: "10-bit one below midpoint",
			raw:  511,
			bits: 10,
			want: -64,
		},
		{
			name: "12-bit midpoint",
			raw:  2048,
			bits: 12,
			want: 0,
		},
		{
			name: "12-bit zero",
			raw:  0,
			bits: 12,
			want: -32768,
		},
		{
			name: "12-bit max",
			raw:  4095,
			bits: 12,
			want: 32752, // (4095-2048)*16
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PCM(tt.raw, tt.bits))
		})
	}
}

func TestPCM_LawAndMonotonic(t *testing.T) {
	for _, bits := range []uint8{10, 12} {
		mid := int32(1) << (bits - 1)
		scale := int32(1) << (16 - bits)
		max := (1 << bits) - 1

		prev := PCM(0, bits)
		for r := 0; r <= max; r++ {
			got := PCM(uint16(r), bits)
			want := (int32(r) - mid) * scale
			require.Equal(t, int16(want), got, "bits=%d raw=%d", bits, r)
			require.GreaterOrEqual(t, got, prev, "bits=%d raw=%d", bits, r)
			prev = got
		}
	}
}

// The exact wire bytes for the 10-bit sequence [512, 512, 1023, 0].
func TestPCM_WireBytes(t *testing.T) {
	var buf bytes.Buffer
	e := NewEmitter(&buf, ProfileRobust, nil)

	for _, raw := range []uint16{512, 512, 1023, 0} {
		require.NoError(t, e.WriteSample(PCM(raw, 10)))
	}

	want := []byte{
		0x00, 0x00, // 0
		0x00, 0x00, // 0
		0xC0, 0x7F, // 32704
		0x00, 0x80, // -32768
	}
	assert.Equal(t, want, buf.Bytes())
}
