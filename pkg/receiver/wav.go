package receiver

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// WriteWAV writes rec as a minimal RIFF/WAVE file: PCM, mono, 16-bit.
func WriteWAV(w io.Writer, rec Recording) error {
	dataLen := uint32(len(rec.Samples) * 2)

	var hdr [44]byte
	copy(hdr[0:], "RIFF")
	binary.LittleEndian.PutUint32(hdr[4:], 36+dataLen)
	copy(hdr[8:], "WAVE")
	copy(hdr[12:], "fmt ")
	binary.LittleEndian.PutUint32(hdr[16:], 16) // fmt chunk size
	binary.LittleEndian.PutUint16(hdr[20:], 1)  // PCM
	binary.LittleEndian.PutUint16(hdr[22:], 1)  // mono
	binary.LittleEndian.PutUint32(hdr[24:], uint32(rec.Rate))
	binary.LittleEndian.PutUint32(hdr[28:], uint32(rec.Rate)*2) // byte rate
	binary.LittleEndian.PutUint16(hdr[32:], 2)                  // block align
	binary.LittleEndian.PutUint16(hdr[34:], 16)                 // bits per sample
	copy(hdr[36:], "data")
	binary.LittleEndian.PutUint32(hdr[40:], dataLen)

	if _, err := w.Write(hdr[:]); err != nil {
		return fmt.Errorf("failed to write WAV header: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, rec.Samples); err != nil {
		return fmt.Errorf("failed to write WAV data: %w", err)
	}
	return nil
}

// SaveWAV writes rec to a new file at path.
func SaveWAV(path string, rec Recording) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := WriteWAV(f, rec); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}
