package cmd

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tawfiq06/MakeUofT/pkg/link"
	"github.com/Tawfiq06/MakeUofT/pkg/receiver"
)

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Receive capture sessions from the serial port and save them as WAV files",
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, err := cfg.Capture.Profile()
		if err != nil {
			return err
		}

		dev := link.NewSerial(cfg.Serial.Port, cfg.Serial.Baud, profile, 0)
		if err := dev.Connect(); err != nil {
			return err
		}
		defer dev.Close()

		log.Printf("Listening on %s, variant %s (%d Hz, %d-bit, %d baud)",
			cfg.Serial.Port, cfg.Capture.Variant,
			profile.SampleRate, profile.ADCBits, profile.BaudRate)
		log.Printf("Press the board button to record; Ctrl+C to quit")

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

		return saveSessions(dev.Recordings(), sigChan)
	},
}

// saveSessions consumes decoded sessions until the channel closes or a signal
// arrives, writing each session to a timestamped WAV file.
func saveSessions(recordings <-chan receiver.Recording, stop <-chan os.Signal) error {
	if err := os.MkdirAll(cfg.Output.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	for {
		select {
		case rec, ok := <-recordings:
			if !ok {
				return nil
			}
			name := fmt.Sprintf("%s_%s.wav", cfg.Output.Prefix, time.Now().Format("20060102_150405"))
			path := filepath.Join(cfg.Output.Dir, name)
			if err := receiver.SaveWAV(path, rec); err != nil {
				return err
			}
			lvl := receiver.Measure(rec.Samples)
			log.Printf("Saved %s: %s of audio, RMS %.3f, peak %.3f",
				path, rec.Duration(), lvl.RMS, lvl.Peak)
			fmt.Printf("  [%s]\n", receiver.Envelope(rec.Samples, 64))
		case <-stop:
			log.Printf("Stopping")
			return nil
		}
	}
}

func init() {
	rootCmd.AddCommand(listenCmd)
}
