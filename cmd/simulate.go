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

var simulateSessions int

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a simulated board end-to-end instead of real hardware",
	Long: `simulate drives the firmware loop against a virtual board: a
periodically pressed button and a sine-tone microphone. The resulting byte
stream goes through the same decoder as a real serial port, so the whole
pipeline can be exercised without hardware.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, err := cfg.Capture.Profile()
		if err != nil {
			return err
		}

		dev := link.NewMock(&cfg.Mock, profile)
		if err := dev.Connect(); err != nil {
			return err
		}
		defer dev.Close()

		log.Printf("Simulating variant %s: %.0f Hz tone, sessions of %ds",
			cfg.Capture.Variant, cfg.Mock.ToneHz, cfg.Mock.SessionSeconds)

		if err := os.MkdirAll(cfg.Output.Dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

		for i := 0; i < simulateSessions; i++ {
			select {
			case rec := <-dev.Recordings():
				name := fmt.Sprintf("%s_sim_%s.wav", cfg.Output.Prefix, time.Now().Format("20060102_150405"))
				path := filepath.Join(cfg.Output.Dir, name)
				if err := receiver.SaveWAV(path, rec); err != nil {
					return err
				}
				lvl := receiver.Measure(rec.Samples)
				log.Printf("Saved %s: %s of audio, RMS %.3f, peak %.3f",
					path, rec.Duration(), lvl.RMS, lvl.Peak)
				fmt.Printf("  [%s]\n", receiver.Envelope(rec.Samples, 64))
			case <-sigChan:
				return nil
			}
		}
		return nil
	},
}

func init() {
	simulateCmd.Flags().IntVarP(&simulateSessions, "sessions", "n", 1, "number of sessions to simulate")
	rootCmd.AddCommand(simulateCmd)
}
