package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Tawfiq06/MakeUofT/pkg/receiver"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <dump-file>",
	Short: "Decode a raw serial dump into WAV files",
	Long: `decode reads a file containing raw bytes captured from the serial
port (for example with cat or a logic analyzer) and extracts every complete
session it contains.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, err := cfg.Capture.Profile()
		if err != nil {
			return err
		}

		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open dump: %w", err)
		}
		defer f.Close()

		base := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
		scanner := receiver.NewScanner(f, profile)
		n := 0
		for {
			rec, err := scanner.Next()
			if err != nil {
				if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
					break
				}
				return err
			}
			n++
			path := fmt.Sprintf("%s_%03d.wav", base, n)
			if err := receiver.SaveWAV(path, rec); err != nil {
				return err
			}
			log.Printf("Saved %s: %s of audio", path, rec.Duration())
		}

		if n == 0 {
			return fmt.Errorf("no complete sessions found in %s", args[0])
		}
		log.Printf("Decoded %d session(s)", n)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}
