package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Tawfiq06/MakeUofT/pkg/config"
)

var (
	cfg     *config.Config
	cfgFile string
	port    string
	variant string
)

var rootCmd = &cobra.Command{
	Use:   "miccap",
	Short: "Host-side companion for the button-triggered PCM capture boards",
	Long: `miccap receives audio captured by the microphone boards: when the
on-board button is pressed, the firmware streams a fixed-length session of
16-bit PCM over the serial link, delimited by sentinel markers.

miccap locates those sessions on the serial port, decodes them and saves
each one as a WAV file. It can also simulate a board end-to-end and decode
raw serial dumps recorded elsewhere.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Command-line overrides
		if port != "" {
			cfg.Serial.Port = port
		}
		if variant != "" {
			cfg.Capture.Variant = variant
		}

		return nil
	},
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "configuration file path")
	rootCmd.PersistentFlags().StringVarP(&port, "port", "p", "", "serial port override (e.g. COM3 or /dev/ttyACM0)")
	rootCmd.PersistentFlags().StringVar(&variant, "variant", "", "firmware variant override (robust, simple or esp32)")
}
