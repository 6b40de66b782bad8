package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Tawfiq06/MakeUofT/pkg/capture"
)

// Config represents the host tool configuration.
type Config struct {
	Serial  SerialConfig  `yaml:"serial"`
	Capture CaptureConfig `yaml:"capture"`
	Output  OutputConfig  `yaml:"output"`
	Mock    MockConfig    `yaml:"mock"`
}

// SerialConfig contains serial port configuration.
type SerialConfig struct {
	Port string `yaml:"port"`
	Baud int    `yaml:"baud"` // 0 means the variant's default
}

// CaptureConfig selects the firmware variant the host must match.
type CaptureConfig struct {
	Variant string `yaml:"variant"` // robust, simple or esp32
}

// Profile resolves the configured variant to its wire parameters.
func (c CaptureConfig) Profile() (capture.Profile, error) {
	p, ok := capture.ProfileByName(c.Variant)
	if !ok {
		return capture.Profile{}, fmt.Errorf("unknown capture variant %q", c.Variant)
	}
	return p, nil
}

// OutputConfig controls where decoded sessions are written.
type OutputConfig struct {
	Dir    string `yaml:"dir"`
	Prefix string `yaml:"prefix"`
}

// MockConfig contains simulated device configuration.
type MockConfig struct {
	ToneHz         float64       `yaml:"tone_hz"`         // simulated microphone tone
	Amplitude      float64       `yaml:"amplitude"`       // 0..1 of full scale
	NoiseLevel     float64       `yaml:"noise_level"`     // 0..1 of full scale
	PressPeriod    time.Duration `yaml:"press_period"`    // time between simulated presses
	PressDuration  time.Duration `yaml:"press_duration"`  // how long the button is held
	SessionSeconds uint32        `yaml:"session_seconds"` // shortened capture length, 0 = variant default
}

// Default returns a default configuration with sensible values.
func Default() *Config {
	return &Config{
		Serial: SerialConfig{
			Port: "/dev/ttyACM0", // use COMx on Windows
		},
		Capture: CaptureConfig{
			Variant: "robust",
		},
		Output: OutputConfig{
			Dir:    "recordings",
			Prefix: "session",
		},
		Mock: MockConfig{
			ToneHz:         440,
			Amplitude:      0.5,
			NoiseLevel:     0.01,
			PressPeriod:    10 * time.Second,
			PressDuration:  500 * time.Millisecond,
			SessionSeconds: 2,
		},
	}
}

// Load loads configuration from a YAML file. If the file doesn't exist or
// fields are missing, it uses default values.
func Load(filename string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.ensureDefaults()

	return cfg, nil
}

// Save saves the configuration to a YAML file.
func (c *Config) Save(filename string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ensureDefaults fills in required fields that the file left empty.
func (c *Config) ensureDefaults() {
	def := Default()

	if c.Serial.Port == "" {
		c.Serial.Port = def.Serial.Port
	}
	if c.Capture.Variant == "" {
		c.Capture.Variant = def.Capture.Variant
	}
	if c.Output.Dir == "" {
		c.Output.Dir = def.Output.Dir
	}
	if c.Output.Prefix == "" {
		c.Output.Prefix = def.Output.Prefix
	}

	if c.Mock.ToneHz == 0 {
		c.Mock.ToneHz = def.Mock.ToneHz
	}
	if c.Mock.Amplitude == 0 {
		c.Mock.Amplitude = def.Mock.Amplitude
	}
	if c.Mock.PressPeriod == 0 {
		c.Mock.PressPeriod = def.Mock.PressPeriod
	}
	if c.Mock.PressDuration == 0 {
		c.Mock.PressDuration = def.Mock.PressDuration
	}
	if c.Mock.SessionSeconds == 0 {
		c.Mock.SessionSeconds = def.Mock.SessionSeconds
	}
}
