package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads a YAML file from the given path and returns a new Manager.
// Keys missing from the file keep their default values. A missing file, or an
// empty path, yields the default configuration.
func Load(path string) (*Manager, error) {
	cfg := createDefaultConfig()
	if path == "" {
		return NewManager(cfg), nil
	}

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug("Config file not found, using default configuration", "path", path)
		return NewManager(cfg), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return NewManager(cfg), nil
}

// Validate checks field constraints and that the rules section builds a
// usable rule set.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	if _, err := cfg.Rules.Build(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// createDefaultConfig creates a new Config matching names.DefaultRules.
func createDefaultConfig() *Config {
	return &Config{
		Rules: Rules{
			PartDigits: PartDigits{Top: 2, Mid: 2, Bottom: 2},
			DateFormat: "yyyy-MM-dd",
			Delimiters: Delimiters{
				Part:           "~",
				TimeUnit:       "-",
				DateTime:       "T",
				AttributeStart: "{",
				AttributeEnd:   "}",
				Attribute:      ";",
				Title:          " ",
				Suffix:         ".",
			},
		},
		Logger: Logger{
			Enabled: true,
			Level:   "info",
			Format:  "text",
		},
		Metrics: Metrics{
			Enabled: false,
		},
	}
}

// Default returns a fresh copy of the default configuration.
func Default() *Config { return createDefaultConfig() }
