// Package config loads the optional YAML run configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config carries the run settings the command line can also supply. Flags
// win over file values; file values win over defaults.
type Config struct {
	Accounts     string    `yaml:"accounts"`
	Transactions string    `yaml:"transactions"`
	LogLevel     string    `yaml:"log_level"`
	CSV          CSVConfig `yaml:"csv"`
}

// CSVConfig tunes input parsing.
type CSVConfig struct {
	// Delimiter forces one input delimiter. Empty means sniff per file.
	Delimiter string `yaml:"delimiter"`
}

// Default returns the configuration used when no file overrides anything.
func Default() Config {
	return Config{
		LogLevel: "info",
	}
}

// Load reads and parses the configuration file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML into a Config on top of the defaults. Unknown keys are
// rejected so typos fail loudly instead of silently reverting a setting.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}

	// A bare "log_level:" key decodes to "" over the default; backfill it.
	if cfg.LogLevel == "" {
		cfg.LogLevel = Default().LogLevel
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Level parses the configured log level.
func (c Config) Level() (zapcore.Level, error) {
	return zapcore.ParseLevel(c.LogLevel)
}

// Comma returns the forced CSV delimiter, or 0 when inputs should be
// sniffed.
func (c Config) Comma() rune {
	if c.CSV.Delimiter == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(c.CSV.Delimiter)
	return r
}

// Validate checks the settings that can arrive from either the file or the
// command line.
func (c Config) Validate() error {
	if utf8.RuneCountInString(c.CSV.Delimiter) > 1 {
		return fmt.Errorf("csv.delimiter must be a single character, got %q", c.CSV.Delimiter)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}
