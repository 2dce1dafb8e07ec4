package config

import (
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the interpreter shell's settings.
type Config struct {
	REPL   REPLConfig   `toml:"repl"`
	Random RandomConfig `toml:"random"`
	Log    LogConfig    `toml:"log"`
}

// REPLConfig configures the interactive prompt.
type REPLConfig struct {
	// Prompt is printed before each input line.
	Prompt string `toml:"prompt"`
	// HistorySize caps the number of remembered input lines.
	HistorySize int `toml:"history-size"`
}

// RandomConfig configures the runtime's random source.
type RandomConfig struct {
	// Secure draws from the operating system's entropy pool.
	Secure bool `toml:"secure"`
	// Seed initializes the deterministic generator.
	Seed uint32 `toml:"seed"`
}

// LogConfig configures structured logging.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`
	// Path appends log output to a file; empty logs to stderr.
	Path string `toml:"path"`
}

// Default returns the compiled-in settings.
func Default() *Config {
	return &Config{
		REPL: REPLConfig{
			Prompt:      ">> ",
			HistorySize: 500,
		},
		Random: RandomConfig{
			Secure: false,
			Seed:   0,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads settings from path, layered over the defaults. A missing file
// yields the defaults without error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	return parse(path, data)
}

// LoadReader reads settings from r, layered over the defaults.
func LoadReader(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("config: reading: %w", err)
	}
	return parse("<reader>", data)
}

func parse(source string, data []byte) (*Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, &ParseError{Path: source, Message: err.Error(), Err: err}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings for consistency.
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Log.Level)
	}
	if c.REPL.HistorySize < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidHistorySize, c.REPL.HistorySize)
	}
	return nil
}
