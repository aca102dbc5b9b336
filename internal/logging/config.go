package logging

import (
	"errors"
	"fmt"

	"go.uber.org/zap/zapcore"
)

// Output formats.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// ErrInvalidFormat is returned for formats other than json and console.
var ErrInvalidFormat = errors.New("invalid log format")

// Config holds logging configuration.
type Config struct {
	Level  string
	Format string
}

// NewDefaultConfig returns warn-level console logging.
func NewDefaultConfig() Config {
	return Config{
		Level:  "warn",
		Format: FormatConsole,
	}
}

// Validate checks level and format.
func (c Config) Validate() error {
	if _, err := LevelFromString(c.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Level, err)
	}
	switch c.Format {
	case FormatJSON, FormatConsole:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFormat, c.Format)
	}
}

// LevelFromString parses a level name. An empty string means info.
func LevelFromString(level string) (zapcore.Level, error) {
	if level == "" {
		return zapcore.InfoLevel, nil
	}
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return zapcore.InfoLevel, err
	}
	return l, nil
}
