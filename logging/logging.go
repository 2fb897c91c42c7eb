// Package logging builds the zerolog logger: a plain-text file sink, optionally fanned out to Graylog
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Graylog2/go-gelf/gelf"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/threat-shooter/config"
)

// ParseLevel maps a config level name to a zerolog level, defaulting to info
func ParseLevel(name string) zerolog.Level {
	switch strings.ToUpper(name) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	case "DISABLED", "OFF":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// Logger is the application logger plus the sinks it owns
type Logger struct {
	zerolog.Logger

	file *os.File
}

// New opens the configured sinks; the terminal belongs to the game so nothing goes to stdout
func New(cfg config.LogConfig) (*Logger, error) {
	var writers []io.Writer
	l := &Logger{}

	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log dir: %w", err)
		}
		f, err := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		l.file = f
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        f,
			TimeFormat: time.RFC3339,
			NoColor:    true,
		})
	}

	var gelfErr error
	if cfg.Graylog.Enabled {
		gw, err := gelf.NewWriter(cfg.Graylog.Address)
		if err != nil {
			gelfErr = err
		} else {
			writers = append(writers, gw)
		}
	}

	l.Logger = NewWithWriters(ParseLevel(cfg.Level), writers...)
	if gelfErr != nil {
		l.Warn().Err(gelfErr).Str("address", cfg.Graylog.Address).Msg("graylog disabled")
	}
	l.Info().Str("loglevel", l.GetLevel().String()).Msg("logging set up")
	return l, nil
}

// NewWithWriters builds a timestamped logger over writers; no writers yields a disabled logger
func NewWithWriters(level zerolog.Level, writers ...io.Writer) zerolog.Logger {
	if len(writers) == 0 {
		return zerolog.Nop()
	}
	return zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().Timestamp().Logger()
}

// Close flushes and closes the log file
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
