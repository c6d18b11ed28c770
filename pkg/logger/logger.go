package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config options for the logger.
type Config struct {
	Env   string // development -> human console; anything else -> JSON
	Level string // trace, debug, info, warn, error
}

// Logger is a thin wrapper over zerolog for injection and consistency.
type Logger struct {
	zl zerolog.Logger
}

// New creates a structured logger. Development uses the console writer;
// every other environment emits JSON.
func New(cfg Config) *Logger {
	var w io.Writer = os.Stdout
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zl := zerolog.New(w).Level(parseLevel(cfg.Level)).With().Timestamp().Logger()

	// Redirect zerolog's global logger so libraries that use it stay consistent.
	log.Logger = zl

	return &Logger{zl: zl}
}

func parseLevel(s string) zerolog.Level {
	switch s {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func (l *Logger) Trace() *zerolog.Event { return l.zl.Trace() }
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// With creates a sublogger context with fixed fields.
func (l *Logger) With() zerolog.Context {
	return l.zl.With()
}

// Component returns a sublogger tagged with a component name, e.g.
// logger.Component("gateway").
func (l *Logger) Component(name string) *Logger {
	return &Logger{zl: l.zl.With().Str("component", name).Logger()}
}

// Zerolog exposes the wrapped logger for direct API access.
func (l *Logger) Zerolog() zerolog.Logger {
	return l.zl
}
