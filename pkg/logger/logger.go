package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ServiceName is attached to every log line as the "service" field.
const ServiceName = "deposit-gateway"

// New builds the process logger on stdout. pretty switches to zerolog's
// console writer for local runs; production stays on JSON lines.
func New(level string, pretty bool) zerolog.Logger {
	var out io.Writer = os.Stdout
	if pretty {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}
	return build(out, level).With().Caller().Logger()
}

// NewWithWriter is New without caller info, writing to w. Tests capture
// log lines with it.
func NewWithWriter(level string, w io.Writer) zerolog.Logger {
	return build(w, level)
}

// Component returns a child logger tagged with a component name,
// e.g. "reconciliation", "sweeper", "gateway.vnpay".
func Component(log zerolog.Logger, name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

func build(w io.Writer, level string) zerolog.Logger {
	return zerolog.New(w).
		Level(levelOf(level)).
		With().
		Timestamp().
		Str("service", ServiceName).
		Logger()
}

// levelOf accepts zerolog's level names plus "warning". Anything else,
// including an empty string, means info.
func levelOf(level string) zerolog.Level {
	name := strings.ToLower(strings.TrimSpace(level))
	if name == "warning" {
		name = "warn"
	}
	lvl, err := zerolog.ParseLevel(name)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
