// Package cli implements the iestool command-line interface.
//
// The tool wraps the ieskit library: parsing IESNA LM-63 photometric files,
// rescaling their vertical emission cone, and rendering polar previews.
// Commands share a leveled logger (charmbracelet/log) carried through
// context.Context, and optional defaults loaded from a TOML config file.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/lumatools/ieskit/observability"
)

// newLogger creates a leveled logger writing to w.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, falling back to
// log.Default so commands always have a usable logger.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// obsLogger adapts a charmbracelet logger to the library's observability
// interface so parser and writer debug output lands in the CLI log.
type obsLogger struct {
	l *log.Logger
}

func (o obsLogger) Debug(msg string, fields ...observability.Field) {
	o.l.Debug(msg, flatten(fields)...)
}
func (o obsLogger) Info(msg string, fields ...observability.Field) {
	o.l.Info(msg, flatten(fields)...)
}
func (o obsLogger) Warn(msg string, fields ...observability.Field) {
	o.l.Warn(msg, flatten(fields)...)
}
func (o obsLogger) Error(msg string, fields ...observability.Field) {
	o.l.Error(msg, flatten(fields)...)
}
func (o obsLogger) With(fields ...observability.Field) observability.Logger {
	return obsLogger{l: o.l.With(flatten(fields)...)}
}

func flatten(fields []observability.Field) []interface{} {
	out := make([]interface{}, 0, 2*len(fields))
	for _, f := range fields {
		out = append(out, f.Key(), f.Value())
	}
	return out
}
