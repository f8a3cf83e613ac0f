package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
)

// NamespaceKey is the attribute naming the component that emitted a record.
const NamespaceKey = "namespace"

// DefaultHandler creates a new slog handler with the specified parameters,
// writing to stderr so it never mixes with the program's output.
func DefaultHandler(params Parameters) slog.Handler {
	return NewHandler(params.Type, params.Level, os.Stderr)
}

// NewHandler creates a new slog handler based on the specified logger type and level.
func NewHandler(loggerType LoggerType, level slog.Level, w io.Writer) slog.Handler {
	switch loggerType {
	case LoggerText:
		return slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	case LoggerJSON:
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	case LoggerPretty:
		type fd interface{ Fd() uintptr }
		colorize := false
		if f, ok := w.(fd); ok {
			colorize = isatty.IsTerminal(f.Fd())
		}
		return buildPrettyHandler(w, level, colorize)
	case LoggerPrettyNoColor:
		return buildPrettyHandler(w, level, false)
	default:
		panic(fmt.Sprintf("unsupported logger type %d", loggerType))
	}
}

func buildPrettyHandler(w io.Writer, level slog.Level, colorize bool) slog.Handler {
	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05.000",
		NoColor:    !colorize,
	})
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(discardHandler{})
}

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (h discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h discardHandler) WithGroup(string) slog.Handler           { return h }

// Namespace returns a child logger tagging its records with the component name.
func Namespace(logger *slog.Logger, name string) *slog.Logger {
	return logger.With(slog.String(NamespaceKey, name))
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

const (
	errorKey = "error"
	traceKey = "trace"
)

// Error returns a slog.Attr holding the error message.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(errorKey, err.Error())
}

// ErrorTrace returns a slog.Attr holding the stack trace recorded by
// github.com/pkg/errors, or an empty attribute if the error has none.
func ErrorTrace(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	if st, ok := err.(stackTracer); ok {
		return slog.String(traceKey, fmt.Sprintf("%+v", st.StackTrace()))
	}
	return slog.Attr{}
}
