// Package logging builds the application logger: every record goes to the
// console and errors are also appended to a persistent log file.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"
)

// New returns a logger writing records at or above level to console as text.
// When path is not empty, records at slog.LevelError and above are appended
// to that file too. The returned closer releases the file and must be called
// once on shutdown.
func New(console io.Writer, path string, level slog.Leveler) (*slog.Logger, io.Closer, error) {
	consoleHandler := slog.NewTextHandler(console, &slog.HandlerOptions{Level: level})
	if path == "" {
		return slog.New(consoleHandler), io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, errors.Wrap(err, "open error log")
	}

	fileHandler := slog.NewTextHandler(f, &slog.HandlerOptions{
		Level:     slog.LevelError,
		AddSource: true,
	})
	return slog.New(teeHandler{consoleHandler, fileHandler}), f, nil
}

// teeHandler fans each record out to every handler that accepts its level.
type teeHandler []slog.Handler

func (t teeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range t {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (t teeHandler) Handle(ctx context.Context, r slog.Record) error {
	var first error
	for _, h := range t {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (t teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(teeHandler, len(t))
	for i, h := range t {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (t teeHandler) WithGroup(name string) slog.Handler {
	out := make(teeHandler, len(t))
	for i, h := range t {
		out[i] = h.WithGroup(name)
	}
	return out
}
