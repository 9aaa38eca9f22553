package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/rpgo/barrier-pricer/internal/calculation"
)

// slogLogger adapts calculation.Logger onto a slog text handler.
type slogLogger struct {
	l *slog.Logger
}

func newSlogLogger(w io.Writer, verbose bool) calculation.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slogLogger{l: slog.New(h).With("component", "pricer")}
}

func (s slogLogger) Debugf(format string, args ...any) { s.l.Debug(fmt.Sprintf(format, args...)) }
func (s slogLogger) Infof(format string, args ...any)  { s.l.Info(fmt.Sprintf(format, args...)) }
func (s slogLogger) Warnf(format string, args ...any)  { s.l.Warn(fmt.Sprintf(format, args...)) }
func (s slogLogger) Errorf(format string, args ...any) { s.l.Error(fmt.Sprintf(format, args...)) }
