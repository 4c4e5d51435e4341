// Package logger is a thin log/slog wrapper. Output is discarded until Init
// is called, because stdout and stderr belong to the terminal UI.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

var (
	mu            sync.RWMutex
	defaultLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
)

// Init routes log records at or above level to output.
func Init(level slog.Level, output io.Writer) {
	if output == nil {
		output = io.Discard
	}
	opts := slog.HandlerOptions{
		Level:     level,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.SourceKey {
				if source, ok := a.Value.Any().(*slog.Source); ok {
					source.File = filepath.Base(source.File)
				}
			}
			if a.Key == slog.TimeKey {
				a.Value = slog.StringValue(a.Value.Time().Format(time.TimeOnly))
			}
			return a
		},
	}
	mu.Lock()
	defaultLogger = slog.New(slog.NewTextHandler(output, &opts))
	mu.Unlock()
}

// ParseLevel maps "debug", "info", "warn" and "error" to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error", "err":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("logger: unknown level %q", s)
}

func logAtLevel(level slog.Level, format string, args ...any) {
	mu.RLock()
	l := defaultLogger
	mu.RUnlock()
	if !l.Enabled(context.Background(), level) {
		return
	}
	// Skip runtime.Callers, logAtLevel and the exported wrapper.
	var pcs [1]uintptr
	runtime.Callers(3, pcs[:])
	r := slog.NewRecord(time.Now(), level, fmt.Sprintf(format, args...), pcs[0])
	_ = l.Handler().Handle(context.Background(), r)
}

func Debugf(format string, args ...any) { logAtLevel(slog.LevelDebug, format, args...) }
func Infof(format string, args ...any)  { logAtLevel(slog.LevelInfo, format, args...) }
func Warnf(format string, args ...any)  { logAtLevel(slog.LevelWarn, format, args...) }
func Errorf(format string, args ...any) { logAtLevel(slog.LevelError, format, args...) }
