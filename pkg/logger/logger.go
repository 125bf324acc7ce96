package logger

import (
	"fmt"
	"log/slog"
	"os"

	"hearth/config"
)

// Logger wraps slog with the small surface the rest of the codebase uses.
// The zero value logs through slog.Default, which keeps test setup trivial.
type Logger struct {
	slog *slog.Logger
}

func NewLogger(cfg *config.Config) (*Logger, error) {
	level := slog.LevelInfo
	if cfg.LoggerMode.Level != "" {
		if err := level.UnmarshalText([]byte(cfg.LoggerMode.Level)); err != nil {
			return nil, err
		}
	}

	// Dev mode uses human-readable text; prod uses JSON.
	var handler slog.Handler
	if cfg.LoggerMode.Development {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}

	return &Logger{slog: slog.New(handler)}, nil
}

func (l *Logger) base() *slog.Logger {
	if l == nil || l.slog == nil {
		return slog.Default()
	}
	return l.slog
}

func (l *Logger) Debug(msg string, args ...any) { l.base().Debug(msg, args...) }
func (l *Logger) Info(msg string, args ...any)  { l.base().Info(msg, args...) }
func (l *Logger) Warn(msg string, args ...any)  { l.base().Warn(msg, args...) }
func (l *Logger) Error(msg string, args ...any) { l.base().Error(msg, args...) }

func (l *Logger) Infof(format string, args ...any) {
	l.base().Info(fmt.Sprintf(format, args...))
}

func (l *Logger) Warnf(format string, args ...any) {
	l.base().Warn(fmt.Sprintf(format, args...))
}

func (l *Logger) Errorf(format string, args ...any) {
	l.base().Error(fmt.Sprintf(format, args...))
}
