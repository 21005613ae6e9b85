package logger

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/amalpanikulangara/arreWhatsapp/config"
)

// Logger is a thin wrapper over slog so that usecases and repositories
// take a value they can call directly instead of a handler.
type Logger struct {
	s *slog.Logger
}

func NewLogger(cfg *config.Config) (*Logger, error) {
	level := parseLevel(cfg.LoggerMode.Level)

	var handler slog.Handler
	if cfg.LoggerMode.Development {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}

	return &Logger{s: slog.New(handler)}, nil
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l *Logger) inner() *slog.Logger {
	if l == nil || l.s == nil {
		return slog.Default()
	}
	return l.s
}

func (l *Logger) Debug(msg string, kv ...any) { l.inner().Debug(msg, kv...) }
func (l *Logger) Info(msg string, kv ...any)  { l.inner().Info(msg, kv...) }
func (l *Logger) Warn(msg string, kv ...any)  { l.inner().Warn(msg, kv...) }
func (l *Logger) Error(msg string, kv ...any) { l.inner().Error(msg, kv...) }

func (l *Logger) Infof(format string, args ...any) {
	l.inner().Info(fmt.Sprintf(format, args...))
}

func (l *Logger) Errorf(format string, args ...any) {
	l.inner().Error(fmt.Sprintf(format, args...))
}
