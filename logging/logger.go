package logging

import (
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger is the minimal structured logging interface used throughout
// the agent core. Arguments follow slog key/value conventions.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// SlogAdapter wraps *slog.Logger to implement Logger.
type SlogAdapter struct {
	*slog.Logger
}

// NewSlogAdapter creates a Logger from an existing *slog.Logger.
func NewSlogAdapter(logger *slog.Logger) Logger {
	return &SlogAdapter{Logger: logger}
}

// NewDefaultLogger creates a Logger backed by slog.Default().
func NewDefaultLogger() Logger {
	return NewSlogAdapter(slog.Default())
}

// Config controls handler construction for New.
type Config struct {
	Level     slog.Level
	Format    string // "json" or "text"
	Output    io.Writer
	AddSource bool
}

// New builds a Logger writing structured records to the configured
// output. A nil config yields JSON at info level on stdout.
func New(cfg *Config) Logger {
	if cfg == nil {
		cfg = &Config{Level: slog.LevelInfo, Format: "json", Output: os.Stdout}
	}
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}
	opts := &slog.HandlerOptions{Level: cfg.Level, AddSource: cfg.AddSource}
	var handler slog.Handler
	if cfg.Format == "text" {
		handler = slog.NewTextHandler(cfg.Output, opts)
	} else {
		handler = slog.NewJSONHandler(cfg.Output, opts)
	}
	return NewSlogAdapter(slog.New(handler))
}

// LogModelCall records one language-model round trip on the given logger.
func LogModelCall(l Logger, modelName string, dur time.Duration, err error) {
	if err != nil {
		l.Error("model call failed", "model", modelName, "duration", dur, "error", err.Error())
		return
	}
	l.Info("model call completed", "model", modelName, "duration", dur)
}

// LogToolRun records one tool resolution on the given logger.
func LogToolRun(l Logger, toolName string, dur time.Duration, err error) {
	if err != nil {
		l.Error("tool run failed", "tool", toolName, "duration", dur, "error", err.Error())
		return
	}
	l.Debug("tool run completed", "tool", toolName, "duration", dur)
}

// NoOpLogger discards all log messages. Useful in tests.
type NoOpLogger struct{}

// Debug implements Logger.
func (NoOpLogger) Debug(string, ...any) {}

// Info implements Logger.
func (NoOpLogger) Info(string, ...any) {}

// Warn implements Logger.
func (NoOpLogger) Warn(string, ...any) {}

// Error implements Logger.
func (NoOpLogger) Error(string, ...any) {}
