package logging

import (
	"context"
	"log/slog"
)

// SlogLogger adapts log/slog to the Logger interface. The *Context variants
// are used throughout so slog handlers can pull values off the request
// context.
type SlogLogger struct {
	logger *slog.Logger
}

func NewSlogLogger(l *slog.Logger) *SlogLogger {
	return &SlogLogger{logger: l}
}

func (s *SlogLogger) Debug(ctx context.Context, msg string, args ...any) {
	s.logger.DebugContext(ctx, msg, args...)
}

func (s *SlogLogger) Info(ctx context.Context, msg string, args ...any) {
	s.logger.InfoContext(ctx, msg, args...)
}

func (s *SlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	s.logger.WarnContext(ctx, msg, args...)
}

func (s *SlogLogger) Error(ctx context.Context, msg string, args ...any) {
	s.logger.ErrorContext(ctx, msg, args...)
}

// With returns a child logger carrying the given key-value pairs on every
// record.
func (s *SlogLogger) With(args ...any) Logger {
	return &SlogLogger{logger: s.logger.With(args...)}
}
