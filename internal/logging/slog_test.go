package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlogLogger_WritesLevelsAndAttrs(t *testing.T) {
	var buf bytes.Buffer
	l := NewSlogLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	ctx := context.Background()
	l.Debug(ctx, "d", "k", "v")
	l.Info(ctx, "i")
	l.Warn(ctx, "w")
	l.Error(ctx, "e")

	out := buf.String()
	assert.Contains(t, out, "level=DEBUG")
	assert.Contains(t, out, "k=v")
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "level=ERROR")
}

func TestSlogLogger_WithAddsFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewSlogLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	child := l.With("screen", "login")
	child.Info(context.Background(), "hello")

	assert.Contains(t, buf.String(), "screen=login")
}
