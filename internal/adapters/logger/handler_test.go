package logger_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/rivebuild/internal/adapters/logger"
)

func newHandler(t *testing.T, level slog.Level) (*logger.PrettyHandler, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	return logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: level}), buf
}

func TestPrettyHandler_Levels(t *testing.T) {
	h, buf := newHandler(t, slog.LevelDebug)
	log := slog.New(h)

	log.Debug("resolving layout")
	log.Info("dry run")
	log.Warn("submodule update failed")
	log.Error("build failed")

	assert.Equal(t, "resolving layout\ndry run\n! submodule update failed\n✗ build failed\n", buf.String())
}

func TestPrettyHandler_Enabled(t *testing.T) {
	h, buf := newHandler(t, slog.LevelWarn)

	assert.False(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, h.Enabled(context.Background(), slog.LevelError))

	slog.New(h).Info("hidden")
	assert.Empty(t, buf.String())
}

func TestPrettyHandler_Attrs(t *testing.T) {
	h, buf := newHandler(t, slog.LevelInfo)
	log := slog.New(h).With("step", "engine").WithGroup("cmd").With("dir", "..")

	log.Warn("optional action failed", "exit_code", 1, slog.Group("argv", "tool", "git"))

	assert.Equal(t, "! optional action failed step=engine cmd.dir=.. cmd.exit_code=1 cmd.argv.tool=git\n", buf.String())
}

func TestPrettyHandler_EmptyGroupAndAttrs(t *testing.T) {
	h, buf := newHandler(t, slog.LevelInfo)

	same := h.WithGroup("").WithAttrs(nil)
	assert.Same(t, h, same)

	slog.New(same).Info("plain", slog.Attr{})
	assert.Equal(t, "plain\n", buf.String())
}
