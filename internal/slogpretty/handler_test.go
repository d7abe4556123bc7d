package slogpretty

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerRouting(t *testing.T) {
	t.Parallel()

	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	h := &Handler{We: errOut, Wo: out, Lvl: slog.LevelDebug}
	log := slog.New(h)

	log.Info("127.0.0.1",
		slog.Int("status", 200),
		slog.String("method", "GET"),
		slog.String("path", "/users/1234"),
		slog.Duration("latency", 42*time.Millisecond),
	)
	require.Zero(t, errOut.Len())
	assert.Contains(t, out.String(), "[WREN]")
	assert.Contains(t, out.String(), "status=")
	assert.Contains(t, out.String(), "/users/1234")

	out.Reset()
	log.Error("127.0.0.1", slog.Int("status", 500))
	require.Zero(t, out.Len())
	assert.Contains(t, errOut.String(), "ERROR")
}

func TestHandlerLevelFilter(t *testing.T) {
	t.Parallel()

	out := new(bytes.Buffer)
	h := &Handler{We: out, Wo: out, Lvl: slog.LevelWarn}
	log := slog.New(h)

	log.Debug("dropped")
	log.Info("dropped")
	assert.Zero(t, out.Len())

	log.Warn("kept")
	assert.Contains(t, out.String(), "kept")
}

func TestHandlerWithAttrsAndGroup(t *testing.T) {
	t.Parallel()

	out := new(bytes.Buffer)
	h := &Handler{We: out, Wo: out, Lvl: slog.LevelDebug}
	log := slog.New(h).With(slog.String("app", "wren")).WithGroup("req")

	log.Info("hello", slog.String("id", "42"))
	assert.Contains(t, out.String(), "app=")
	assert.Contains(t, out.String(), "req.id=")
}
