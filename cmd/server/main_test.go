package main

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper/internal/mines"
)

func TestNewLogger(t *testing.T) {
	ctx := context.Background()

	var buf bytes.Buffer
	logger := newLogger(&buf, false)
	assert.False(t, logger.Enabled(ctx, slog.LevelDebug))
	logger.Info("hello", slog.Int("n", 1))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.EqualValues(t, 1, entry["n"])

	buf.Reset()
	logger = newLogger(&buf, true)
	assert.True(t, logger.Enabled(ctx, slog.LevelDebug))
	logger.Debug("hello")
	assert.Contains(t, buf.String(), "hello")
	assert.False(t, json.Valid(buf.Bytes()))
}

func TestRunConfigFailure(t *testing.T) {
	t.Setenv("DEVELOPMENT", "0")
	var stderr bytes.Buffer
	missing := filepath.Join(t.TempDir(), "missing.yaml")

	err := run(context.Background(), []string{"-c", missing}, &stderr)
	require.Error(t, err)
	assert.Contains(t, stderr.String(), "failed to load config")
	assert.Contains(t, stderr.String(), "missing.yaml")
}

func TestRunInvalidBoard(t *testing.T) {
	t.Setenv("MINES_BOARD_WIDTH", "0")
	var stderr bytes.Buffer

	err := run(context.Background(), nil, &stderr)
	require.Error(t, err)
	assert.Contains(t, stderr.String(), "at least 1 by 1")
}

func TestRunBadFlag(t *testing.T) {
	var stderr bytes.Buffer
	err := run(context.Background(), []string{"-nope"}, &stderr)
	assert.Error(t, err)
}

func TestRunStopsWithContext(t *testing.T) {
	prev := mines.Log
	t.Cleanup(func() { mines.Log = prev })
	t.Setenv("MINES_ADDR", "127.0.0.1:0")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stderr bytes.Buffer
	require.NoError(t, run(ctx, nil, &stderr))
	assert.Contains(t, stderr.String(), "server listening")
}
