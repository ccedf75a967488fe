package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/niwa/internal/config"
)

func TestNewWritesToFallback(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := New(config.LogConfig{Level: "info"}, "niwa", &buf)
	require.NoError(t, err)
	defer closer.Close()

	logger.Info("level loaded", "id", "01-first-light")
	logger.Debug("hidden")

	out := buf.String()
	assert.Contains(t, out, "level loaded")
	assert.Contains(t, out, "01-first-light")
	assert.Contains(t, out, "niwa")
	assert.NotContains(t, out, "hidden")
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := New(config.LogConfig{Level: "debug", Format: "json"}, "", &buf)
	require.NoError(t, err)

	logger.Debug("cast", "outcome", "edge")
	assert.Contains(t, buf.String(), `"outcome":"edge"`)
}

func TestNewRotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "niwa.log")
	var fallback bytes.Buffer

	logger, closer, err := New(config.LogConfig{File: path, MaxSizeMB: 1}, "niwa", &fallback)
	require.NoError(t, err)

	logger.Warn("storage unavailable")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "storage unavailable")
	assert.Zero(t, fallback.Len())
}

func TestNewRejectsBadSettings(t *testing.T) {
	_, _, err := New(config.LogConfig{Level: "loud"}, "", &bytes.Buffer{})
	assert.Error(t, err)

	_, _, err = New(config.LogConfig{Format: "xml"}, "", &bytes.Buffer{})
	assert.Error(t, err)
}
