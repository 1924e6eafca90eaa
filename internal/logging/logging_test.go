package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spiders/internal/config"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	l := Component(New(config.LogConfig{Level: "info", Format: "json"}, &buf), "test")

	l.Debug().Msg("hidden")
	l.Info().Int("x", 3).Msg("shown")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "shown", entry["message"])
	assert.Equal(t, "test", entry["component"])
	assert.Equal(t, float64(3), entry["x"])
}

func TestNewConsoleUnknownLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(config.LogConfig{Level: "chatty", Format: "console"}, &buf)

	l.Info().Msg("quiet")
	assert.Empty(t, buf.String())

	l.Warn().Msg("loud")
	assert.Contains(t, buf.String(), "loud")
}
