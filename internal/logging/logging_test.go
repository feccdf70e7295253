package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func TestJSONLogging(t *testing.T) {
	buf := new(bytes.Buffer)
	logger, err := New(buf, "debug", FormatJSON)
	require.NoError(t, err)

	logger.Debug("placed payload", "slot", 3)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "placed payload", entry["msg"])
	require.Equal(t, "DEBUG", entry["level"])
	require.Equal(t, float64(3), entry["slot"])
}

func TestPlainLogging(t *testing.T) {
	buf := new(bytes.Buffer)
	logger, err := New(buf, "info", FormatText)
	require.NoError(t, err)

	logger.Info("saved", "path", "a.esx")
	out := buf.String()
	require.Contains(t, out, "INFO")
	require.Contains(t, out, "saved")
	require.Contains(t, out, "path=a.esx")
}

func TestLevelFilters(t *testing.T) {
	buf := new(bytes.Buffer)
	logger, err := New(buf, "WARN", FormatJSON)
	require.NoError(t, err)

	logger.Info("dropped")
	require.Zero(t, buf.Len())

	logger.Warn("kept")
	require.NotZero(t, buf.Len())
}

func TestBadConfig(t *testing.T) {
	_, err := New(new(bytes.Buffer), "loud", FormatText)
	require.Error(t, err)

	_, err = New(new(bytes.Buffer), "info", "xml")
	require.Error(t, err)
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	logger.Error("nothing happens")
	require.False(t, logger.Enabled(context.Background(), slog.LevelError))
}
