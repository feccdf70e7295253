package internal_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vxdy/open-electribe-editor/internal"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		c, err := internal.LoadConfig(internal.NewViper(), "")
		require.NoError(t, err)
		require.Equal(t, internal.DefaultConfig(), c)
	})

	t.Run("config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "esx.toml")
		require.NoError(t, os.WriteFile(path, []byte("log-level = \"debug\"\nplay-level = 80\nbackup = true\n"), 0644))

		c, err := internal.LoadConfig(internal.NewViper(), path)
		require.NoError(t, err)
		require.Equal(t, "debug", c.LogLevel)
		require.Equal(t, 80, c.PlayLevel)
		require.True(t, c.Backup)
		require.Equal(t, internal.DEFAULT_LOG_FORMAT, c.LogFormat)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("ESX_LOG_FORMAT", "json")
		t.Setenv("ESX_PLAY_LEVEL", "127")

		c, err := internal.LoadConfig(internal.NewViper(), "")
		require.NoError(t, err)
		require.Equal(t, "json", c.LogFormat)
		require.Equal(t, 127, c.PlayLevel)
	})

	t.Run("play level out of range", func(t *testing.T) {
		t.Setenv("ESX_PLAY_LEVEL", "300")

		_, err := internal.LoadConfig(internal.NewViper(), "")
		require.Error(t, err)
	})

	t.Run("unknown log format", func(t *testing.T) {
		t.Setenv("ESX_LOG_FORMAT", "xml")

		_, err := internal.LoadConfig(internal.NewViper(), "")
		require.Error(t, err)
	})

	t.Run("missing config file", func(t *testing.T) {
		_, err := internal.LoadConfig(internal.NewViper(), filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})
}
