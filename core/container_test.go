package core_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vxdy/open-electribe-editor/core"
	"github.com/vxdy/open-electribe-editor/internal/errors"
	"github.com/vxdy/open-electribe-editor/internal/lock"
	"github.com/vxdy/open-electribe-editor/internal/record"
)

func openBlank(t *testing.T) *core.Container {
	t.Helper()

	c, err := core.Open(core.Blank())
	require.NoError(t, err)
	return c
}

func TestOpen(t *testing.T) {
	t.Run("serialize returns the original bytes", func(t *testing.T) {
		data := core.Blank()
		data[core.AddrGlobalParameters] = 0x5A
		data[core.AddrSongData+3] = 0xA5

		c, err := core.Open(data)
		require.NoError(t, err)
		require.Equal(t, data, c.Serialize())
		require.Equal(t, len(data), c.Len())
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		_, err := core.Open(make([]byte, core.AddrSampleData))
		require.ErrorIs(t, err, errors.InvalidFormat)

		_, err = core.Open(nil)
		require.ErrorIs(t, err, errors.InvalidFormat)
	})

	t.Run("input is not retained", func(t *testing.T) {
		data := core.Blank()
		c, err := core.Open(data)
		require.NoError(t, err)

		data[core.AddrGlobalParameters] = 0xFF
		params, err := c.GlobalParameters()
		require.NoError(t, err)
		require.Zero(t, params[0])
	})

	t.Run("open file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "card.esx")
		require.NoError(t, os.WriteFile(path, core.Blank(), 0644))

		c, err := core.OpenFile(path)
		require.NoError(t, err)
		require.Equal(t, core.AddrSampleData, c.Len())

		_, err = core.OpenFile(filepath.Join(t.TempDir(), "missing.esx"))
		require.Error(t, err)
	})
}

func TestSectionViews(t *testing.T) {
	c := openBlank(t)

	params, err := c.GlobalParameters()
	require.NoError(t, err)
	require.Len(t, params, core.AddrUnknownSection1-core.AddrGlobalParameters)

	patterns, err := c.Patterns()
	require.NoError(t, err)
	require.Len(t, patterns, core.NumPatterns)
	require.Len(t, patterns[0], core.SizePatternRecord)

	songs, err := c.Songs()
	require.NoError(t, err)
	require.Len(t, songs, core.NumSongs)
	require.Len(t, songs[0], core.SizeSongRecord)

	headers, err := c.SampleHeaders()
	require.NoError(t, err)
	require.Len(t, headers, core.NumSamples)
	require.Len(t, headers[0], core.SampleHeaderSizeMono)
	require.Len(t, headers[core.NumSamplesMono], core.SampleHeaderSizeStereo)
}

func TestHeaders(t *testing.T) {
	t.Run("blank image decodes to empty headers of the slot kind", func(t *testing.T) {
		c := openBlank(t)

		headers, err := c.Headers()
		require.NoError(t, err)
		require.Len(t, headers, core.NumSamples)
		require.Equal(t, record.Mono, headers[0].Kind())
		require.Equal(t, record.Stereo, headers[core.NumSamples-1].Kind())
		for _, h := range headers {
			require.False(t, record.HasPayload(h))
		}
	})

	t.Run("write header keeps bytes outside the edited fields", func(t *testing.T) {
		c := openBlank(t)

		h := record.NewMono("SNARE", 0, 100, 22050)
		h.Tune = -3
		require.NoError(t, c.WriteHeader(5, h))

		got, err := c.Header(5)
		require.NoError(t, err)
		require.Equal(t, h, got)

		others, err := c.Header(4)
		require.NoError(t, err)
		require.False(t, record.HasPayload(others))
	})

	t.Run("write header rejects the wrong kind", func(t *testing.T) {
		c := openBlank(t)
		before := c.Serialize()

		err := c.WriteHeader(0, record.NewStereo("X", 0, 4, 44100))
		require.ErrorIs(t, err, errors.SlotKindMismatch)

		err = c.WriteHeader(0, &record.UnrecognizedHeader{Length: 12})
		require.ErrorIs(t, err, errors.UnrecognizedRecordLayout)

		err = c.WriteHeader(core.NumSamples, record.NewMono("X", 0, 4, 44100))
		require.ErrorIs(t, err, errors.OutOfRange)

		require.Equal(t, before, c.Serialize())
	})
}

func TestSave(t *testing.T) {
	t.Run("saved image reopens identically", func(t *testing.T) {
		c := openBlank(t)
		_, err := c.ImportSample(0, monoPayload(64))
		require.NoError(t, err)

		path := filepath.Join(t.TempDir(), "card.esx")
		require.NoError(t, c.Save(path))

		reopened, err := core.OpenFile(path)
		require.NoError(t, err)
		require.Equal(t, c.Serialize(), reopened.Serialize())


		// The lock is released once the save returns
		f, err := lock.LockFile(path)
		require.NoError(t, err)
		lock.UnlockFile(f)
		require.NoError(t, c.Save(path))
	})

	t.Run("save replaces an existing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "card.esx")
		require.NoError(t, os.WriteFile(path, []byte("old"), 0644))

		c := openBlank(t)
		require.NoError(t, c.Save(path))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Equal(t, c.Serialize(), data)
	})

	t.Run("save refuses while the image is locked", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "card.esx")
		f, err := lock.LockFile(path)
		require.NoError(t, err)
		defer lock.UnlockFile(f)

		c := openBlank(t)
		require.Error(t, c.Save(path))
		require.NoFileExists(t, path)
	})
}
