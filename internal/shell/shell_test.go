package shell_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vxdy/open-electribe-editor/core"
	"github.com/vxdy/open-electribe-editor/internal"
	"github.com/vxdy/open-electribe-editor/internal/errors"
	"github.com/vxdy/open-electribe-editor/internal/record"
	"github.com/vxdy/open-electribe-editor/internal/shell"
	"github.com/vxdy/open-electribe-editor/internal/wav"
)

func newShell(t *testing.T) (*shell.Shell, *core.Container, *bytes.Buffer, string) {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "card.esx")
	require.NoError(t, os.WriteFile(path, core.Blank(), 0644))

	c, err := core.OpenFile(path)
	require.NoError(t, err)

	out := new(bytes.Buffer)
	return shell.New(c, path, internal.DefaultConfig(), out, nil), c, out, dir
}

func writeWav(t *testing.T, dir, name string, channels int, n int) string {
	t.Helper()

	path := filepath.Join(dir, name)
	pcm := make([]byte, n)
	for i := range pcm {
		pcm[i] = byte(i)
	}
	require.NoError(t, wav.WriteFile(path, pcm, 44100, channels))
	return path
}

func TestImportExport(t *testing.T) {
	s, c, out, dir := newShell(t)
	src := writeWav(t, dir, "kick drum.wav", 1, 200)

	require.NoError(t, s.HandleCommand("import", []string{"0", src}))
	require.Contains(t, out.String(), "ok")
	require.True(t, s.Dirty())

	h, err := c.Header(0)
	require.NoError(t, err)
	require.Equal(t, "kick dru", h.SampleName())
	require.Equal(t, uint8(record.DefaultPlayLevel), h.(*record.MonoHeader).PlayLevel)

	dst := filepath.Join(dir, "out.wav")
	require.NoError(t, s.HandleCommand("export", []string{"0", dst}))

	exported, err := wav.ReadFile(dst)
	require.NoError(t, err)
	original, err := wav.ReadFile(src)
	require.NoError(t, err)
	require.Equal(t, original, exported)
}

func TestImportRejections(t *testing.T) {
	s, c, _, dir := newShell(t)
	stereo := writeWav(t, dir, "pad.wav", 2, 64)
	before := c.Serialize()

	err := s.HandleCommand("import", []string{"0", stereo})
	require.ErrorIs(t, err, errors.SlotKindMismatch)
	require.Equal(t, before, c.Serialize())
	require.False(t, s.Dirty())

	err = s.HandleCommand("import", []string{"0"})
	require.Error(t, err)

	err = s.HandleCommand("import", []string{"x", stereo})
	require.Error(t, err)

	require.NoError(t, s.HandleCommand("import", []string{"256", stereo, "PAD"}))
	h, err := c.Header(256)
	require.NoError(t, err)
	require.Equal(t, "PAD", h.SampleName())
}

func TestEditCommands(t *testing.T) {
	s, c, out, dir := newShell(t)
	src := writeWav(t, dir, "snare.wav", 1, 32)
	require.NoError(t, s.HandleCommand("import", []string{"4", src}))

	require.NoError(t, s.HandleCommand("rename", []string{"4", "SN2"}))
	require.NoError(t, s.HandleCommand("level", []string{"4", "42"}))

	h, err := c.Header(4)
	require.NoError(t, err)
	mono := h.(*record.MonoHeader)
	require.Equal(t, "SN2", mono.Name)
	require.Equal(t, uint8(42), mono.PlayLevel)
	require.Equal(t, uint32(32), mono.Play.End)

	require.Error(t, s.HandleCommand("level", []string{"4", "256"}))

	require.NoError(t, s.HandleCommand("tune", []string{"4", "-12"}))
	require.NoError(t, s.HandleCommand("RATE", []string{"4", "22050"}))
	require.NoError(t, s.HandleCommand("range", []string{"4", "0x4", "16"}))

	h, err = c.Header(4)
	require.NoError(t, err)
	mono = h.(*record.MonoHeader)
	require.Equal(t, int16(-12), mono.Tune)
	require.Equal(t, uint32(22050), mono.SampleRate)
	require.Equal(t, record.Span{Start: 4, End: 16}, mono.Play)
	require.Equal(t, record.Span{Start: 0, End: 32}, mono.Channel1)
	require.Equal(t, "SN2", mono.Name)

	got, err := c.ReadSample(4)
	require.NoError(t, err)
	require.Len(t, got, 12)

	require.Error(t, s.HandleCommand("range", []string{"4", "16", "4"}))
	require.Error(t, s.HandleCommand("tune", []string{"4", "40000"}))
	require.Error(t, s.HandleCommand("rate", []string{"4", "fast"}))
	require.Error(t, s.HandleCommand("range", []string{"4", "0"}))

	out.Reset()
	require.NoError(t, s.HandleCommand("show", []string{"4"}))
	require.Contains(t, out.String(), `"SN2"`)

	out.Reset()
	require.NoError(t, s.HandleCommand("list", nil))
	require.Contains(t, out.String(), "SN2")

	require.NoError(t, s.HandleCommand("delete", []string{"4"}))
	out.Reset()
	require.NoError(t, s.HandleCommand("list", nil))
	require.Equal(t, "nil\n", out.String())

	require.Error(t, s.HandleCommand("export", []string{"4", filepath.Join(dir, "empty.wav")}))
	require.ErrorIs(t, s.HandleCommand("delete", []string{"999"}), errors.OutOfRange)
}

func TestSave(t *testing.T) {
	t.Run("save writes the image", func(t *testing.T) {
		s, c, _, dir := newShell(t)
		src := writeWav(t, dir, "hat.wav", 1, 16)
		require.NoError(t, s.HandleCommand("import", []string{"1", src}))

		target := filepath.Join(dir, "copy.esx")
		require.NoError(t, s.HandleCommand("save", []string{target}))
		require.False(t, s.Dirty())

		data, err := os.ReadFile(target)
		require.NoError(t, err)
		require.Equal(t, c.Serialize(), data)
	})

	t.Run("backup keeps the previous file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "card.esx")
		require.NoError(t, os.WriteFile(path, core.Blank(), 0644))

		c, err := core.OpenFile(path)
		require.NoError(t, err)
		_, err = c.ImportSample(0, core.Payload{PCM: []byte{1, 2}, SampleRate: 8000, Channels: 1, BitDepth: 16})
		require.NoError(t, err)

		require.NoError(t, shell.SaveImage(c, path, true))

		backup, err := os.ReadFile(path + ".bak")
		require.NoError(t, err)
		require.Equal(t, core.Blank(), backup)

		saved, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Equal(t, c.Serialize(), saved)
	})
}

func TestInfoAndHelp(t *testing.T) {
	s, _, out, _ := newShell(t)

	require.NoError(t, s.HandleCommand("info", nil))
	require.Contains(t, out.String(), "Patterns:        256")
	require.Contains(t, out.String(), "Songs:           64")
	require.Contains(t, out.String(), "Mono samples:    0 / 256")

	out.Reset()
	require.NoError(t, s.HandleCommand("help", nil))
	require.Contains(t, out.String(), "IMPORT <slot> <file.wav> [name]")

	require.Error(t, s.HandleCommand("frobnicate", nil))
}

func TestIsExit(t *testing.T) {
	for _, cmd := range []string{"exit", "EXIT", "Exit", "quit", "QUIT"} {
		require.True(t, shell.IsExit(cmd), cmd)
	}
	for _, cmd := range []string{"", "exits", "list"} {
		require.False(t, shell.IsExit(cmd), cmd)
	}
}
