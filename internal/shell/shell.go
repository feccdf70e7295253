// Package shell implements the commands of the interactive ESX editor and
// the reports shared with the one-shot CLI.
package shell

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"golang.org/x/exp/slog"

	"github.com/vxdy/open-electribe-editor/core"
	"github.com/vxdy/open-electribe-editor/internal"
	"github.com/vxdy/open-electribe-editor/internal/logging"
	"github.com/vxdy/open-electribe-editor/internal/record"
	"github.com/vxdy/open-electribe-editor/internal/wav"
)

// Shell edits one open image. Changes stay in memory until save.
type Shell struct {
	container *core.Container
	path      string
	config    *internal.Config
	logger    *slog.Logger
	out       io.Writer
	dirty     bool
}

func New(c *core.Container, path string, config *internal.Config, out io.Writer, logger *slog.Logger) *Shell {
	if config == nil {
		config = internal.DefaultConfig()
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Shell{
		container: c,
		path:      path,
		config:    config,
		logger:    logger,
		out:       out,
	}
}

// Dirty reports whether there are unsaved changes.
func (s *Shell) Dirty() bool {
	return s.dirty
}

// IsExit reports whether cmd ends the session. Commands are matched without
// regard to case.
func IsExit(cmd string) bool {
	return strings.EqualFold(cmd, "exit") || strings.EqualFold(cmd, "quit")
}

// HandleCommand runs one parsed command line.
func (s *Shell) HandleCommand(cmd string, args []string) error {
	switch strings.ToLower(cmd) {
	case "info":
		return PrintInfo(s.out, s.container)
	case "list":
		return s.handleCommandList(args)
	case "show":
		return s.handleCommandShow(args)
	case "import":
		return s.handleCommandImport(args)
	case "export":
		return s.handleCommandExport(args)
	case "delete":
		return s.handleCommandDelete(args)
	case "rename":
		return s.handleCommandRename(args)
	case "level":
		return s.handleCommandLevel(args)
	case "tune":
		return s.handleCommandTune(args)
	case "rate":
		return s.handleCommandRate(args)
	case "range":
		return s.handleCommandRange(args)
	case "save":
		return s.handleCommandSave(args)
	case "help":
		s.handleCommandHelp()
		return nil
	default:
		return fmt.Errorf("invalid command %q, type 'help' for a list", cmd)
	}
}

func (s *Shell) handleCommandList(args []string) error {
	all := len(args) > 0 && args[0] == "all"
	return PrintSamples(s.out, s.container, all)
}

func (s *Shell) handleCommandShow(args []string) error {
	index, err := slotArgument(args, 1, "show <slot>")
	if err != nil {
		return err
	}
	h, err := s.container.Header(index)
	if err != nil {
		return err
	}

	PrintHeader(s.out, index, h)
	return nil
}

func (s *Shell) handleCommandImport(args []string) error {
	if len(args) != 2 && len(args) != 3 {
		return fmt.Errorf("usage: import <slot> <file.wav> [name]")
	}
	index, err := parseSlot(args[0])
	if err != nil {
		return err
	}

	opts := []core.ImportOption{core.WithPlayLevel(uint8(s.config.PlayLevel))}
	if len(args) == 3 {
		opts = append(opts, core.WithName(args[2]))
	}

	h, err := wav.ImportFile(s.container, index, args[1], opts...)
	if err != nil {
		return err
	}
	s.dirty = true

	s.reply("ok: slot %d %q, %s at %#x", index, h.SampleName(), humanize.IBytes(uint64(h.Playback().Len())), h.Playback().Start)
	return nil
}

func (s *Shell) handleCommandExport(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: export <slot> <file.wav>")
	}
	index, err := parseSlot(args[0])
	if err != nil {
		return err
	}

	if err := wav.ExportFile(s.container, index, args[1]); err != nil {
		return err
	}

	s.reply("ok: wrote %s", args[1])
	return nil
}

func (s *Shell) handleCommandDelete(args []string) error {
	index, err := slotArgument(args, 1, "delete <slot>")
	if err != nil {
		return err
	}
	if err := s.container.DeleteSample(index); err != nil {
		return err
	}
	s.dirty = true

	s.reply("ok")
	return nil
}

func (s *Shell) handleCommandRename(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: rename <slot> <name>")
	}
	index, err := parseSlot(args[0])
	if err != nil {
		return err
	}

	return s.editHeader(index, func(h record.Header) {
		switch h := h.(type) {
		case *record.MonoHeader:
			h.Name = args[1]
		case *record.StereoHeader:
			h.Name = args[1]
		}
	})
}

func (s *Shell) handleCommandLevel(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: level <slot> <0-255>")
	}
	index, err := parseSlot(args[0])
	if err != nil {
		return err
	}
	level, err := strconv.ParseUint(args[1], 10, 8)
	if err != nil {
		return fmt.Errorf("invalid play level %q", args[1])
	}

	return s.editHeader(index, func(h record.Header) {
		switch h := h.(type) {
		case *record.MonoHeader:
			h.PlayLevel = uint8(level)
		case *record.StereoHeader:
			h.PlayLevel = uint8(level)
		}
	})
}

func (s *Shell) handleCommandTune(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: tune <slot> <value>")
	}
	index, err := parseSlot(args[0])
	if err != nil {
		return err
	}
	tune, err := strconv.ParseInt(args[1], 10, 16)
	if err != nil {
		return fmt.Errorf("invalid tune %q", args[1])
	}

	return s.editHeader(index, func(h record.Header) {
		switch h := h.(type) {
		case *record.MonoHeader:
			h.Tune = int16(tune)
		case *record.StereoHeader:
			h.Tune = int16(tune)
		}
	})
}

func (s *Shell) handleCommandRate(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: rate <slot> <hz>")
	}
	index, err := parseSlot(args[0])
	if err != nil {
		return err
	}
	rate, err := strconv.ParseUint(args[1], 10, 32)
	if err != nil {
		return fmt.Errorf("invalid sample rate %q", args[1])
	}

	return s.editHeader(index, func(h record.Header) {
		switch h := h.(type) {
		case *record.MonoHeader:
			h.SampleRate = uint32(rate)
		case *record.StereoHeader:
			h.SampleRate = uint32(rate)
		}
	})
}

// handleCommandRange moves the playback window. Offsets accept 0x prefixes.
func (s *Shell) handleCommandRange(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("usage: range <slot> <start> <end>")
	}
	index, err := parseSlot(args[0])
	if err != nil {
		return err
	}
	start, err := strconv.ParseUint(args[1], 0, 32)
	if err != nil {
		return fmt.Errorf("invalid start offset %q", args[1])
	}
	end, err := strconv.ParseUint(args[2], 0, 32)
	if err != nil {
		return fmt.Errorf("invalid end offset %q", args[2])
	}
	if start > end {
		return fmt.Errorf("start %#x is past end %#x", start, end)
	}

	return s.editHeader(index, func(h record.Header) {
		play := record.Span{Start: uint32(start), End: uint32(end)}
		switch h := h.(type) {
		case *record.MonoHeader:
			h.Play = play
		case *record.StereoHeader:
			h.Play = play
		}
	})
}

func (s *Shell) editHeader(index int, edit func(record.Header)) error {
	h, err := s.container.Header(index)
	if err != nil {
		return err
	}
	edit(h)
	if err := s.container.WriteHeader(index, h); err != nil {
		return err
	}
	s.dirty = true

	s.reply("ok")
	return nil
}

func (s *Shell) handleCommandSave(args []string) error {
	path := s.path
	if len(args) > 0 {
		path = args[0]
	}

	if err := SaveImage(s.container, path, s.config.Backup); err != nil {
		return err
	}
	s.path = path
	s.dirty = false

	s.logger.Info("Saved", "path", path)
	s.reply("ok: saved %s", path)
	return nil
}

func (s *Shell) handleCommandHelp() {
	helpString := `
Available Commands:

INFO
  Show the image layout and sample usage.

LIST [all]
  List used sample slots, or every slot with "all".

SHOW <slot>
  Print every header field of a slot.

IMPORT <slot> <file.wav> [name]
  Append a 16-bit WAV to the image and point the slot at it.
  Slots 0-255 take mono audio, 256-383 take stereo.
  The name defaults to the file name.

EXPORT <slot> <file.wav>
  Write the slot's playback range to a WAV file.

DELETE <slot>
  Clear the slot header. The audio stays in the image.

RENAME <slot> <name>
  Change the sample name (8 characters max).

LEVEL <slot> <0-255>
  Change the play level.

TUNE <slot> <value>
  Change the sample tune.

RATE <slot> <hz>
  Change the sample rate.

RANGE <slot> <start> <end>
  Change the playback range. Offsets are relative to the sample data
  region and may be written in hex (0x...).

SAVE [path]
  Write the image to disk.

HELP
  Show this help message.

EXIT, QUIT
  Quit. Unsaved changes are lost.
`

	s.reply("%s", strings.TrimSpace(helpString))
}

func (s *Shell) reply(format string, args ...interface{}) {
	fmt.Fprintf(s.out, format+"\n", args...)
}

func slotArgument(args []string, want int, usage string) (int, error) {
	if len(args) != want {
		return 0, fmt.Errorf("usage: %s", usage)
	}
	return parseSlot(args[0])
}

func parseSlot(arg string) (int, error) {
	index, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid slot %q", arg)
	}
	return index, nil
}
