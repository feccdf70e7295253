package main

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vxdy/open-electribe-editor/core"
	"github.com/vxdy/open-electribe-editor/internal/record"
	"github.com/vxdy/open-electribe-editor/internal/wav"
	. "github.com/vxdy/open-electribe-editor/internal/utils"
)

var cmdImport = &cobra.Command{
	Use:   "import <image> <slot> <file.wav>",
	Short: "Append a 16-bit WAV file to the image and point a slot at it",
	Long:  "Slots 0-255 take mono audio and slots 256-383 take stereo audio.",
	Args:  cobra.ExactArgs(3),
	Run:   runImport,
}

var cmdExport = &cobra.Command{
	Use:   "export <image> <slot> <file.wav>",
	Short: "Write the playback range of a slot to a WAV file",
	Args:  cobra.ExactArgs(3),
	Run: func(_ *cobra.Command, args []string) {
		c := openImage(args[0])
		Check(wav.ExportFile(c, parseSlot(args[1]), args[2]))
	},
}

var cmdDelete = &cobra.Command{
	Use:   "delete <image> <slot>",
	Short: "Clear a slot header",
	Long:  "The sample audio stays in the image and its space is not reused.",
	Args:  cobra.ExactArgs(2),
	Run: func(_ *cobra.Command, args []string) {
		c := openImage(args[0])
		Check(c.DeleteSample(parseSlot(args[1])))
		saveImage(c, args[0])
	},
}

var cmdEdit = &cobra.Command{
	Use:   "edit <image> <slot>",
	Short: "Change the header fields of a slot",
	Args:  cobra.ExactArgs(2),
	Run:   runEdit,
}

var flagImport struct {
	Name  string
	Level int
}

var flagEdit struct {
	Name  string
	Level uint8
	Tune  int16
	Rate  uint32
	Start uint32
	End   uint32
}

func init() {
	cmdImport.Flags().StringVarP(&flagImport.Name, "name", "n", "", "Sample name (defaults to the file name)")
	cmdImport.Flags().IntVarP(&flagImport.Level, "level", "l", -1, "Play level (defaults to the configured play-level)")

	cmdEdit.Flags().StringVarP(&flagEdit.Name, "name", "n", "", "Sample name")
	cmdEdit.Flags().Uint8VarP(&flagEdit.Level, "level", "l", 0, "Play level")
	cmdEdit.Flags().Int16Var(&flagEdit.Tune, "tune", 0, "Sample tune")
	cmdEdit.Flags().Uint32Var(&flagEdit.Rate, "rate", 0, "Sample rate")
	cmdEdit.Flags().Uint32Var(&flagEdit.Start, "start", 0, "Playback start offset")
	cmdEdit.Flags().Uint32Var(&flagEdit.End, "end", 0, "Playback end offset")

	cmdMain.AddCommand(cmdImport, cmdExport, cmdDelete, cmdEdit)
}

func runImport(_ *cobra.Command, args []string) {
	c := openImage(args[0])
	index := parseSlot(args[1])

	level := config.PlayLevel
	if flagImport.Level >= 0 {
		level = flagImport.Level
	}
	if level > 255 {
		Fatalf("play level %d outside [0, 255]", level)
	}

	opts := []core.ImportOption{core.WithPlayLevel(uint8(level))}
	if flagImport.Name != "" {
		opts = append(opts, core.WithName(flagImport.Name))
	}

	h, err := wav.ImportFile(c, index, args[2], opts...)
	Checkf(err, "import %s", args[2])

	play := h.Playback()
	fmt.Printf("slot %d: %q, %s at %#x\n", index, h.SampleName(), humanize.IBytes(uint64(play.Len())), play.Start)
	saveImage(c, args[0])
}

func runEdit(cmd *cobra.Command, args []string) {
	c := openImage(args[0])
	index := parseSlot(args[1])

	h, err := c.Header(index)
	Check(err)

	changed := cmd.Flags().Changed
	switch h := h.(type) {
	case *record.MonoHeader:
		if changed("name") {
			h.Name = flagEdit.Name
		}
		if changed("level") {
			h.PlayLevel = flagEdit.Level
		}
		if changed("tune") {
			h.Tune = flagEdit.Tune
		}
		if changed("rate") {
			h.SampleRate = flagEdit.Rate
		}
		if changed("start") {
			h.Play.Start = flagEdit.Start
		}
		if changed("end") {
			h.Play.End = flagEdit.End
		}

	case *record.StereoHeader:
		if changed("name") {
			h.Name = flagEdit.Name
		}
		if changed("level") {
			h.PlayLevel = flagEdit.Level
		}
		if changed("tune") {
			h.Tune = flagEdit.Tune
		}
		if changed("rate") {
			h.SampleRate = flagEdit.Rate
		}
		if changed("start") {
			h.Play.Start = flagEdit.Start
		}
		if changed("end") {
			h.Play.End = flagEdit.End
		}
	}

	if play := h.Playback(); play.Start > play.End {
		Warnf("slot %d: playback start %#x is past its end %#x, the sample will be silent", index, play.Start, play.End)
	}

	Check(c.WriteHeader(index, h))
	saveImage(c, args[0])
}

func parseSlot(arg string) int {
	index, err := strconv.Atoi(arg)
	Checkf(err, "invalid slot %q", arg)
	return index
}
