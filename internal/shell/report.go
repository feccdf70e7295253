package shell

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"

	"github.com/vxdy/open-electribe-editor/core"
	"github.com/vxdy/open-electribe-editor/internal/record"
)

// PrintInfo writes a summary of the image layout and sample usage.
func PrintInfo(w io.Writer, c *core.Container) error {
	headers, err := c.Headers()
	if err != nil {
		return err
	}
	patterns, err := c.Patterns()
	if err != nil {
		return err
	}
	songs, err := c.Songs()
	if err != nil {
		return err
	}
	next, err := c.NextFree()
	if err != nil {
		return err
	}

	var mono, stereo int
	for _, h := range headers {
		if !record.HasPayload(h) {
			continue
		}
		switch h.Kind() {
		case record.Mono:
			mono++
		case record.Stereo:
			stereo++
		}
	}

	fmt.Fprintf(w, "Image size:      %s (%s bytes)\n", humanize.IBytes(uint64(c.Len())), humanize.Comma(int64(c.Len())))
	for _, s := range core.Sections {
		fmt.Fprintf(w, "  %-22s %#08x  %s\n", s.Name, s.Start, humanize.IBytes(uint64(s.Len())))
	}
	fmt.Fprintf(w, "Patterns:        %d\n", len(patterns))
	fmt.Fprintf(w, "Songs:           %d\n", len(songs))
	fmt.Fprintf(w, "Mono samples:    %d / %d\n", mono, core.NumSamplesMono)
	fmt.Fprintf(w, "Stereo samples:  %d / %d\n", stereo, core.NumSamplesStereo)
	fmt.Fprintf(w, "Sample data:     %s (next free offset %#x)\n", humanize.IBytes(uint64(max(c.Len()-core.AddrSampleData, 0))), next)
	return nil
}

// PrintSamples writes a table of sample slots. Empty slots are skipped
// unless all is set.
func PrintSamples(w io.Writer, c *core.Container, all bool) error {
	headers, err := c.Headers()
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Slot", "Kind", "Name", "Start", "End", "Size", "Rate", "Level"})
	table.SetBorder(false)
	table.SetAutoWrapText(false)

	rows := 0
	for i, h := range headers {
		if !all && !record.HasPayload(h) {
			continue
		}
		table.Append(sampleRow(i, h))
		rows++
	}

	if rows == 0 {
		fmt.Fprintln(w, "nil")
		return nil
	}
	table.Render()
	return nil
}

func sampleRow(index int, h record.Header) []string {
	play := h.Playback()
	level := "-"
	switch h := h.(type) {
	case *record.MonoHeader:
		level = strconv.Itoa(int(h.PlayLevel))
	case *record.StereoHeader:
		level = strconv.Itoa(int(h.PlayLevel))
	}

	return []string{
		strconv.Itoa(index),
		h.Kind().String(),
		h.SampleName(),
		fmt.Sprintf("%#x", play.Start),
		fmt.Sprintf("%#x", play.End),
		humanize.IBytes(uint64(play.Len())),
		strconv.FormatUint(uint64(h.Rate()), 10),
		level,
	}
}

// PrintHeader writes every field of a decoded header.
func PrintHeader(w io.Writer, index int, h record.Header) {
	fmt.Fprintf(w, "Slot %d (%v)\n", index, h.Kind())

	switch h := h.(type) {
	case *record.MonoHeader:
		fmt.Fprintf(w, "  name:         %q\n", h.Name)
		fmt.Fprintf(w, "  channel 1:    %#x - %#x\n", h.Channel1.Start, h.Channel1.End)
		fmt.Fprintf(w, "  playback:     %#x - %#x\n", h.Play.Start, h.Play.End)
		fmt.Fprintf(w, "  loop start:   %#x\n", h.LoopStart)
		fmt.Fprintf(w, "  sample rate:  %d\n", h.SampleRate)
		fmt.Fprintf(w, "  tune:         %d\n", h.Tune)
		fmt.Fprintf(w, "  play level:   %d\n", h.PlayLevel)
		fmt.Fprintf(w, "  stretch step: %d\n", h.StretchStep)

	case *record.StereoHeader:
		fmt.Fprintf(w, "  name:         %q\n", h.Name)
		fmt.Fprintf(w, "  channel 1:    %#x - %#x\n", h.Channel1.Start, h.Channel1.End)
		fmt.Fprintf(w, "  channel 2:    %#x - %#x\n", h.Channel2.Start, h.Channel2.End)
		fmt.Fprintf(w, "  playback:     %#x - %#x\n", h.Play.Start, h.Play.End)
		fmt.Fprintf(w, "  sample rate:  %d\n", h.SampleRate)
		fmt.Fprintf(w, "  tune:         %d\n", h.Tune)
		fmt.Fprintf(w, "  play level:   %d\n", h.PlayLevel)
		fmt.Fprintf(w, "  stretch step: %d\n", h.StretchStep)

	case *record.UnrecognizedHeader:
		fmt.Fprintf(w, "  %d byte record with no known layout\n", h.Length)
	}
}
