/*
	Basic Script that writes a blank ESX image with a few test tones, for trying out the CLI.

	go run ./scripts/gen-esx.go -o test.esx
*/

package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"math"
	"time"

	"github.com/vxdy/open-electribe-editor/core"
)

const (
	sampleRate = 44100
	amplitude  = 0.5 * math.MaxInt16
	toneLength = 250 * time.Millisecond
)

var tones = []struct {
	slot      int
	name      string
	frequency float64
	channels  int
}{
	{0, "A440", 440, 1},
	{1, "A220", 220, 1},
	{2, "E659", 659.25, 1},
	{core.NumSamplesMono, "ST880", 880, 2},
}

func main() {
	out := flag.String("o", "test.esx", "Output image path")
	flag.Parse()

	start := time.Now()
	c, err := core.Open(core.Blank())
	if err != nil {
		panic(err)
	}

	for _, tone := range tones {
		pcm := sine(tone.frequency, tone.channels)
		h, err := c.ImportSample(tone.slot, core.Payload{
			PCM:        pcm,
			SampleRate: sampleRate,
			Channels:   tone.channels,
			BitDepth:   16,
		}, core.WithName(tone.name))
		if err != nil {
			panic(err)
		}
		fmt.Printf("slot %3d: %-6s %d bytes at %#x\n", tone.slot, h.SampleName(), len(pcm), h.Playback().Start)
	}

	if err := c.Save(*out); err != nil {
		panic(err)
	}
	fmt.Printf("Wrote %s (%d bytes) in %v\n", *out, c.Len(), time.Since(start))
}

// sine renders a 16-bit little-endian tone, interleaved when stereo
func sine(frequency float64, channels int) []byte {
	frames := int(toneLength.Seconds() * sampleRate)
	pcm := make([]byte, frames*channels*2)

	for i := 0; i < frames; i++ {
		v := int16(amplitude * math.Sin(2*math.Pi*frequency*float64(i)/sampleRate))
		for ch := 0; ch < channels; ch++ {
			binary.LittleEndian.PutUint16(pcm[(i*channels+ch)*2:], uint16(v))
		}
	}
	return pcm
}
