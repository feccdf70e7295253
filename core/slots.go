package core

import (
	"github.com/vxdy/open-electribe-editor/internal/errors"
	"github.com/vxdy/open-electribe-editor/internal/record"
)

// SlotLocation places one sample header inside the image.
//
// Slots [0, NumSamplesMono) live in the mono table, the rest in the stereo
// table. A slot's kind is fixed by its position and never changes.
type SlotLocation struct {
	Index  int         // Sample slot index
	Offset int         // Absolute address of the header
	Size   int         // Header size in bytes
	Kind   record.Kind // Mono or Stereo
}

// Locate returns where the header of the given slot lives.
func Locate(index int) (SlotLocation, error) {
	switch {
	case index < 0 || index >= NumSamples:
		return SlotLocation{}, errors.OutOfRange.WithFormat("sample slot %d outside [0, %d)", index, NumSamples)

	case index < NumSamplesMono:
		return SlotLocation{
			Index:  index,
			Offset: AddrSampleHeaderMono + index*SampleHeaderSizeMono,
			Size:   SampleHeaderSizeMono,
			Kind:   record.Mono,
		}, nil

	default:
		return SlotLocation{
			Index:  index,
			Offset: AddrSampleHeaderStereo + (index-NumSamplesMono)*SampleHeaderSizeStereo,
			Size:   SampleHeaderSizeStereo,
			Kind:   record.Stereo,
		}, nil
	}
}
