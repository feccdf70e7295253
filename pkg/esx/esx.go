package esx

import (
	"github.com/vxdy/open-electribe-editor/core"
	"github.com/vxdy/open-electribe-editor/internal/errors"
	"github.com/vxdy/open-electribe-editor/internal/record"
	"github.com/vxdy/open-electribe-editor/internal/wav"
)

type (
	Container    = core.Container
	Payload      = core.Payload
	Player       = core.Player
	Option       = core.Option
	ImportOption = core.ImportOption

	Header       = record.Header
	MonoHeader   = record.MonoHeader
	StereoHeader = record.StereoHeader
	Span         = record.Span

	Status = errors.Status
	Error  = errors.Error
)

const (
	InvalidFormat            = errors.InvalidFormat
	OutOfRange               = errors.OutOfRange
	UnsupportedFormat        = errors.UnsupportedFormat
	SlotKindMismatch         = errors.SlotKindMismatch
	UnrecognizedRecordLayout = errors.UnrecognizedRecordLayout
)

const (
	NumSamplesMono   = core.NumSamplesMono
	NumSamplesStereo = core.NumSamplesStereo
	NumSamples       = core.NumSamples
)

var (
	Open          = core.Open
	OpenFile      = core.OpenFile
	Blank         = core.Blank
	IsValid       = core.IsValid
	WithLogger    = core.WithLogger
	WithName      = core.WithName
	WithPlayLevel = core.WithPlayLevel
	DecodeWAV     = wav.Decode
	EncodeWAV     = wav.Encode
)

// ImportWAV imports the WAV file at path into slot index, naming the sample
// after the file.
func ImportWAV(c *Container, index int, path string, opts ...ImportOption) (Header, error) {
	return wav.ImportFile(c, index, path, opts...)
}

// ExportWAV writes the playback range of slot index to a WAV file.
func ExportWAV(c *Container, index int, path string) error {
	return wav.ExportFile(c, index, path)
}
