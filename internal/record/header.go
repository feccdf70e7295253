package record

import (
	"bytes"
	"strings"

	"github.com/vxdy/open-electribe-editor/internal/buffer"
	"github.com/vxdy/open-electribe-editor/internal/errors"
)

// Name (8) + 6 offsets (24) + Tune (2) + PlayLevel, Reserved, StretchStep, Reserved x3 (6)
const MonoHeaderSizeBytes = 40

// Name (8) + 7 offsets (28) + Tune (2) + PlayLevel, Reserved, StretchStep, Reserved x3 (6)
const StereoHeaderSizeBytes = 44

const NameSizeBytes = 8

// DefaultPlayLevel is the play level given to freshly imported samples.
const DefaultPlayLevel = 100

// Kind tags a decoded header with its layout.
type Kind int

const (
	Unrecognized Kind = iota
	Mono
	Stereo
)

func (k Kind) String() string {
	switch k {
	case Mono:
		return "mono"
	case Stereo:
		return "stereo"
	default:
		return "unrecognized"
	}
}

// Size returns the record size of a kind, or 0 for Unrecognized.
func (k Kind) Size() int {
	switch k {
	case Mono:
		return MonoHeaderSizeBytes
	case Stereo:
		return StereoHeaderSizeBytes
	default:
		return 0
	}
}

// Span is a [Start, End) byte range relative to the sample data region.
type Span struct {
	Start uint32
	End   uint32
}

// Len returns the span length, or 0 if End is not after Start.
func (s Span) Len() uint32 {
	if s.End <= s.Start {
		return 0
	}
	return s.End - s.Start
}

// Header is a decoded sample header. It is one of *MonoHeader,
// *StereoHeader or *UnrecognizedHeader.
type Header interface {
	Kind() Kind
	SampleName() string
	// Playback returns the playback range used to read the payload.
	Playback() Span
	// MaxEnd returns the largest end offset the header references.
	MaxEnd() uint32
	Rate() uint32
	Channels() int
}

// MonoHeader is the 40-byte mono sample header.
type MonoHeader struct {
	Name        string
	Channel1    Span
	Play        Span
	LoopStart   uint32
	SampleRate  uint32
	Tune        int16
	PlayLevel   uint8
	StretchStep uint8
	Reserved    [4]int8
}

// StereoHeader is the 44-byte stereo sample header. It has no loop start.
type StereoHeader struct {
	Name        string
	Channel1    Span
	Channel2    Span
	Play        Span
	SampleRate  uint32
	Tune        int16
	PlayLevel   uint8
	StretchStep uint8
	Reserved    [4]int8
}

// UnrecognizedHeader records the length of a header that matched neither
// layout.
type UnrecognizedHeader struct {
	Length int
}

func (*MonoHeader) Kind() Kind           { return Mono }
func (h *MonoHeader) SampleName() string { return h.Name }
func (h *MonoHeader) Playback() Span     { return h.Play }
func (h *MonoHeader) MaxEnd() uint32     { return max(h.Channel1.End, h.Play.End) }
func (h *MonoHeader) Rate() uint32       { return h.SampleRate }
func (*MonoHeader) Channels() int        { return 1 }

func (*StereoHeader) Kind() Kind           { return Stereo }
func (h *StereoHeader) SampleName() string { return h.Name }
func (h *StereoHeader) Playback() Span     { return h.Play }
func (h *StereoHeader) MaxEnd() uint32     { return max(h.Channel1.End, h.Channel2.End, h.Play.End) }
func (h *StereoHeader) Rate() uint32       { return h.SampleRate }
func (*StereoHeader) Channels() int        { return 2 }

func (*UnrecognizedHeader) Kind() Kind         { return Unrecognized }
func (*UnrecognizedHeader) SampleName() string { return "" }
func (*UnrecognizedHeader) Playback() Span     { return Span{} }
func (*UnrecognizedHeader) MaxEnd() uint32     { return 0 }
func (*UnrecognizedHeader) Rate() uint32       { return 0 }
func (*UnrecognizedHeader) Channels() int      { return 0 }

// HasPayload reports whether the header addresses any sample data.
func HasPayload(h Header) bool {
	return h.Playback().Len() > 0
}

// NewMono builds a mono header whose channel and playback ranges both cover
// [start, end). The loop starts at the playback start.
func NewMono(name string, start, end, sampleRate uint32) *MonoHeader {
	return &MonoHeader{
		Name:       name,
		Channel1:   Span{start, end},
		Play:       Span{start, end},
		LoopStart:  start,
		SampleRate: sampleRate,
	}
}

// NewStereo builds a stereo header whose channel 1, channel 2 and playback
// ranges all cover [start, end).
func NewStereo(name string, start, end, sampleRate uint32) *StereoHeader {
	return &StereoHeader{
		Name:       name,
		Channel1:   Span{start, end},
		Channel2:   Span{start, end},
		Play:       Span{start, end},
		SampleRate: sampleRate,
	}
}

// Decode dispatches on len(raw). A mono or stereo sized record decodes to
// its layout; anything else yields an *UnrecognizedHeader. Decode never
// fails.
func Decode(raw []byte) Header {
	r := &fieldReader{b: buffer.Wrap(raw)}
	if err := r.b.SetPosition(NameSizeBytes); err != nil {
		return &UnrecognizedHeader{Length: len(raw)}
	}

	var h Header
	switch len(raw) {
	case MonoHeaderSizeBytes:
		m := &MonoHeader{Name: DecodeName(raw[:NameSizeBytes])}
		m.Channel1 = Span{r.u32(), r.u32()}
		m.Play = Span{r.u32(), r.u32()}
		m.LoopStart = r.u32()
		m.SampleRate = r.u32()
		m.Tune = r.i16()
		m.PlayLevel = r.u8()
		m.Reserved[0] = r.i8()
		m.StretchStep = r.u8()
		m.Reserved[1] = r.i8()
		m.Reserved[2] = r.i8()
		m.Reserved[3] = r.i8()
		h = m

	case StereoHeaderSizeBytes:
		s := &StereoHeader{Name: DecodeName(raw[:NameSizeBytes])}
		s.Channel1 = Span{r.u32(), r.u32()}
		s.Channel2 = Span{r.u32(), r.u32()}
		s.Play = Span{r.u32(), r.u32()}
		s.SampleRate = r.u32()
		s.Tune = r.i16()
		s.PlayLevel = r.u8()
		s.Reserved[0] = r.i8()
		s.StretchStep = r.u8()
		s.Reserved[1] = r.i8()
		s.Reserved[2] = r.i8()
		s.Reserved[3] = r.i8()
		h = s

	default:
		return &UnrecognizedHeader{Length: len(raw)}
	}

	if r.err != nil {
		return &UnrecognizedHeader{Length: len(raw)}
	}
	return h
}

// Encode writes h over a copy of template and returns the result. The
// template is extended with zeros if it is shorter than the layout of h;
// bytes past the layout are kept. A nil template encodes a fresh record.
//
// If the name is unchanged from the name decoded out of the template, the
// template's name bytes are kept as they are.
func Encode(h Header, template []byte) ([]byte, error) {
	size := h.Kind().Size()
	if size == 0 {
		if u, ok := h.(*UnrecognizedHeader); ok {
			return nil, errors.UnrecognizedRecordLayout.WithFormat("cannot encode a %d byte header", u.Length)
		}
		return nil, errors.UnrecognizedRecordLayout.With("cannot encode header")
	}

	b := buffer.Wrap(template)
	b.Grow(size)
	old, err := b.Slice(0, NameSizeBytes)
	if err != nil {
		return nil, err
	}
	if h.SampleName() != DecodeName(old) {
		name := EncodeName(h.SampleName())
		if err := b.Splice(0, name[:]); err != nil {
			return nil, err
		}
	}

	w := &fieldWriter{b: b}
	w.err = b.SetPosition(NameSizeBytes)

	switch h := h.(type) {
	case *MonoHeader:
		w.u32(h.Channel1.Start, h.Channel1.End)
		w.u32(h.Play.Start, h.Play.End)
		w.u32(h.LoopStart, h.SampleRate)
		w.i16(h.Tune)
		w.u8(h.PlayLevel)
		w.i8(h.Reserved[0])
		w.u8(h.StretchStep)
		w.i8(h.Reserved[1], h.Reserved[2], h.Reserved[3])

	case *StereoHeader:
		w.u32(h.Channel1.Start, h.Channel1.End)
		w.u32(h.Channel2.Start, h.Channel2.End)
		w.u32(h.Play.Start, h.Play.End)
		w.u32(h.SampleRate)
		w.i16(h.Tune)
		w.u8(h.PlayLevel)
		w.i8(h.Reserved[0])
		w.u8(h.StretchStep)
		w.i8(h.Reserved[1], h.Reserved[2], h.Reserved[3])
	}
	if w.err != nil {
		return nil, w.err
	}

	return b.Bytes(), nil
}

// DecodeName reads a sample name: text up to the first NUL, with anything
// outside printable ASCII dropped.
func DecodeName(raw []byte) string {
	if i := bytes.IndexByte(raw, 0); i >= 0 {
		raw = raw[:i]
	}
	var sb strings.Builder
	for _, c := range raw {
		if isPrintable(rune(c)) {
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

// EncodeName keeps the first eight printable ASCII characters of name and
// pads with NUL.
func EncodeName(name string) [NameSizeBytes]byte {
	var out [NameSizeBytes]byte
	n := 0
	for _, c := range name {
		if n == NameSizeBytes {
			break
		}
		if isPrintable(c) {
			out[n] = byte(c)
			n++
		}
	}
	return out
}

func isPrintable(c rune) bool {
	return c >= 0x20 && c < 0x7F
}

type fieldReader struct {
	b   *buffer.Buffer
	err error
}

func (r *fieldReader) u32() uint32 {
	if r.err != nil {
		return 0
	}
	v, err := r.b.ReadUint32()
	r.err = err
	return v
}

func (r *fieldReader) i16() int16 {
	if r.err != nil {
		return 0
	}
	v, err := r.b.ReadUint16()
	r.err = err
	return int16(v)
}

func (r *fieldReader) u8() uint8 {
	if r.err != nil {
		return 0
	}
	v, err := r.b.ReadUint8()
	r.err = err
	return v
}

func (r *fieldReader) i8() int8 {
	return int8(r.u8())
}

type fieldWriter struct {
	b   *buffer.Buffer
	err error
}

func (w *fieldWriter) u32(vs ...uint32) {
	for _, v := range vs {
		if w.err == nil {
			w.err = w.b.WriteUint32(v)
		}
	}
}

func (w *fieldWriter) i16(v int16) {
	if w.err == nil {
		w.err = w.b.WriteUint16(uint16(v))
	}
}

func (w *fieldWriter) u8(v uint8) {
	if w.err == nil {
		w.err = w.b.WriteUint8(v)
	}
}

func (w *fieldWriter) i8(vs ...int8) {
	for _, v := range vs {
		w.u8(uint8(v))
	}
}
