package core

import (
	"math"

	"github.com/vxdy/open-electribe-editor/internal/errors"
	"github.com/vxdy/open-electribe-editor/internal/record"
)

// Payload is decoded audio ready to be imported. PCM holds 16-bit samples,
// interleaved when stereo, in the byte order the device expects.
type Payload struct {
	PCM        []byte
	SampleRate uint32
	Channels   int
	BitDepth   int
}

// Player plays back raw PCM. The core ships without one.
type Player interface {
	Play(pcm []byte, sampleRate uint32, channels int) error
}

// ReadSample returns a copy of the playback range of slot index. An empty
// slot yields an empty slice.
func (c *Container) ReadSample(index int) ([]byte, error) {
	h, err := c.Header(index)
	if err != nil {
		return nil, err
	}

	play := h.Playback()
	if play.Len() == 0 {
		return []byte{}, nil
	}
	return c.buf.Slice(AddrSampleData+int(play.Start), int(play.Len()))
}

// DeleteSample zero fills the header of slot index. The payload bytes stay
// in the image and their space is not reused this session.
func (c *Container) DeleteSample(index int) error {
	loc, err := Locate(index)
	if err != nil {
		return err
	}
	if err := c.buf.Splice(loc.Offset, make([]byte, loc.Size)); err != nil {
		return err
	}

	c.logger.Debug("Deleted sample", "slot", index)
	return nil
}

// ImportSample appends p to the sample data region and points slot index at
// it. Either the whole import happens or the image is left untouched.
func (c *Container) ImportSample(index int, p Payload, opts ...ImportOption) (record.Header, error) {
	loc, err := Locate(index)
	if err != nil {
		return nil, err
	}

	switch {
	case p.BitDepth != 16:
		return nil, errors.UnsupportedFormat.WithFormat("%d-bit audio, only 16-bit is supported", p.BitDepth)
	case p.Channels != 1 && p.Channels != 2:
		return nil, errors.UnsupportedFormat.WithFormat("%d channels, only mono and stereo are supported", p.Channels)
	case (p.Channels == 2) != (loc.Kind == record.Stereo):
		return nil, errors.SlotKindMismatch.WithFormat("slot %d holds %v samples, got %d channel audio", index, loc.Kind, p.Channels)
	}

	cfg := defaultImportConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	start, err := c.NextFree()
	if err != nil {
		return nil, err
	}
	end := uint64(start) + uint64(len(p.PCM))
	if end > math.MaxUint32 {
		return nil, errors.OutOfRange.WithFormat("slot %d: payload end %#x does not fit in 32 bits", index, end)
	}

	var h record.Header
	if loc.Kind == record.Stereo {
		s := record.NewStereo(cfg.name, start, uint32(end), p.SampleRate)
		s.PlayLevel = cfg.playLevel
		h = s
	} else {
		m := record.NewMono(cfg.name, start, uint32(end), p.SampleRate)
		m.PlayLevel = cfg.playLevel
		h = m
	}

	template, err := c.buf.Slice(loc.Offset, loc.Size)
	if err != nil {
		return nil, err
	}
	raw, err := record.Encode(h, template)
	if err != nil {
		return nil, err
	}

	// Nothing below can fail for a validated image
	if err := c.Place(start, p.PCM); err != nil {
		return nil, err
	}
	if err := c.buf.Splice(loc.Offset, raw); err != nil {
		return nil, err
	}

	c.logger.Debug("Imported sample", "slot", index, "name", h.SampleName(), "start", start, "end", end)
	return record.Decode(raw), nil
}

// PreviewSample hands the playback range of slot index to player.
func (c *Container) PreviewSample(index int, player Player) error {
	if player == nil {
		return errors.UnsupportedFormat.With("no playback device")
	}

	h, err := c.Header(index)
	if err != nil {
		return err
	}
	pcm, err := c.ReadSample(index)
	if err != nil {
		return err
	}
	if len(pcm) == 0 {
		return nil
	}
	return player.Play(pcm, h.Rate(), h.Channels())
}
