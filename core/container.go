package core

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/exp/slog"

	"github.com/vxdy/open-electribe-editor/internal/buffer"
	"github.com/vxdy/open-electribe-editor/internal/errors"
	"github.com/vxdy/open-electribe-editor/internal/lock"
	"github.com/vxdy/open-electribe-editor/internal/logging"
	"github.com/vxdy/open-electribe-editor/internal/record"
)

// Container owns a validated ESX image and every mutation of it.
//
// A Container is not safe for concurrent use.
type Container struct {
	buf    *buffer.Buffer
	logger *slog.Logger

	// highWater is the largest end offset of payload bytes known to exist:
	// seeded at open and advanced only by Place. It keeps space freed by
	// DeleteSample from being handed out again before the image is reopened.
	highWater uint32
}

// Open validates data and wraps a copy of it. The input slice is not
// retained.
func Open(data []byte, opts ...Option) (*Container, error) {
	if !IsValid(data) {
		return nil, errors.InvalidFormat.WithFormat("not an ESX image (%d bytes)", len(data))
	}

	c := &Container{
		buf:    buffer.Wrap(data),
		logger: logging.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}

	headers, err := c.Headers()
	if err != nil {
		return nil, err
	}
	// Offsets pointing past the data actually present do not protect anything
	c.highWater = min(NextFreeOffset(headers), c.dataLen())

	c.logger.Debug("Opened image", "size", len(data), "next-free", c.highWater)
	return c, nil
}

// OpenFile reads and opens the image stored at path.
func OpenFile(path string, opts ...Option) (*Container, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	return Open(data, opts...)
}

// Serialize returns the full image bytes.
func (c *Container) Serialize() []byte {
	return c.buf.Bytes()
}

func (c *Container) Len() int {
	return c.buf.Len()
}

// Save writes the image to path. The write goes to a temporary file in the
// same directory which then replaces path, so a failed save leaves the old
// file intact. Concurrent saves to the same path are refused.
func (c *Container) Save(path string) error {
	lf, err := lock.LockFile(path)
	if err != nil {
		return err
	}
	defer lock.UnlockFile(lf)

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(c.buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("write image: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync image: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close image: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("chmod image: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace image: %w", err)
	}

	c.logger.Debug("Saved image", "path", path, "size", c.buf.Len())
	return nil
}

// Section returns a copy of the bytes of s.
func (c *Container) Section(s Section) ([]byte, error) {
	return c.buf.Slice(s.Start, s.Len())
}

func (c *Container) GlobalParameters() ([]byte, error) {
	return c.Section(SectionGlobalParameters)
}

// Patterns returns the raw pattern records.
func (c *Container) Patterns() ([][]byte, error) {
	return c.records(SectionPatterns, SizePatternRecord)
}

// Songs returns the raw song records.
func (c *Container) Songs() ([][]byte, error) {
	return c.records(SectionSongs, SizeSongRecord)
}

// SampleHeaders returns the raw header bytes of every slot in index order.
func (c *Container) SampleHeaders() ([][]byte, error) {
	out := make([][]byte, 0, NumSamples)
	for i := 0; i < NumSamples; i++ {
		raw, err := c.RawHeader(i)
		if err != nil {
			return nil, err
		}
		out = append(out, raw)
	}
	return out, nil
}

func (c *Container) records(s Section, size int) ([][]byte, error) {
	data, err := c.Section(s)
	if err != nil {
		return nil, err
	}

	out := make([][]byte, 0, len(data)/size)
	for off := 0; off+size <= len(data); off += size {
		out = append(out, data[off:off+size:off+size])
	}
	return out, nil
}

// RawHeader returns a copy of the header bytes of slot index.
func (c *Container) RawHeader(index int) ([]byte, error) {
	loc, err := Locate(index)
	if err != nil {
		return nil, err
	}
	return c.buf.Slice(loc.Offset, loc.Size)
}

// Header decodes the header of slot index.
func (c *Container) Header(index int) (record.Header, error) {
	raw, err := c.RawHeader(index)
	if err != nil {
		return nil, err
	}
	return record.Decode(raw), nil
}

// Headers decodes every slot in index order.
func (c *Container) Headers() ([]record.Header, error) {
	headers := make([]record.Header, 0, NumSamples)
	for i := 0; i < NumSamples; i++ {
		h, err := c.Header(i)
		if err != nil {
			return nil, err
		}
		headers = append(headers, h)
	}
	return headers, nil
}

// WriteHeader encodes h over the header of slot index. Bytes the layout does
// not cover are kept from the existing header.
func (c *Container) WriteHeader(index int, h record.Header) error {
	loc, err := Locate(index)
	if err != nil {
		return err
	}
	if h.Kind() == record.Unrecognized {
		return errors.UnrecognizedRecordLayout.WithFormat("slot %d: cannot write an unrecognized header", index)
	}
	if h.Kind() != loc.Kind {
		return errors.SlotKindMismatch.WithFormat("slot %d holds %v samples, got a %v header", index, loc.Kind, h.Kind())
	}

	template, err := c.buf.Slice(loc.Offset, loc.Size)
	if err != nil {
		return err
	}
	raw, err := record.Encode(h, template)
	if err != nil {
		return err
	}
	if err := c.buf.Splice(loc.Offset, raw); err != nil {
		return err
	}

	c.logger.Debug("Wrote header", "slot", index, "kind", h.Kind(), "name", h.SampleName())
	return nil
}
