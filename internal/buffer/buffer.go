// Package buffer implements a growable big-endian byte region with a cursor.
package buffer

import (
	"encoding/binary"

	"github.com/vxdy/open-electribe-editor/internal/errors"
)

// Buffer is a mutable byte region. Multi-byte values are big-endian.
//
// Accessors ending in At take an absolute offset; the others use the cursor
// and advance it by the width of the value. Reads and writes never grow the
// region; use Grow or Splice for that.
type Buffer struct {
	buf []byte
	pos int
}

// New returns a zero-filled buffer of the given length.
func New(size int) *Buffer {
	return &Buffer{buf: make([]byte, size)}
}

// Wrap returns a buffer holding a copy of data.
func Wrap(data []byte) *Buffer {
	return &Buffer{buf: append([]byte(nil), data...)}
}

func (b *Buffer) Len() int { return len(b.buf) }

func (b *Buffer) Position() int { return b.pos }

func (b *Buffer) Remaining() int { return len(b.buf) - b.pos }

// SetPosition moves the cursor. The cursor may sit at Len but not past it.
func (b *Buffer) SetPosition(pos int) error {
	if pos < 0 || pos > len(b.buf) {
		return errors.OutOfRange.WithFormat("position %d outside [0, %d]", pos, len(b.buf))
	}
	b.pos = pos
	return nil
}

func (b *Buffer) check(off, width int) error {
	if off < 0 || off+width > len(b.buf) {
		return errors.OutOfRange.WithFormat("access of %d bytes at %#x exceeds length %#x", width, off, len(b.buf))
	}
	return nil
}

func (b *Buffer) Uint8At(off int) (uint8, error) {
	if err := b.check(off, 1); err != nil {
		return 0, err
	}
	return b.buf[off], nil
}

func (b *Buffer) Uint16At(off int) (uint16, error) {
	if err := b.check(off, 2); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b.buf[off:]), nil
}

func (b *Buffer) Uint32At(off int) (uint32, error) {
	if err := b.check(off, 4); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b.buf[off:]), nil
}

func (b *Buffer) PutUint8At(off int, v uint8) error {
	if err := b.check(off, 1); err != nil {
		return err
	}
	b.buf[off] = v
	return nil
}

func (b *Buffer) PutUint16At(off int, v uint16) error {
	if err := b.check(off, 2); err != nil {
		return err
	}
	binary.BigEndian.PutUint16(b.buf[off:], v)
	return nil
}

func (b *Buffer) PutUint32At(off int, v uint32) error {
	if err := b.check(off, 4); err != nil {
		return err
	}
	binary.BigEndian.PutUint32(b.buf[off:], v)
	return nil
}

func (b *Buffer) ReadUint8() (uint8, error) {
	v, err := b.Uint8At(b.pos)
	if err == nil {
		b.pos++
	}
	return v, err
}

func (b *Buffer) ReadUint16() (uint16, error) {
	v, err := b.Uint16At(b.pos)
	if err == nil {
		b.pos += 2
	}
	return v, err
}

func (b *Buffer) ReadUint32() (uint32, error) {
	v, err := b.Uint32At(b.pos)
	if err == nil {
		b.pos += 4
	}
	return v, err
}

func (b *Buffer) WriteUint8(v uint8) error {
	err := b.PutUint8At(b.pos, v)
	if err == nil {
		b.pos++
	}
	return err
}

func (b *Buffer) WriteUint16(v uint16) error {
	err := b.PutUint16At(b.pos, v)
	if err == nil {
		b.pos += 2
	}
	return err
}

func (b *Buffer) WriteUint32(v uint32) error {
	err := b.PutUint32At(b.pos, v)
	if err == nil {
		b.pos += 4
	}
	return err
}

// Grow extends the buffer with zero bytes up to size. It never shrinks.
func (b *Buffer) Grow(size int) {
	if size <= len(b.buf) {
		return
	}
	b.buf = append(b.buf, make([]byte, size-len(b.buf))...)
}

// Slice returns a copy of n bytes starting at start.
func (b *Buffer) Slice(start, n int) ([]byte, error) {
	if n < 0 {
		return nil, errors.OutOfRange.WithFormat("negative length %d", n)
	}
	if err := b.check(start, n); err != nil {
		return nil, err
	}
	return append([]byte(nil), b.buf[start:start+n]...), nil
}

// Splice overwrites len(p) bytes at start with p. If the region runs past the
// end, the buffer is extended. start itself must not be past the end.
func (b *Buffer) Splice(start int, p []byte) error {
	if start < 0 || start > len(b.buf) {
		return errors.OutOfRange.WithFormat("splice at %#x outside [0, %#x]", start, len(b.buf))
	}
	b.Grow(start + len(p))
	copy(b.buf[start:], p)
	return nil
}

// Bytes returns a copy of the whole region.
func (b *Buffer) Bytes() []byte {
	return append([]byte(nil), b.buf...)
}
