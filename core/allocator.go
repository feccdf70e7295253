package core

import (
	"math"

	"github.com/vxdy/open-electribe-editor/internal/errors"
	"github.com/vxdy/open-electribe-editor/internal/record"
)

// NextFreeOffset returns the largest end offset referenced by any header, or
// 0 when nothing is referenced. Offsets are relative to AddrSampleData.
func NextFreeOffset(headers []record.Header) uint32 {
	var next uint32
	for _, h := range headers {
		next = max(next, h.MaxEnd())
	}
	return next
}

// NextFree returns where the next payload goes. It never moves backwards
// during the lifetime of the container.
func (c *Container) NextFree() (uint32, error) {
	headers, err := c.Headers()
	if err != nil {
		return 0, err
	}
	return max(NextFreeOffset(headers), c.highWater), nil
}

// dataLen returns how many bytes of the sample data region exist.
func (c *Container) dataLen() uint32 {
	n := c.buf.Len() - AddrSampleData
	if n <= 0 {
		return 0
	}
	return uint32(min(n, math.MaxUint32))
}

// Place writes payload at offset start of the sample data region, growing
// the image as needed.
func (c *Container) Place(start uint32, payload []byte) error {
	end := uint64(start) + uint64(len(payload))
	if end > math.MaxUint32 {
		return errors.OutOfRange.WithFormat("payload end %#x does not fit in 32 bits", end)
	}

	at := AddrSampleData + int(start)
	if need := at + len(payload); need > c.buf.Len() {
		c.logger.Debug("Growing image", "from", c.buf.Len(), "to", need)
		c.buf.Grow(need)
	}
	if err := c.buf.Splice(at, payload); err != nil {
		return err
	}

	c.highWater = max(c.highWater, uint32(end))
	return nil
}
