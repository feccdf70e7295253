package wav

import (
	"fmt"

	"github.com/vxdy/open-electribe-editor/core"
	"github.com/vxdy/open-electribe-editor/internal/record"
	"github.com/vxdy/open-electribe-editor/internal/utils"
)

// ImportFile decodes the WAV at path into slot index. The sample is named
// after the file unless opts set a name.
func ImportFile(c *core.Container, index int, path string, opts ...core.ImportOption) (record.Header, error) {
	p, err := ReadFile(path)
	if err != nil {
		return nil, err
	}

	opts = append([]core.ImportOption{core.WithName(utils.Stem(path))}, opts...)
	return c.ImportSample(index, p, opts...)
}

// ExportFile writes the playback range of slot index to a WAV file.
func ExportFile(c *core.Container, index int, path string) error {
	h, err := c.Header(index)
	if err != nil {
		return err
	}
	pcm, err := c.ReadSample(index)
	if err != nil {
		return err
	}
	if len(pcm) == 0 {
		return fmt.Errorf("slot %d is empty", index)
	}

	return WriteFile(path, pcm, h.Rate(), h.Channels())
}
