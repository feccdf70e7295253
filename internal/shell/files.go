package shell

import (
	"fmt"

	"github.com/vxdy/open-electribe-editor/core"
	"github.com/vxdy/open-electribe-editor/internal/utils"
)

// SaveImage writes c to path. With backup set, an existing file is first
// copied to path+".bak".
func SaveImage(c *core.Container, path string, backup bool) error {
	if backup && utils.PathExists(path) {
		if err := utils.CopyFile(path, path+".bak"); err != nil {
			return fmt.Errorf("backup: %w", err)
		}
	}
	return c.Save(path)
}
