package core

import (
	"golang.org/x/exp/slog"

	"github.com/vxdy/open-electribe-editor/internal/record"
)

type Option func(*Container)

// WithLogger sets the logger used for debug output. The default discards.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Container) {
		if logger != nil {
			c.logger = logger
		}
	}
}

type importConfig struct {
	name      string
	playLevel uint8
}

func defaultImportConfig() importConfig {
	return importConfig{playLevel: record.DefaultPlayLevel}
}

type ImportOption func(*importConfig)

// WithName sets the sample name. Only the first eight printable ASCII
// characters are stored.
func WithName(name string) ImportOption {
	return func(c *importConfig) {
		c.name = name
	}
}

func WithPlayLevel(level uint8) ImportOption {
	return func(c *importConfig) {
		c.playLevel = level
	}
}
