package wav

import (
	"fmt"

	"github.com/vxdy/open-electribe-editor/internal/errors"
)

// InvalidHeaderError reports a RIFF/WAVE stream that is truncated or
// internally inconsistent.
type InvalidHeaderError struct {
	Details string
}

func (e *InvalidHeaderError) Error() string {
	return fmt.Sprintf("invalid WAV header: %s", e.Details)
}

// Is lets callers match on errors.InvalidFormat.
func (e *InvalidHeaderError) Is(target error) bool {
	s, ok := target.(errors.Status)
	return ok && s == errors.InvalidFormat
}
