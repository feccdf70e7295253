package lock_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vxdy/open-electribe-editor/internal/lock"
)

func TestLockFile(t *testing.T) {
	t.Run("second lock on the same image fails while the first is held", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "card.esx")

		f, err := lock.LockFile(path)
		require.NoError(t, err)

		_, err = lock.LockFile(path)
		require.Error(t, err)

		lock.UnlockFile(f)
	})

	t.Run("lock can be taken again after unlock", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "card.esx")

		f, err := lock.LockFile(path)
		require.NoError(t, err)
		lock.UnlockFile(f)

		f, err = lock.LockFile(path)
		require.NoError(t, err)
		lock.UnlockFile(f)
	})
}
