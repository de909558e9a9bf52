package dump

import (
	"fmt"
	"path/filepath"

	"github.com/signadot/bodydump/debug"

	"github.com/spf13/afero"
)

// WriteFile replaces path with d.  The data goes to a temporary file next
// to path which is then renamed, so path either keeps its old content or
// has all of d.
func WriteFile(fsys afero.Fs, path string, d []byte) error {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := afero.TempFile(fsys, dir, "."+base+".*")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}
	tmpName := tmp.Name()
	if debug.Write() {
		debug.Logf("writing %d bytes to %s via %s\n", len(d), path, tmpName)
	}
	if _, err := tmp.Write(d); err != nil {
		tmp.Close()
		fsys.Remove(tmpName)
		return fmt.Errorf("%w: %s: %w", ErrWriteFailure, path, err)
	}
	if err := tmp.Close(); err != nil {
		fsys.Remove(tmpName)
		return fmt.Errorf("%w: %s: %w", ErrWriteFailure, path, err)
	}
	if err := fsys.Chmod(tmpName, 0644); err != nil {
		fsys.Remove(tmpName)
		return fmt.Errorf("%w: %s: %w", ErrWriteFailure, path, err)
	}
	if err := fsys.Rename(tmpName, path); err != nil {
		fsys.Remove(tmpName)
		return fmt.Errorf("%w: %s: %w", ErrWriteFailure, path, err)
	}
	return nil
}
