package fetch

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"

	oerrors "github.com/mikopbx/modgen/internal/errors"
	"github.com/mikopbx/modgen/internal/output"
)

// RemoveAll deletes path and everything below it.
//
// A permission failure is recovered by making the failing path and its parent
// writable, then retrying. Each failing path gets one recovery; a second
// failure on the same path wraps ErrPermission.
func RemoveAll(fsys afero.Fs, path string) error {
	recovered := make(map[string]bool)

	for {
		err := fsys.RemoveAll(path)
		if err == nil {
			return nil
		}
		if !errors.Is(err, fs.ErrPermission) {
			return err
		}

		failing := path
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) && pathErr.Path != "" {
			failing = pathErr.Path
		}

		if recovered[failing] {
			return fmt.Errorf("%w: removing %s: %w", oerrors.ErrPermission, failing, err)
		}
		recovered[failing] = true

		output.Debug("permission denied, retrying", "path", failing)
		makeWritable(fsys, failing)
	}
}

// makeWritable grants the owner full access to path and its parent.
// Failures are left for the retry to surface.
func makeWritable(fsys afero.Fs, path string) {
	for _, p := range []string{filepath.Dir(path), path} {
		info, err := fsys.Stat(p)
		if err != nil {
			continue
		}
		_ = fsys.Chmod(p, info.Mode().Perm()|0o700)
	}
}
