// Package fetch materializes a clean copy of the module template.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"

	oerrors "github.com/mikopbx/modgen/internal/errors"
	"github.com/mikopbx/modgen/internal/output"
)

// SourceURL is the template repository.
const SourceURL = "https://github.com/mikopbx/ModuleTemplate.git"

// MetadataDir is the version-control directory dropped after cloning.
const MetadataDir = ".git"

// RemovedFiles must exist in a fresh clone and are deleted from it.
var RemovedFiles = []string{"README.md", ".gitignore"}

// Fetcher clones the template and strips what does not belong in a new module.
type Fetcher struct {
	FS     afero.Fs
	Cloner Cloner
	URL    string
}

// New returns a Fetcher for SourceURL.
func New(fsys afero.Fs, cloner Cloner) *Fetcher {
	return &Fetcher{
		FS:     fsys,
		Cloner: cloner,
		URL:    SourceURL,
	}
}

// Materialize replaces dest with a fresh template tree. Anything already at
// dest is deleted first.
func (f *Fetcher) Materialize(ctx context.Context, dest string) error {
	exists, err := afero.Exists(f.FS, dest)
	if err != nil {
		return &oerrors.FetchError{Op: "prepare", Path: dest, Err: err}
	}
	if exists {
		output.Debug("removing existing tree", "path", dest)
		if err := RemoveAll(f.FS, dest); err != nil {
			return &oerrors.FetchError{Op: "prepare", Path: dest, Err: err}
		}
	}

	if err := f.FS.MkdirAll(dest, 0o755); err != nil {
		return &oerrors.FetchError{Op: "prepare", Path: dest, Err: err}
	}

	output.Debug("cloning template", "url", f.URL, "dest", dest)
	if err := f.Cloner.Clone(ctx, dest, f.URL); err != nil {
		return &oerrors.FetchError{Op: "clone", URL: f.URL, Path: dest, Err: err}
	}
	output.Debug("clone finished", "dest", dest)

	for _, name := range RemovedFiles {
		path := filepath.Join(dest, name)
		if err := f.FS.Remove(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				err = fmt.Errorf("%w in template: %w", oerrors.ErrNotFound, err)
			}
			return &oerrors.FetchError{Op: "remove", Path: path, Err: err}
		}
		output.Debug("removed", "path", path)
	}

	metadata := filepath.Join(dest, MetadataDir)
	if err := RemoveAll(f.FS, metadata); err != nil {
		return &oerrors.FetchError{Op: "remove", Path: metadata, Err: err}
	}
	output.Debug("removed", "path", metadata)

	return nil
}
