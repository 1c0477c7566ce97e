// Package rewrite rebrands a template tree in place.
//
// A rewrite runs in three steps over a tree that is snapshotted once up
// front: every file's contents get all template tokens replaced, then every
// file and directory whose name carries a token is renamed. Renames run
// deepest first so a directory is only renamed after everything inside it.
package rewrite

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	oerrors "github.com/mikopbx/modgen/internal/errors"
	"github.com/mikopbx/modgen/internal/output"
)

// MetadataDir is the version-control directory that is never rewritten.
const MetadataDir = ".git"

// Snapshot lists a tree as it was before any mutation.
type Snapshot struct {
	// Root is the walked directory.
	Root string

	// Files are regular files relative to Root, in walk order.
	Files []string

	// Dirs are directories relative to Root, in walk order. Root is not included.
	Dirs []string

	// Links are symbolic links relative to Root. They are renamed like any
	// other entry but never followed and never rewritten.
	Links []string
}

// Engine rewrites trees on a filesystem.
type Engine struct {
	fs afero.Fs
}

// New creates an engine operating on fs.
func New(fs afero.Fs) *Engine {
	return &Engine{fs: fs}
}

// Rewrite snapshots root, substitutes tokens in every file and renames
// every entry whose name carries a name token. The first failure aborts
// the pass and the tree is left as far as it got.
func (e *Engine) Rewrite(root string, reps Replacements) error {
	snap, err := e.Snapshot(root)
	if err != nil {
		return err
	}

	output.Debug("snapshot taken", "root", root,
		"files", len(snap.Files), "dirs", len(snap.Dirs), "links", len(snap.Links))

	if err := e.Substitute(snap, reps); err != nil {
		return err
	}

	return e.Rename(snap, reps)
}

// Snapshot walks root and records every regular file, directory and
// symbolic link. Links are not followed.
func (e *Engine) Snapshot(root string) (*Snapshot, error) {
	snap := &Snapshot{Root: root}

	err := afero.Walk(e.fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return &oerrors.RewriteError{Op: "walk", Path: path, Err: err}
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return &oerrors.RewriteError{Op: "walk", Path: path, Err: err}
		}
		if rel == "." {
			return nil
		}

		switch {
		case info.IsDir():
			snap.Dirs = append(snap.Dirs, rel)
		case info.Mode().IsRegular():
			snap.Files = append(snap.Files, rel)
		case info.Mode()&os.ModeSymlink != 0:
			snap.Links = append(snap.Links, rel)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return snap, nil
}

// Substitute rewrites every snapshot file outside MetadataDir with reps
// applied. Files are read and written whole; a file without tokens is
// written back unchanged.
func (e *Engine) Substitute(snap *Snapshot, reps Replacements) error {
	rewritten := 0
	for _, rel := range snap.Files {
		if inMetadataDir(rel) {
			continue
		}

		path := filepath.Join(snap.Root, rel)

		info, err := e.fs.Stat(path)
		if err != nil {
			return &oerrors.RewriteError{Op: "read", Path: path, Err: err}
		}

		data, err := afero.ReadFile(e.fs, path)
		if err != nil {
			return &oerrors.RewriteError{Op: "read", Path: path, Err: err}
		}

		content := reps.Apply(string(data))

		if err := afero.WriteFile(e.fs, path, []byte(content), info.Mode().Perm()); err != nil {
			return &oerrors.RewriteError{Op: "write", Path: path, Err: err}
		}
		rewritten++
	}

	output.Debug("files rewritten", "count", rewritten)
	return nil
}

// Rename renames every snapshot entry whose base name carries a name token.
// Entries are handled deepest first so parents keep their current names
// until all of their children are done. A renamed link keeps its target.
func (e *Engine) Rename(snap *Snapshot, reps Replacements) error {
	entries := make([]string, 0, len(snap.Files)+len(snap.Links)+len(snap.Dirs))
	entries = append(entries, snap.Files...)
	entries = append(entries, snap.Links...)
	entries = append(entries, snap.Dirs...)

	sort.SliceStable(entries, func(i, j int) bool {
		return depth(entries[i]) > depth(entries[j])
	})

	for _, rel := range entries {
		dir, base := filepath.Split(rel)

		newBase, ok := reps.Rename(base)
		if !ok {
			continue
		}

		oldPath := filepath.Join(snap.Root, rel)
		newPath := filepath.Join(snap.Root, dir, newBase)

		if err := e.fs.Rename(oldPath, newPath); err != nil {
			return &oerrors.RewriteError{Op: "rename", Path: oldPath, Err: err}
		}

		output.Debug("renamed", "from", oldPath, "to", newPath)
	}

	return nil
}

func depth(rel string) int {
	return strings.Count(filepath.ToSlash(rel), "/")
}

func inMetadataDir(rel string) bool {
	for _, segment := range strings.Split(filepath.ToSlash(rel), "/") {
		if segment == MetadataDir {
			return true
		}
	}
	return false
}
