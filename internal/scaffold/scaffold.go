// Package scaffold generates a new module from the template.
package scaffold

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/mikopbx/modgen/internal/fetch"
	"github.com/mikopbx/modgen/internal/naming"
	"github.com/mikopbx/modgen/internal/output"
	"github.com/mikopbx/modgen/internal/rewrite"
)

// Options configures a Scaffolder.
type Options struct {
	// FS is where the module is written.
	FS afero.Fs

	// Cloner fetches the template into the working tree.
	Cloner fetch.Cloner

	// URL overrides fetch.SourceURL when set.
	URL string

	// ParentDir holds the generated module directory. Empty means ".".
	ParentDir string
}

// Validate checks that the required collaborators are set.
func (o Options) Validate() error {
	if o.FS == nil {
		return errors.New("scaffold: filesystem is required")
	}
	if o.Cloner == nil {
		return errors.New("scaffold: cloner is required")
	}
	return nil
}

// Result describes a generated module.
type Result struct {
	// Forms are the names derived from the identifier.
	Forms naming.Forms

	// Dir is the generated module directory.
	Dir string

	// Replacements were applied to the tree.
	Replacements rewrite.Replacements
}

// Scaffolder runs the generation pipeline.
type Scaffolder struct {
	opts Options
}

// New creates a Scaffolder.
func New(opts Options) (*Scaffolder, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.ParentDir == "" {
		opts.ParentDir = "."
	}
	return &Scaffolder{opts: opts}, nil
}

// Generate produces the module named by input under ParentDir.
//
// Phase sequence:
//  1. RESOLVE:  naming.Resolve() then naming.Derive() → Forms
//  2. FETCH:    fetch.Fetcher.Materialize() → clean template tree
//  3. REWRITE:  rewrite.Engine.Rewrite() → rebranded tree
//
// An invalid identifier fails in phase 1 before anything touches disk. Any
// later failure leaves the partial tree in place.
func (s *Scaffolder) Generate(ctx context.Context, input string) (*Result, error) {
	identifier, err := naming.Resolve(input)
	if err != nil {
		return nil, err
	}
	forms := naming.Derive(identifier, naming.Prefix)

	log := output.ModuleLogger(forms.Identifier)
	log.Debug("derived names",
		"identifier", forms.Identifier,
		"stripped", forms.Stripped,
		"dash", forms.Dash,
		"underscore", forms.Underscore,
	)

	dir := filepath.Join(s.opts.ParentDir, forms.Identifier)

	fetcher := fetch.New(s.opts.FS, s.opts.Cloner)
	if s.opts.URL != "" {
		fetcher.URL = s.opts.URL
	}
	if err := fetcher.Materialize(ctx, dir); err != nil {
		return nil, err
	}

	reps := rewrite.NewReplacements(forms)
	if err := rewrite.New(s.opts.FS).Rewrite(dir, reps); err != nil {
		return nil, err
	}
	log.Debug("module generated", "dir", dir)

	return &Result{
		Forms:        forms,
		Dir:          dir,
		Replacements: reps,
	}, nil
}
