package cmd

import (
	"bytes"
	"io"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"

	"github.com/mikopbx/modgen/internal/fetch"
	"github.com/mikopbx/modgen/internal/testutil"
)

// executeRoot runs the root command with an isolated config file path.
func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "config.yaml")}, args...))

	err := root.Execute()
	return out.String(), err
}

// stubScaffold routes `new` to an in-memory filesystem and a fake cloner.
// The returned depth pointer receives the depth the cloner was built with.
func stubScaffold(t *testing.T) (afero.Fs, *testutil.TemplateCloner, *int) {
	t.Helper()

	fs := afero.NewMemMapFs()
	cloner := &testutil.TemplateCloner{FS: fs, Tree: testutil.ModuleTemplate()}
	depth := -1

	origFS, origCloner := newFS, newCloner
	newFS = func() afero.Fs { return fs }
	newCloner = func(d int, _ io.Writer) fetch.Cloner {
		depth = d
		return cloner
	}
	t.Cleanup(func() {
		newFS, newCloner = origFS, origCloner
	})

	return fs, cloner, &depth
}
