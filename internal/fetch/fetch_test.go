package fetch

import (
	"context"
	"errors"
	"io/fs"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/mikopbx/modgen/internal/errors"
	"github.com/mikopbx/modgen/internal/testutil"
)

const dest = "/work/ModulePhoneBook"

func TestMaterialize(t *testing.T) {
	mem := afero.NewMemMapFs()
	cloner := &testutil.TemplateCloner{FS: mem, Tree: testutil.ModuleTemplate()}

	require.NoError(t, New(mem, cloner).Materialize(context.Background(), dest))

	assert.Equal(t, []string{dest + " " + SourceURL}, cloner.Calls)

	got := testutil.ReadTree(t, mem, dest)
	assert.NotContains(t, got, "README.md")
	assert.NotContains(t, got, ".gitignore")
	assert.NotContains(t, got, ".git/")
	assert.NotContains(t, got, ".git/HEAD")
	assert.Contains(t, got, "LICENSE")
	assert.Contains(t, got, "Lib/TemplateConf.php")
}

func TestMaterialize_ReplacesExistingTree(t *testing.T) {
	mem := afero.NewMemMapFs()
	testutil.WriteTree(t, mem, dest, map[string]string{
		"stale.txt":      "left over",
		"nested/old.php": "old",
	})
	cloner := &testutil.TemplateCloner{FS: mem, Tree: testutil.ModuleTemplate()}

	require.NoError(t, New(mem, cloner).Materialize(context.Background(), dest))

	got := testutil.ReadTree(t, mem, dest)
	assert.NotContains(t, got, "stale.txt")
	assert.NotContains(t, got, "nested/")
}

func TestMaterialize_CloneFailure(t *testing.T) {
	mem := afero.NewMemMapFs()
	cloneErr := errors.New("repository not found")
	cloner := &testutil.TemplateCloner{FS: mem, Err: cloneErr}

	err := New(mem, cloner).Materialize(context.Background(), dest)
	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrFetch)
	assert.ErrorIs(t, err, cloneErr)

	var fetchErr *oerrors.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, "clone", fetchErr.Op)
	assert.Equal(t, SourceURL, fetchErr.URL)
}

func TestMaterialize_MissingExpectedFile(t *testing.T) {
	tests := []struct {
		name    string
		missing string
	}{
		{"no readme", "README.md"},
		{"no gitignore", ".gitignore"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem := afero.NewMemMapFs()
			tree := testutil.ModuleTemplate()
			delete(tree, tt.missing)
			cloner := &testutil.TemplateCloner{FS: mem, Tree: tree}

			err := New(mem, cloner).Materialize(context.Background(), dest)
			require.Error(t, err)
			assert.ErrorIs(t, err, oerrors.ErrFetch)
			assert.ErrorIs(t, err, fs.ErrNotExist)
			assert.ErrorIs(t, err, oerrors.ErrNotFound)

			var fetchErr *oerrors.FetchError
			require.ErrorAs(t, err, &fetchErr)
			assert.Equal(t, "remove", fetchErr.Op)
		})
	}
}

func TestMaterialize_CustomURL(t *testing.T) {
	mem := afero.NewMemMapFs()
	cloner := &testutil.TemplateCloner{FS: mem, Tree: testutil.ModuleTemplate()}

	f := New(mem, cloner)
	f.URL = "https://example.com/fork.git"
	require.NoError(t, f.Materialize(context.Background(), dest))

	assert.Equal(t, []string{dest + " https://example.com/fork.git"}, cloner.Calls)
}

func TestGitCloner_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := GitCloner{Depth: 1}.Clone(ctx, t.TempDir(), "https://example.invalid/ModuleTemplate.git")
	assert.Error(t, err)
}
