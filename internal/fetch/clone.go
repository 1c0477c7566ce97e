package fetch

import (
	"context"
	"io"

	git "github.com/go-git/go-git/v5"
)

// Cloner materializes the repository at url into dir.
type Cloner interface {
	Clone(ctx context.Context, dir, url string) error
}

// GitCloner clones with go-git into the local filesystem.
type GitCloner struct {
	// Depth limits history. Zero fetches everything.
	Depth int

	// Progress receives the remote's sideband output. Nil discards it.
	Progress io.Writer
}

// Clone implements Cloner. The working tree lands directly in dir.
func (c GitCloner) Clone(ctx context.Context, dir, url string) error {
	_, err := git.PlainCloneContext(ctx, dir, false, &git.CloneOptions{
		URL:      url,
		Depth:    c.Depth,
		Progress: c.Progress,
	})
	return err
}
