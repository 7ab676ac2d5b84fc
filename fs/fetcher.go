// Package fs provides a file-based implementation of dochub.Fetcher that reads
// documents from a content root directory.
package fs

import (
	"context"
	"errors"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/dochub"
)

// Ensure Fetcher implements dochub.Fetcher at compile time.
var _ dochub.Fetcher = (*Fetcher)(nil)

// Fetcher reads documents by path relative to a root directory. Paths that
// would leave the root are rejected.
type Fetcher struct {
	root *os.Root
}

// NewFetcher opens dir as the content root.
func NewFetcher(dir string) (*Fetcher, error) {
	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, err
	}
	return &Fetcher{root: root}, nil
}

// Fetch returns the content of the file at location, a slash-separated path
// relative to the root.
func (f *Fetcher) Fetch(ctx context.Context, location string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := filepath.FromSlash(strings.TrimPrefix(location, "/"))
	if !filepath.IsLocal(name) {
		return "", dochub.Errorf(dochub.EINVALID, "path %q is outside the content root", location)
	}

	file, err := f.root.Open(name)
	if errors.Is(err, iofs.ErrNotExist) {
		return "", dochub.Errorf(dochub.ENOTFOUND, "file %q not found", location)
	} else if err != nil {
		return "", err
	}
	defer file.Close()

	body, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// Close releases the root directory handle.
func (f *Fetcher) Close() error {
	return f.root.Close()
}
