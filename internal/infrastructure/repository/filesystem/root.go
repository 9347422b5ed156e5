// Package filesystem reads the dataset tree: base tables from base_data/ and
// partitioned detail files from the per-category directories.
package filesystem

import (
	"errors"
	"io/fs"
	"os"

	crerr "github.com/cockroachdb/errors"
)

var ErrRootNotFound = errors.New("dataset root not found")

// OpenRoot validates that root is an existing directory and returns it as an
// fs.FS for the repositories.
func OpenRoot(root string) (fs.FS, error) {
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, crerr.Wrapf(ErrRootNotFound, "%s", root)
		}
		return nil, crerr.Wrapf(err, "stat dataset root %s", root)
	}
	if !info.IsDir() {
		return nil, crerr.Wrapf(ErrRootNotFound, "%s is not a directory", root)
	}
	return os.DirFS(root), nil
}
