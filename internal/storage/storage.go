// Package storage locates and bootstraps the on-disk quote store.
package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/starford/quote-it/internal/apperr"
)

// DirName is the per-user directory, relative to the home directory.
const DirName = ".quote-it"

// DefaultDir returns ~/.quote-it for the current user.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", apperr.NewEnvironmentError("resolve home directory", err)
	}
	return filepath.Join(home, DirName), nil
}

// Ensure makes sure dir and dir/name exist, creating each only if absent,
// and returns the absolute path of the store file. Existing content is never
// touched.
func Ensure(dir, name string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", apperr.NewEnvironmentError("resolve store directory", err)
	}

	info, err := os.Stat(abs)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err := os.MkdirAll(abs, 0o755); err != nil {
			return "", apperr.NewEnvironmentError("create store directory", err)
		}
	case err != nil:
		return "", apperr.NewEnvironmentError("stat store directory", err)
	case !info.IsDir():
		return "", apperr.NewEnvironmentError("stat store directory", fmt.Errorf("%s is not a directory", abs))
	}

	path := filepath.Join(abs, name)
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o644)
	switch {
	case errors.Is(err, fs.ErrExist):
		return path, nil
	case err != nil:
		return "", apperr.NewEnvironmentError("create store file", err)
	}
	if err := f.Close(); err != nil {
		return "", apperr.NewEnvironmentError("create store file", err)
	}
	return path, nil
}
