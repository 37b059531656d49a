package fs

import (
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/extq/internal/core/domain"
	"go.trai.ch/zerr"
)

// Copier copies build outputs between directories.
type Copier struct {
	walker *Walker
}

// NewCopier creates a new Copier.
func NewCopier(walker *Walker) *Copier {
	return &Copier{walker: walker}
}

// Copy copies each entry of paths, a file or a directory relative to src, to the
// same relative location under dst. Directories are copied recursively without
// their node_modules.
func (c *Copier) Copy(src, dst string, paths []string) error {
	for _, rel := range paths {
		from := filepath.Join(src, rel)
		info, err := os.Stat(from)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to stat copy source"), "path", from)
		}

		if !info.IsDir() {
			if err := copyFile(from, filepath.Join(dst, rel), info.Mode().Perm()); err != nil {
				return err
			}
			continue
		}

		for path, err := range c.walker.WalkFiles(from, []string{"node_modules"}) {
			if err != nil {
				return zerr.With(zerr.Wrap(err, "failed to walk copy source"), "path", from)
			}

			sub, err := filepath.Rel(src, path)
			if err != nil {
				return zerr.Wrap(err, "failed to relativize copy source")
			}

			fileInfo, err := os.Stat(path)
			if err != nil {
				return zerr.With(zerr.Wrap(err, "failed to stat copy source"), "path", path)
			}
			if err := copyFile(path, filepath.Join(dst, sub), fileInfo.Mode().Perm()); err != nil {
				return err
			}
		}
	}
	return nil
}

func copyFile(from, to string, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(to), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory"), "path", filepath.Dir(to))
	}

	in, err := os.Open(from) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open file"), "path", from)
	}
	defer in.Close() //nolint:errcheck // Best effort close in defer

	out, err := os.OpenFile(to, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create file"), "path", to)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return zerr.With(zerr.Wrap(err, "failed to copy file"), "path", to)
	}
	if err := out.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to close file"), "path", to)
	}
	return nil
}
