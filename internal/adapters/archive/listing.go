package archive

import (
	"os"
	"path/filepath"
)

// listRecursive renders the tree under root the way `ls -R` does: every directory,
// root first and then depth-first in name order, contributes a "<dir>:" marker line
// followed by its sorted entry names, and blocks are separated by a blank line.
func listRecursive(root string) ([]string, error) {
	var lines []string

	var walk func(rel string) error
	walk = func(rel string) error {
		entries, err := os.ReadDir(filepath.Join(root, filepath.FromSlash(rel)))
		if err != nil {
			return err
		}

		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, rel+":")

		var subdirs []string
		for _, entry := range entries {
			lines = append(lines, entry.Name())
			if entry.IsDir() {
				subdirs = append(subdirs, entry.Name())
			}
		}

		for _, sub := range subdirs {
			if err := walk(rel + "/" + sub); err != nil {
				return err
			}
		}
		return nil
	}

	if err := walk("."); err != nil {
		return nil, err
	}
	return lines, nil
}
