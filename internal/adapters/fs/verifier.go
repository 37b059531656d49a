package fs

import (
	"errors"
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
)

// Verifier checks that build outputs exist.
type Verifier struct{}

// NewVerifier creates a new Verifier.
func NewVerifier() *Verifier {
	return &Verifier{}
}

// MissingOutputs returns the entries of outputs that do not exist under root.
func (v *Verifier) MissingOutputs(root string, outputs []string) ([]string, error) {
	var missing []string
	for _, output := range outputs {
		path := filepath.Join(root, output)
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				missing = append(missing, output)
				continue
			}
			return nil, zerr.With(zerr.Wrap(err, "failed to stat output"), "path", path)
		}
	}
	return missing, nil
}
