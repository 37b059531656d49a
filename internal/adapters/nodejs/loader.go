// Package nodejs loads filtering library builds into a Node.js process and talks to
// them over a line-delimited JSON protocol.
package nodejs

import (
	"context"
	_ "embed"
	"os"
	"os/exec"
	"path/filepath"

	"go.trai.ch/extq/internal/core/domain"
	"go.trai.ch/extq/internal/core/ports"
	"go.trai.ch/zerr"
)

// EntryEnv carries the library entry point to the bridge module.
const EntryEnv = "EXTQ_LIBRARY_ENTRY"

//go:embed bridge.mjs
var bridgeSource string

// Loader implements ports.LibraryLoader.
type Loader struct {
	binary string
}

// NewLoader returns a Loader using the node found on PATH.
func NewLoader() *Loader {
	return &Loader{binary: "node"}
}

// Load starts a bridge process for the build at loc and waits until the library is imported.
func (l *Loader) Load(ctx context.Context, loc domain.LibraryLocation) (ports.Library, error) {
	if _, err := exec.LookPath(l.binary); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrToolNotFound.Error()), "tool", l.binary)
	}

	entry, err := filepath.Abs(filepath.Join(loc.Dir, filepath.FromSlash(loc.Entry)))
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrLibraryLoadFailed.Error())
	}
	if _, err := os.Stat(entry); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrLibraryLoadFailed.Error()), "entry", entry)
	}

	// #nosec G204 -- the script is the embedded bridge module
	cmd := exec.Command(l.binary, "--input-type=module", "-e", bridgeSource)
	cmd.Dir = loc.Dir
	cmd.Env = append(os.Environ(), EntryEnv+"="+entry)

	proc, err := startProcess(ctx, cmd)
	if err != nil {
		return nil, zerr.With(zerr.With(err, "entry", entry), "version", loc.Version)
	}

	return &Library{version: loc.Version, proc: proc}, nil
}
