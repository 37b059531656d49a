// Package library resolves, builds and loads the filtering library version that an
// extension release depends on.
package library

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rogpeppe/go-internal/lockedfile"
	"github.com/tidwall/jsonc"
	"go.trai.ch/extq/internal/adapters/fs"
	"go.trai.ch/extq/internal/core/domain"
	"go.trai.ch/extq/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

const packageManifest = "package.json"

// Deps groups the collaborators of a Resolver.
type Deps struct {
	Logger ports.Logger
	Cache  ports.ContentCache
	VCS    ports.SourceControl
	Runner ports.CommandRunner
	Loader ports.LibraryLoader
}

// Resolver implements ports.LibraryResolver. Loaded libraries are memoized per
// version for the lifetime of the Resolver and closed by Close.
type Resolver struct {
	deps      Deps
	extension domain.ExtensionConfig
	library   domain.LibraryConfig
	root      string

	copier   *fs.Copier
	verifier *fs.Verifier

	group  singleflight.Group
	mu     sync.Mutex
	loaded map[string]ports.Library
}

// NewResolver creates a Resolver keeping builds under root.
func NewResolver(deps Deps, cfg *domain.Config, root string) *Resolver {
	return &Resolver{
		deps:      deps,
		extension: cfg.Extension,
		library:   cfg.Library,
		root:      root,
		copier:    fs.NewCopier(fs.NewWalker()),
		verifier:  fs.NewVerifier(),
		loaded:    make(map[string]ports.Library),
	}
}

// Resolve returns the library the extension at ref depends on, building it first
// when no build of that version is cached.
func (r *Resolver) Resolve(ctx context.Context, ref string) (ports.Library, error) {
	version, err := r.Version(ctx, ref)
	if err != nil {
		return nil, zerr.With(err, "ref", ref)
	}

	result, err, _ := r.group.Do(version, func() (any, error) {
		r.mu.Lock()
		lib, ok := r.loaded[version]
		r.mu.Unlock()
		if ok {
			return lib, nil
		}

		lib, err := r.materialize(ctx, version)
		if err != nil {
			return nil, err
		}

		r.mu.Lock()
		r.loaded[version] = lib
		r.mu.Unlock()
		return lib, nil
	})
	if err != nil {
		return nil, zerr.With(zerr.With(err, "ref", ref), "version", version)
	}

	return result.(ports.Library), nil
}

// Version reads the normalized library version from the extension manifest at ref.
func (r *Resolver) Version(ctx context.Context, ref string) (string, error) {
	manifestURL := r.extension.ManifestURLFor(ref)
	data, err := r.deps.Cache.Fetch(ctx, manifestURL)
	if err != nil {
		return "", err
	}

	var manifest struct {
		Dependencies map[string]string `json:"dependencies"`
	}
	if err := json.Unmarshal(jsonc.ToJSON(data), &manifest); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrLibraryManifestParseFailed.Error()), "url", manifestURL)
	}

	raw, ok := manifest.Dependencies[r.library.Package]
	if !ok {
		err := zerr.With(domain.ErrLibraryVersionMissing, "package", r.library.Package)
		return "", zerr.With(err, "url", manifestURL)
	}

	version := domain.NormalizeVersion(raw)
	if err := domain.ValidateVersion(version); err != nil {
		return "", zerr.With(err, "dependency", raw)
	}

	return version, nil
}

// Close closes every library loaded by the Resolver.
func (r *Resolver) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var errs error
	for version, lib := range r.loaded {
		if err := lib.Close(); err != nil {
			errs = errors.Join(errs, zerr.With(err, "version", version))
		}
		delete(r.loaded, version)
	}
	return errs
}

func (r *Resolver) location(version string) domain.LibraryLocation {
	return domain.LibraryLocation{
		Version: version,
		Dir:     domain.LibraryDir(r.root, r.library.Name, version),
		Entry:   r.library.Entry,
	}
}

func (r *Resolver) materialize(ctx context.Context, version string) (ports.Library, error) {
	loc := r.location(version)

	if !exists(loc.Dir) {
		if err := r.build(ctx, version, loc.Dir); err != nil {
			return nil, err
		}
	}

	return r.deps.Loader.Load(ctx, loc)
}

// build produces the version directory from the library sources. The working copy
// is shared between versions, so it is only touched while holding the lock file.
func (r *Resolver) build(ctx context.Context, version, versionDir string) error {
	if err := r.deps.VCS.Available(); err != nil {
		return err
	}

	unlock, err := lockedfile.MutexAt(domain.LibraryLockPath(r.root, r.library.Name)).Lock()
	if err != nil {
		return zerr.Wrap(err, domain.ErrBuildFailed.Error())
	}
	defer unlock()

	// Another process may have finished the same build while we waited.
	if exists(versionDir) {
		return nil
	}

	r.deps.Logger.Info(fmt.Sprintf("building %s v%s, this may take a while...", r.library.Package, version))

	sourceDir := domain.LibrarySourceDir(r.root, r.library.Name)
	if !exists(sourceDir) {
		if err := r.deps.VCS.Clone(ctx, r.library.Repository, sourceDir); err != nil {
			return err
		}
	}

	if err := r.deps.VCS.Checkout(ctx, sourceDir, domain.ReleaseRef(version)); err != nil {
		return err
	}

	if err := r.deps.Runner.Run(ctx, sourceDir, r.library.Build); err != nil {
		return err
	}

	return r.stage(ctx, filepath.Join(sourceDir, filepath.FromSlash(r.library.PackageDir)), versionDir)
}

// stage copies the package manifest and build output into a scratch directory,
// installs its dependencies and renames it to versionDir.
func (r *Resolver) stage(ctx context.Context, packageDir, versionDir string) error {
	outputs := []string{packageManifest, distDir(r.library.Entry)}

	missing, err := r.verifier.MissingOutputs(packageDir, outputs)
	if err != nil {
		return zerr.Wrap(err, domain.ErrBuildFailed.Error())
	}
	if len(missing) > 0 {
		err := zerr.With(domain.ErrBuildFailed, "missing_outputs", strings.Join(missing, ", "))
		return zerr.With(err, "dir", packageDir)
	}

	staging, err := os.MkdirTemp(r.root, filepath.Base(versionDir)+".staging-*")
	if err != nil {
		return zerr.Wrap(err, domain.ErrBuildFailed.Error())
	}
	committed := false
	defer func() {
		if !committed {
			_ = os.RemoveAll(staging)
		}
	}()

	if err := r.copier.Copy(packageDir, staging, outputs); err != nil {
		return zerr.Wrap(err, domain.ErrBuildFailed.Error())
	}

	if err := r.deps.Runner.Run(ctx, staging, r.library.Install); err != nil {
		return err
	}

	if err := os.Rename(staging, versionDir); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrBuildFailed.Error()), "dir", versionDir)
	}
	committed = true

	return nil
}

// distDir returns the top-level directory of the entry point, "dist" for "dist/esm/index.js".
func distDir(entry string) string {
	first, _, _ := strings.Cut(path.Clean(entry), "/")
	return first
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
