// Package app implements the application layer for extq.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/extq/internal/adapters/archive"
	"go.trai.ch/extq/internal/adapters/cas"
	"go.trai.ch/extq/internal/adapters/library"
	"go.trai.ch/extq/internal/adapters/report"
	"go.trai.ch/extq/internal/adapters/telemetry"
	"go.trai.ch/extq/internal/core/domain"
	"go.trai.ch/extq/internal/core/ports"
	"go.trai.ch/extq/internal/engine/harness"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	releases     ports.ReleaseFinder
	vcs          ports.SourceControl
	runner       ports.CommandRunner
	libLoader    ports.LibraryLoader
	tracer       ports.Tracer
	harness      *harness.Harness
	out          io.Writer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	releases ports.ReleaseFinder,
	vcs ports.SourceControl,
	runner ports.CommandRunner,
	libLoader ports.LibraryLoader,
	tracer ports.Tracer,
	h *harness.Harness,
) *App {
	return &App{
		configLoader: loader,
		logger:       log,
		releases:     releases,
		vcs:          vcs,
		runner:       runner,
		libLoader:    libLoader,
		tracer:       tracer,
		harness:      h,
		out:          os.Stdout,
	}
}

// WithOutput redirects the match report, which goes to stdout by default.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// QueryOptions configuration for the QueryExt method.
type QueryOptions struct {
	ConfigPath string
	// Artifact is the extension build to inspect. The newest release is used when empty.
	Artifact  string
	TargetURL string
	SourceURL string
	Env       string
	// Ref overrides the extension ref the library version is read from.
	Ref           string
	CacheDir      string
	SkipRegionals bool
	Verbose       bool
}

// QueryExt reports the filters of every rule asset of an extension build that
// match the target URL.
//
//nolint:cyclop // orchestration function
func (a *App) QueryExt(ctx context.Context, opts QueryOptions) (err error) {
	// 1. Validate input
	query, err := buildQuery(opts)
	if err != nil {
		return err
	}

	// 2. Load the configuration
	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}
	if opts.CacheDir != "" {
		cfg.CacheDir = opts.CacheDir
	}

	// 3. Initialize telemetry
	if opts.Verbose {
		shutdown := telemetry.Setup(telemetry.NewBridge(a.logger))
		defer func() {
			err = errors.Join(err, shutdown(context.WithoutCancel(ctx)))
		}()
	}

	cache, err := cas.NewCache(cfg.CacheDir)
	if err != nil {
		return err
	}

	// 4. Pull the artifact
	artifactURL := opts.Artifact
	if artifactURL == "" {
		a.logger.Info("retrieving the latest version as source url was not specified...")
		artifactURL, err = a.findArtifact(ctx, cfg.Extension)
		if err != nil {
			return err
		}
	}

	a.logger.Info("pulling engines from artifact...")
	artifact, err := a.pull(ctx, archive.NewExtractor(cache, cfg.Assets), artifactURL)
	if err != nil {
		return err
	}

	// 5. Resolve the library
	a.logger.Info("loading corresponding version of adblocker library...")
	resolver := library.NewResolver(library.Deps{
		Logger: a.logger,
		Cache:  cache,
		VCS:    a.vcs,
		Runner: a.runner,
		Loader: a.libLoader,
	}, cfg, cfg.CacheDir)
	defer func() {
		err = errors.Join(err, resolver.Close())
	}()

	ref := opts.Ref
	if ref == "" {
		ref = domain.ReleaseRef(artifact.Version)
	}
	lib, err := a.resolve(ctx, resolver, ref)
	if err != nil {
		return err
	}

	// 6. Match every asset
	printer := report.NewPrinter(a.out)
	for _, asset := range artifact.Assets {
		if opts.SkipRegionals && strings.Contains(asset.Path, cfg.Assets.RegionalMarker) {
			a.logger.Info(fmt.Sprintf("skipping regional %q", asset.Path))
			continue
		}

		a.logger.Info(fmt.Sprintf("loading %q... ~%dKB", asset.Path, asset.Size()/1024))
		outcome, err := a.harness.Match(ctx, lib, asset, query)
		if err != nil {
			return zerr.With(err, "asset", asset.Path)
		}
		if outcome.Status == domain.OutcomeUnsupported {
			a.logger.Warn(fmt.Sprintf("skipping %q: %s", asset.Path, outcome.Reason))
			continue
		}
		if err := printer.Print(outcome); err != nil {
			return err
		}
	}

	return nil
}

func (a *App) findArtifact(ctx context.Context, ext domain.ExtensionConfig) (string, error) {
	ctx, span := a.tracer.Start(ctx, "fetch-artifact")
	defer span.End()

	artifactURL, err := a.releases.Latest(ctx, ext.ReleasesURL, ext.ArtifactMatch)
	if err != nil {
		span.RecordError(err)
		return "", err
	}
	span.SetAttribute("url", artifactURL)
	return artifactURL, nil
}

func (a *App) pull(ctx context.Context, extractor ports.ArtifactExtractor, artifactURL string) (*domain.ReleaseArtifact, error) {
	ctx, span := a.tracer.Start(ctx, "extract")
	defer span.End()

	artifact, err := extractor.Pull(ctx, artifactURL)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttribute("version", artifact.Version)
	span.SetAttribute("assets", len(artifact.Assets))
	return artifact, nil
}

func (a *App) resolve(ctx context.Context, resolver ports.LibraryResolver, ref string) (ports.Library, error) {
	ctx, span := a.tracer.Start(ctx, "resolve-library")
	defer span.End()
	span.SetAttribute("ref", ref)

	lib, err := resolver.Resolve(ctx, ref)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttribute("version", lib.Version())
	return lib, nil
}

// buildQuery keeps the target and source URLs exactly as given.
func buildQuery(opts QueryOptions) (domain.MatchQuery, error) {
	if strings.TrimSpace(opts.TargetURL) == "" {
		return domain.MatchQuery{}, domain.ErrMissingTargetURL
	}

	return domain.MatchQuery{URL: opts.TargetURL, SourceURL: opts.SourceURL, EnvToken: opts.Env}, nil
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	ConfigPath string
	CacheDir   string
	// Bytes removes downloaded content and leftover extraction directories.
	Bytes bool
	// Libraries removes library builds, the source working copy and its lock.
	Libraries bool
}

// Clean removes cached content based on the provided options.
func (a *App) Clean(_ context.Context, options CleanOptions) error {
	cfg, err := a.configLoader.Load(options.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}
	root := cfg.CacheDir
	if options.CacheDir != "" {
		root = options.CacheDir
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			a.logger.Info("nothing to clean")
			return nil
		}
		return zerr.With(zerr.Wrap(err, "failed to read cache directory"), "path", root)
	}

	var errs error

	remove := func(path string, name string) {
		a.logger.Info(fmt.Sprintf("removing %s...", name))
		if err := os.RemoveAll(path); err != nil {
			errs = errors.Join(errs, zerr.Wrap(err, fmt.Sprintf("failed to remove %s", name)))
			return
		}
		a.logger.Info(fmt.Sprintf("removed %s", name))
	}

	lib := cfg.Library.Name
	for _, entry := range entries {
		name := entry.Name()
		path := filepath.Join(root, name)

		switch {
		case options.Bytes && domain.IsCacheKey(name):
			remove(path, "cached content "+name)
		case options.Bytes && domain.IsScratchDir(name):
			remove(path, "extraction directory "+name)
		case options.Libraries && domain.IsLibraryBuild(name, lib):
			remove(path, "library build "+name)
		}
	}

	if options.Libraries {
		if sourceDir := domain.LibrarySourceDir(root, lib); exists(sourceDir) {
			remove(sourceDir, "library sources")
		}
		if lockPath := domain.LibraryLockPath(root, lib); exists(lockPath) {
			remove(lockPath, "library lock")
		}
	}

	return errs
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
