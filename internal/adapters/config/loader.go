// Package config provides the configuration loader for extq.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"

	"go.trai.ch/extq/internal/core/domain"
	"go.trai.ch/extq/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the configuration file at path and layers it over domain.DefaultConfig.
// An empty path falls back to extq.yaml in the working directory, which may be absent.
func (l *Loader) Load(path string) (*domain.Config, error) {
	cfg := domain.DefaultConfig()

	optional := path == ""
	if optional {
		path = domain.ConfigFileName
	}

	// #nosec G304 -- path is chosen by the user
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file Configfile
	if err := decodeStrict(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	apply(cfg, &file)
	if err := validate(cfg); err != nil {
		return nil, zerr.With(err, "path", path)
	}

	if l.Logger != nil {
		l.Logger.Info("using configuration from " + path)
	}
	return cfg, nil
}

// decodeStrict rejects unknown keys so that typos do not silently fall back to defaults.
func decodeStrict(data []byte, target *Configfile) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(target); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func apply(cfg *domain.Config, file *Configfile) {
	override(&cfg.CacheDir, file.CacheDir)

	override(&cfg.Extension.ReleasesURL, file.Extension.ReleasesURL)
	override(&cfg.Extension.ManifestURL, file.Extension.ManifestURL)
	override(&cfg.Extension.ArtifactMatch, file.Extension.ArtifactMatch)

	override(&cfg.Library.Name, file.Library.Name)
	override(&cfg.Library.Package, file.Library.Package)
	override(&cfg.Library.Repository, file.Library.Repository)
	override(&cfg.Library.PackageDir, file.Library.PackageDir)
	override(&cfg.Library.Entry, file.Library.Entry)
	override(&cfg.Library.Build, file.Library.Build)
	override(&cfg.Library.Install, file.Library.Install)

	override(&cfg.Assets.Manifest, file.Assets.Manifest)
	override(&cfg.Assets.Directory, file.Assets.Directory)
	override(&cfg.Assets.BinaryExt, file.Assets.BinaryExt)
	override(&cfg.Assets.JSONExt, file.Assets.JSONExt)
	override(&cfg.Assets.RegionalMarker, file.Assets.RegionalMarker)
}

func override(dst *string, value string) {
	if v := strings.TrimSpace(value); v != "" {
		*dst = v
	}
}

func validate(cfg *domain.Config) error {
	if !strings.Contains(cfg.Extension.ManifestURL, domain.RefPlaceholder) {
		return zerr.With(domain.ErrConfigInvalid, "manifest_url", cfg.Extension.ManifestURL)
	}
	if strings.ContainsAny(cfg.Library.Name, `/\`) {
		return zerr.With(domain.ErrConfigInvalid, "library.name", cfg.Library.Name)
	}
	return nil
}
