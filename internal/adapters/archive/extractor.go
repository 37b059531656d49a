// Package archive pulls extension builds and collects the rule assets they bundle.
package archive

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/tidwall/jsonc"
	"go.trai.ch/extq/internal/core/domain"
	"go.trai.ch/extq/internal/core/ports"
	"go.trai.ch/zerr"
)

// Extractor implements ports.ArtifactExtractor.
type Extractor struct {
	cache  ports.ContentCache
	assets domain.AssetConfig
}

// NewExtractor creates an Extractor reading artifacts through cache.
func NewExtractor(cache ports.ContentCache, assets domain.AssetConfig) *Extractor {
	return &Extractor{
		cache:  cache,
		assets: assets,
	}
}

// Pull fetches the artifact at url, unpacks it into a scratch directory next to its
// cache entry and returns the manifest version with the classified rule assets.
// The scratch directory is removed on every return path.
func (e *Extractor) Pull(ctx context.Context, url string) (*domain.ReleaseArtifact, error) {
	data, err := e.cache.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	var artifact *domain.ReleaseArtifact
	err = withScratch(e.cache.Path(url), func(dir string) error {
		if err := unpack(data, dir); err != nil {
			return err
		}

		listing, err := listRecursive(dir)
		if err != nil {
			return zerr.Wrap(err, domain.ErrExtractFailed.Error())
		}

		artifact, err = e.collect(dir, listing)
		return err
	})
	if err != nil {
		return nil, zerr.With(err, "url", url)
	}

	return artifact, nil
}

func withScratch(entry string, fn func(dir string) error) error {
	dir, err := os.MkdirTemp(filepath.Dir(entry), domain.ScratchPattern(filepath.Base(entry)))
	if err != nil {
		return zerr.Wrap(err, domain.ErrExtractFailed.Error())
	}
	defer func() {
		_ = os.RemoveAll(dir)
	}()

	return fn(dir)
}

// collect walks an ls -R style listing, tracking the directory named by the
// most recent "<dir>:" marker, and picks up the manifest and the rule assets.
func (e *Extractor) collect(root string, listing []string) (*domain.ReleaseArtifact, error) {
	artifact := &domain.ReleaseArtifact{}
	prefix := root

	for i, line := range listing {
		if line == "" {
			continue
		}
		if dir, ok := strings.CutSuffix(line, ":"); ok && (i == 0 || listing[i-1] == "") {
			prefix = filepath.Join(root, filepath.FromSlash(dir))
			continue
		}

		path := filepath.Join(prefix, line)
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}

		if line == e.assets.Manifest {
			if prefix != root {
				continue
			}
			version, err := readManifestVersion(path)
			if err != nil {
				return nil, err
			}
			artifact.Version = version
			continue
		}

		if prefix == root || filepath.Base(prefix) != e.assets.Directory {
			continue
		}

		asset, ok, err := e.readAsset(root, path)
		if err != nil {
			return nil, err
		}
		if ok {
			artifact.Assets = append(artifact.Assets, asset)
		}
	}

	if artifact.Version == "" {
		return nil, domain.ErrArtifactVersionMissing
	}

	return artifact, nil
}

func (e *Extractor) readAsset(root, path string) (domain.Asset, bool, error) {
	var kind domain.AssetKind
	switch {
	case strings.HasSuffix(path, e.assets.BinaryExt):
		kind = domain.AssetKindRulesBinary
	case strings.HasSuffix(path, e.assets.JSONExt):
		kind = domain.AssetKindRulesJSON
	default:
		return domain.Asset{}, false, nil
	}

	// #nosec G304 -- path is inside the scratch directory
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Asset{}, false, zerr.Wrap(err, domain.ErrExtractFailed.Error())
	}

	rel, err := filepath.Rel(root, path)
	if err != nil {
		return domain.Asset{}, false, zerr.Wrap(err, domain.ErrExtractFailed.Error())
	}

	asset := domain.Asset{
		Path:   filepath.ToSlash(rel),
		Kind:   kind,
		Digest: xxhash.Sum64(data),
	}
	if kind == domain.AssetKindRulesJSON {
		asset.Text = string(data)
	} else {
		asset.Data = data
	}

	return asset, true, nil
}

type manifest struct {
	Version string `json:"version"`
}

// readManifestVersion decodes the extension manifest, tolerating comments and trailing commas.
func readManifestVersion(path string) (string, error) {
	// #nosec G304 -- path is inside the scratch directory
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrManifestParseFailed.Error())
	}

	var m manifest
	if err := json.Unmarshal(jsonc.ToJSON(raw), &m); err != nil {
		return "", zerr.Wrap(err, domain.ErrManifestParseFailed.Error())
	}

	return m.Version, nil
}
