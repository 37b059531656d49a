package domain

import "strings"

// RefPlaceholder is substituted with the extension ref in ExtensionConfig.ManifestURL.
const RefPlaceholder = "{ref}"

// Config is the resolved configuration of a run.
type Config struct {
	CacheDir  string
	Extension ExtensionConfig
	Library   LibraryConfig
	Assets    AssetConfig
}

// ExtensionConfig locates extension releases and their package manifest.
type ExtensionConfig struct {
	ReleasesURL   string
	ManifestURL   string
	ArtifactMatch string
}

// ManifestURLFor returns the package manifest location for ref.
func (c ExtensionConfig) ManifestURLFor(ref string) string {
	return strings.ReplaceAll(c.ManifestURL, RefPlaceholder, ref)
}

// LibraryConfig describes how the filtering library is located and built.
type LibraryConfig struct {
	// Name prefixes the cache entries of the library.
	Name string
	// Package is the dependency key in the extension package manifest.
	Package    string
	Repository string
	// PackageDir is the package location inside the library repository.
	PackageDir string
	Entry      string
	Build      string
	Install    string
}

// AssetConfig describes how rule assets are recognised inside an artifact.
type AssetConfig struct {
	Manifest       string
	Directory      string
	BinaryExt      string
	JSONExt        string
	RegionalMarker string
}

// DefaultConfig returns the built-in configuration targeting the Ghostery extension.
func DefaultConfig() *Config {
	return &Config{
		CacheDir: CacheDirName,
		Extension: ExtensionConfig{
			ReleasesURL:   "https://api.github.com/repos/ghostery/ghostery-extension/releases",
			ManifestURL:   "https://raw.githubusercontent.com/ghostery/ghostery-extension/refs/{ref}/package.json",
			ArtifactMatch: "ghostery-chromium",
		},
		Library: LibraryConfig{
			Name:       "adblocker",
			Package:    "@ghostery/adblocker",
			Repository: "https://github.com/ghostery/adblocker.git",
			PackageDir: "packages/adblocker",
			Entry:      "dist/esm/index.js",
			Build:      "yarn && yarn clean && yarn build",
			Install:    "npm install",
		},
		Assets: AssetConfig{
			Manifest:       "manifest.json",
			Directory:      "rule_resources",
			BinaryExt:      ".dat",
			JSONExt:        ".json",
			RegionalMarker: "lang",
		},
	}
}
