package config

// Configfile represents the structure of the extq.yaml configuration file.
// Empty values keep the built-in defaults.
type Configfile struct {
	CacheDir  string       `yaml:"cache_dir"`
	Extension ExtensionDTO `yaml:"extension"`
	Library   LibraryDTO   `yaml:"library"`
	Assets    AssetsDTO    `yaml:"assets"`
}

// ExtensionDTO locates extension releases and their package manifest.
type ExtensionDTO struct {
	ReleasesURL   string `yaml:"releases_url"`
	ManifestURL   string `yaml:"manifest_url"`
	ArtifactMatch string `yaml:"artifact_match"`
}

// LibraryDTO describes the filtering library build.
type LibraryDTO struct {
	Name       string `yaml:"name"`
	Package    string `yaml:"package"`
	Repository string `yaml:"repository"`
	PackageDir string `yaml:"package_dir"`
	Entry      string `yaml:"entry"`
	Build      string `yaml:"build"`
	Install    string `yaml:"install"`
}

// AssetsDTO describes how rule assets are recognised.
type AssetsDTO struct {
	Manifest       string `yaml:"manifest"`
	Directory      string `yaml:"directory"`
	BinaryExt      string `yaml:"binary_ext"`
	JSONExt        string `yaml:"json_ext"`
	RegionalMarker string `yaml:"regional_marker"`
}
