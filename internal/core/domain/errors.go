package domain

import "go.trai.ch/zerr"

var (
	// ErrMissingTargetURL is returned when no URL to match against was given.
	ErrMissingTargetURL = zerr.New("the given URL was not found")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigInvalid is returned when a config value is unusable.
	ErrConfigInvalid = zerr.New("invalid configuration")

	// ErrToolNotFound is returned when a required external command is not on PATH.
	ErrToolNotFound = zerr.New("cannot find the required command")

	// ErrCacheCreateFailed is returned when the cache directory cannot be created.
	ErrCacheCreateFailed = zerr.New("failed to create cache directory")

	// ErrCacheReadFailed is returned when a cache entry or local file cannot be read.
	ErrCacheReadFailed = zerr.New("failed to read cached content")

	// ErrCacheWriteFailed is returned when a cache entry cannot be persisted.
	ErrCacheWriteFailed = zerr.New("failed to write cache entry")

	// ErrFetchFailed is returned when a remote resource cannot be downloaded.
	ErrFetchFailed = zerr.New("failed to fetch remote content")

	// ErrArtifactNotFound is returned when the release listing has no matching artifact.
	ErrArtifactNotFound = zerr.New("failed to locate artifact in the latest release")

	// ErrReleaseListFailed is returned when the release listing cannot be retrieved or decoded.
	ErrReleaseListFailed = zerr.New("failed to list releases")

	// ErrExtractFailed is returned when an artifact cannot be unpacked.
	ErrExtractFailed = zerr.New("failed to extract artifact")

	// ErrUnsupportedArchive is returned when the artifact is not a known archive format.
	ErrUnsupportedArchive = zerr.New("unsupported archive format")

	// ErrUnsafeArchivePath is returned when an archive entry escapes the extraction root.
	ErrUnsafeArchivePath = zerr.New("archive entry escapes extraction directory")

	// ErrManifestParseFailed is returned when the artifact manifest cannot be decoded.
	ErrManifestParseFailed = zerr.New("failed to parse artifact manifest")

	// ErrArtifactVersionMissing is returned when the artifact manifest declares no version.
	ErrArtifactVersionMissing = zerr.New("artifact manifest has no version")

	// ErrLibraryManifestParseFailed is returned when the extension package manifest cannot be decoded.
	ErrLibraryManifestParseFailed = zerr.New("failed to parse extension package manifest")

	// ErrLibraryVersionMissing is returned when the extension does not depend on the filtering library.
	ErrLibraryVersionMissing = zerr.New("cannot find the filtering library in the package manifest")

	// ErrLibraryVersionInvalid is returned when the declared library version is not usable.
	ErrLibraryVersionInvalid = zerr.New("invalid filtering library version")

	// ErrSourceControlFailed is returned when a git operation fails.
	ErrSourceControlFailed = zerr.New("git command failed")

	// ErrBuildFailed is returned when the library build or install pipeline fails.
	ErrBuildFailed = zerr.New("failed to build filtering library")

	// ErrLibraryLoadFailed is returned when a materialized library cannot be loaded.
	ErrLibraryLoadFailed = zerr.New("failed to load filtering library")

	// ErrBridgeFailed is returned when a call into the loaded library fails.
	ErrBridgeFailed = zerr.New("filtering library call failed")

	// ErrBridgeClosed is returned when a call is made on a closed library handle.
	ErrBridgeClosed = zerr.New("filtering library handle is closed")
)
