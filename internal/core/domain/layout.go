package domain

import (
	"path/filepath"
	"regexp"
	"strings"
)

const (
	// CacheDirName is the default cache root, relative to the working directory.
	CacheDirName = ".cache"

	// ConfigFileName is the configuration file picked up from the working directory.
	ConfigFileName = "extq.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	scratchInfix  = ".tmp."
	scratchSuffix = ".d"
)

var cacheKeyPattern = regexp.MustCompile(`^[0-9a-f]{64}$`)

// IsCacheKey reports whether name has the shape of a content cache entry.
func IsCacheKey(name string) bool {
	return cacheKeyPattern.MatchString(name)
}

// ScratchPattern returns the os.MkdirTemp pattern of extraction directories for a cache entry.
func ScratchPattern(entryName string) string {
	return entryName + scratchInfix + "*" + scratchSuffix
}

// IsScratchDir reports whether name is a leftover extraction directory.
func IsScratchDir(name string) bool {
	key, _, ok := strings.Cut(name, scratchInfix)
	return ok && IsCacheKey(key) && strings.HasSuffix(name, scratchSuffix)
}

// LibraryDir returns the directory holding the materialized build of a library version.
func LibraryDir(root, name, version string) string {
	return filepath.Join(root, name+"-"+version+".d")
}

// LibrarySourceDir returns the directory of the library's source working copy.
func LibrarySourceDir(root, name string) string {
	return filepath.Join(root, name)
}

// LibraryLockPath returns the lock file guarding the library's source working copy.
func LibraryLockPath(root, name string) string {
	return filepath.Join(root, name+".lock")
}

// IsLibraryBuild reports whether name is a version directory of library, or a
// staging directory left behind by an interrupted build.
func IsLibraryBuild(name, library string) bool {
	rest, ok := strings.CutPrefix(name, library+"-")
	if !ok || rest == "" {
		return false
	}
	return strings.HasSuffix(rest, ".d") || strings.Contains(rest, ".d.staging-")
}
