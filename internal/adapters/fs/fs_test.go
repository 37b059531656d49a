package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/extq/internal/adapters/fs"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

// packageTree lays out a built package:
//
//	package.json
//	dist/esm/index.js
//	dist/cjs/index.cjs
//	dist/node_modules/dep/index.js
//	.git/config
//	src/index.ts
func packageTree(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "package.json"), `{"name": "adblocker"}`)
	writeFile(t, filepath.Join(root, "dist", "esm", "index.js"), "export {}")
	writeFile(t, filepath.Join(root, "dist", "cjs", "index.cjs"), "module.exports = {}")
	writeFile(t, filepath.Join(root, "dist", "node_modules", "dep", "index.js"), "dep")
	writeFile(t, filepath.Join(root, ".git", "config"), "git config")
	writeFile(t, filepath.Join(root, "src", "index.ts"), "export {}")
	return root
}

func TestWalker_WalkFiles(t *testing.T) {
	root := packageTree(t)

	var found []string
	for path, err := range fs.NewWalker().WalkFiles(root, []string{"src"}) {
		require.NoError(t, err)
		rel, err := filepath.Rel(root, path)
		require.NoError(t, err)
		found = append(found, filepath.ToSlash(rel))
	}

	assert.ElementsMatch(t, []string{
		"package.json",
		"dist/esm/index.js",
		"dist/cjs/index.cjs",
		"dist/node_modules/dep/index.js",
	}, found)
}

func TestWalker_WalkFiles_MissingRoot(t *testing.T) {
	var errs []error
	for _, err := range fs.NewWalker().WalkFiles(filepath.Join(t.TempDir(), "missing"), nil) {
		errs = append(errs, err)
	}
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], os.ErrNotExist)
}

func TestWalker_WalkFiles_StopsEarly(t *testing.T) {
	count := 0
	for range fs.NewWalker().WalkFiles(packageTree(t), nil) {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestCopier_Copy(t *testing.T) {
	src := packageTree(t)
	dst := t.TempDir()

	copier := fs.NewCopier(fs.NewWalker())
	require.NoError(t, copier.Copy(src, dst, []string{"package.json", "dist"}))

	assert.FileExists(t, filepath.Join(dst, "package.json"))
	assert.FileExists(t, filepath.Join(dst, "dist", "esm", "index.js"))
	assert.FileExists(t, filepath.Join(dst, "dist", "cjs", "index.cjs"))
	assert.NoDirExists(t, filepath.Join(dst, "dist", "node_modules"))
	assert.NoDirExists(t, filepath.Join(dst, "src"))

	content, err := os.ReadFile(filepath.Join(dst, "dist", "esm", "index.js"))
	require.NoError(t, err)
	assert.Equal(t, "export {}", string(content))
}

func TestCopier_Copy_MissingSource(t *testing.T) {
	copier := fs.NewCopier(fs.NewWalker())
	err := copier.Copy(t.TempDir(), t.TempDir(), []string{"dist"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to stat copy source")
}

func TestVerifier_MissingOutputs(t *testing.T) {
	root := packageTree(t)
	verifier := fs.NewVerifier()

	missing, err := verifier.MissingOutputs(root, []string{"package.json", "dist"})
	require.NoError(t, err)
	assert.Empty(t, missing)

	missing, err = verifier.MissingOutputs(root, []string{"package.json", "build", "dist/esm/index.js"})
	require.NoError(t, err)
	assert.Equal(t, []string{"build"}, missing)
}
