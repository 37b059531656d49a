// Package cas implements a content cache keyed by URL digest.
package cas

import (
	"context"
	"encoding/hex"
	"errors"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/PuerkitoBio/purell"
	"github.com/zeebo/blake3"
	"go.trai.ch/extq/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	fileScheme        = "file://"
	httpClientTimeout = 10 * time.Minute
)

// Cache implements ports.ContentCache. Entries live at <root>/<blake3(url)> and are never
// invalidated: the same URL is assumed to always serve the same bytes.
type Cache struct {
	root       string
	httpClient *http.Client
}

// NewCache creates a Cache rooted at root, creating the directory if needed.
func NewCache(root string) (*Cache, error) {
	return NewCacheWithClient(root, &http.Client{Timeout: httpClientTimeout})
}

// NewCacheWithClient creates a Cache using a custom http client.
func NewCacheWithClient(root string, client *http.Client) (*Cache, error) {
	cleanRoot := filepath.Clean(root)
	if err := os.MkdirAll(cleanRoot, domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheCreateFailed.Error()), "path", cleanRoot)
	}

	return &Cache{
		root:       cleanRoot,
		httpClient: client,
	}, nil
}

// Root returns the cache directory.
func (c *Cache) Root() string {
	return c.root
}

// Key returns the hex BLAKE3-256 digest of url. Spellings of the same URL that
// only differ in scheme or host case, default port or escaping share a key.
func Key(url string) string {
	sum := blake3.Sum256([]byte(canonical(url)))
	return hex.EncodeToString(sum[:])
}

func canonical(url string) string {
	normalized, err := purell.NormalizeURLString(url, purell.FlagsSafe)
	if err != nil {
		return url
	}
	return normalized
}

// Path returns the entry location for url.
func (c *Cache) Path(url string) string {
	return filepath.Join(c.root, Key(url))
}

// Fetch returns the content behind url, downloading it on first use.
func (c *Cache) Fetch(ctx context.Context, url string) ([]byte, error) {
	if path, ok := strings.CutPrefix(url, fileScheme); ok {
		return readLocal(path)
	}

	entry := c.Path(url)
	//nolint:gosec // Path is constructed from the cache root and a hashed filename
	data, err := os.ReadFile(entry)
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheReadFailed.Error()), "path", entry)
	}

	data, err = c.download(ctx, url)
	if err != nil {
		return nil, err
	}

	if err := atomicWriteFile(entry, data); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", entry)
	}

	return data, nil
}

func readLocal(path string) ([]byte, error) {
	// #nosec G304 -- local artifacts are chosen by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheReadFailed.Error()), "path", path)
	}
	return data, nil
}

func (c *Cache) download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFetchFailed.Error()), "url", url)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFetchFailed.Error()), "url", url)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		statusErr := zerr.With(domain.ErrFetchFailed, "status_code", resp.StatusCode)
		return nil, zerr.With(statusErr, "url", url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFetchFailed.Error()), "url", url)
	}

	return body, nil
}

// atomicWriteFile writes data to a temp file next to path and renames it into place,
// so a partially downloaded entry is never observed.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(dir, filepath.Base(path)+".part-*")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()

	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}

	if err := tmpFile.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}
