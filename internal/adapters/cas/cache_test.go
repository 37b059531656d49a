package cas_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/extq/internal/adapters/cas"
	"go.trai.ch/extq/internal/core/domain"
)

// MockRoundTripper serves canned responses and counts requests.
type MockRoundTripper struct {
	RoundTripFunc func(req *http.Request) *http.Response
	calls         atomic.Int32
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	m.calls.Add(1)
	return m.RoundTripFunc(req), nil
}

func respond(status int, body string) func(*http.Request) *http.Response {
	return func(_ *http.Request) *http.Response {
		return &http.Response{
			StatusCode: status,
			Body:       io.NopCloser(bytes.NewBufferString(body)),
			Header:     make(http.Header),
		}
	}
}

func newTestCache(t *testing.T, rt *MockRoundTripper) (*cas.Cache, string) {
	t.Helper()
	root := filepath.Join(t.TempDir(), ".cache")
	c, err := cas.NewCacheWithClient(root, &http.Client{Transport: rt})
	require.NoError(t, err)
	return c, root
}

func TestKey(t *testing.T) {
	a := cas.Key("https://example.com/a.zip")
	assert.Len(t, a, 64)
	assert.True(t, domain.IsCacheKey(a))
	assert.Equal(t, a, cas.Key("https://example.com/a.zip"))
	assert.NotEqual(t, a, cas.Key("https://example.com/b.zip"))

	assert.Equal(t, a, cas.Key("HTTPS://Example.com:443/a.zip"))
	assert.NotEqual(t, a, cas.Key("https://example.com/A.zip"))

	// Unparsable input is hashed as given.
	assert.True(t, domain.IsCacheKey(cas.Key("%zz://")))
}

func TestCache_Fetch(t *testing.T) {
	const url = "https://example.com/ghostery-chromium.zip"

	t.Run("downloads once and serves from disk afterwards", func(t *testing.T) {
		rt := &MockRoundTripper{RoundTripFunc: respond(http.StatusOK, "artifact-bytes")}
		c, root := newTestCache(t, rt)

		first, err := c.Fetch(context.Background(), url)
		require.NoError(t, err)
		second, err := c.Fetch(context.Background(), url)
		require.NoError(t, err)

		assert.Equal(t, []byte("artifact-bytes"), first)
		assert.Equal(t, first, second)
		assert.Equal(t, int32(1), rt.calls.Load())

		onDisk, err := os.ReadFile(filepath.Join(root, cas.Key(url)))
		require.NoError(t, err)
		assert.Equal(t, first, onDisk)
	})

	t.Run("leaves no temp files behind", func(t *testing.T) {
		rt := &MockRoundTripper{RoundTripFunc: respond(http.StatusOK, "x")}
		c, root := newTestCache(t, rt)

		_, err := c.Fetch(context.Background(), url)
		require.NoError(t, err)

		entries, err := os.ReadDir(root)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, cas.Key(url), entries[0].Name())
	})

	t.Run("non-2xx status is an error and nothing is cached", func(t *testing.T) {
		rt := &MockRoundTripper{RoundTripFunc: respond(http.StatusNotFound, "not found")}
		c, root := newTestCache(t, rt)

		_, err := c.Fetch(context.Background(), url)
		require.Error(t, err)
		assert.Contains(t, err.Error(), domain.ErrFetchFailed.Error())
		assert.NoFileExists(t, filepath.Join(root, cas.Key(url)))

		_, err = c.Fetch(context.Background(), url)
		require.Error(t, err)
		assert.Equal(t, int32(2), rt.calls.Load())
	})

	t.Run("file urls bypass the cache", func(t *testing.T) {
		rt := &MockRoundTripper{RoundTripFunc: respond(http.StatusOK, "unused")}
		c, root := newTestCache(t, rt)

		local := filepath.Join(t.TempDir(), "local.zip")
		require.NoError(t, os.WriteFile(local, []byte("local-bytes"), domain.FilePerm))

		data, err := c.Fetch(context.Background(), "file://"+local)
		require.NoError(t, err)
		assert.Equal(t, []byte("local-bytes"), data)
		assert.Equal(t, int32(0), rt.calls.Load())

		entries, err := os.ReadDir(root)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("missing local file", func(t *testing.T) {
		c, _ := newTestCache(t, &MockRoundTripper{RoundTripFunc: respond(http.StatusOK, "")})

		_, err := c.Fetch(context.Background(), "file://"+filepath.Join(t.TempDir(), "nope.zip"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), domain.ErrCacheReadFailed.Error())
	})

	t.Run("existing entry is served without network", func(t *testing.T) {
		rt := &MockRoundTripper{RoundTripFunc: respond(http.StatusInternalServerError, "")}
		c, root := newTestCache(t, rt)
		require.NoError(t, os.WriteFile(filepath.Join(root, cas.Key(url)), []byte("seeded"), domain.FilePerm))

		data, err := c.Fetch(context.Background(), url)
		require.NoError(t, err)
		assert.Equal(t, []byte("seeded"), data)
		assert.Equal(t, int32(0), rt.calls.Load())
	})
}

func TestCache_Path(t *testing.T) {
	root := t.TempDir()
	c, err := cas.NewCache(root)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, cas.Key("u")), c.Path("u"))
	assert.Equal(t, root, c.Root())
}
