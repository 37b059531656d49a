package github_test

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/extq/internal/adapters/github"
	"go.trai.ch/extq/internal/core/domain"
	"go.trai.ch/extq/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const releasesJSON = `[
  {
    "tag_name": "v10.3.0",
    "assets": [
      {"name": "ghostery-firefox.zip", "browser_download_url": "https://example.com/v10.3.0/ghostery-firefox.zip"},
      {"name": "ghostery-chromium.zip", "browser_download_url": "https://example.com/v10.3.0/ghostery-chromium.zip"}
    ]
  },
  {
    "tag_name": "v10.2.9",
    "assets": [
      {"name": "ghostery-chromium.zip", "browser_download_url": "https://example.com/v10.2.9/ghostery-chromium.zip"}
    ]
  }
]`

func newFinder(t *testing.T) *github.Finder {
	t.Helper()

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()

	return github.NewFinder(log, github.WithBackoff(time.Millisecond))
}

func TestFinder_Latest(t *testing.T) {
	var gotHeaders http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeaders = r.Header.Clone()
		_, _ = w.Write([]byte(releasesJSON))
	}))
	defer srv.Close()

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(`looking for the "ghostery-chromium" build of "v10.3.0"...`)

	finder := github.NewFinder(log, github.WithToken("secret"))

	url, err := finder.Latest(t.Context(), srv.URL, "ghostery-chromium")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/v10.3.0/ghostery-chromium.zip", url)
	assert.Equal(t, "application/vnd.github+json", gotHeaders.Get("Accept"))
	assert.Equal(t, "Bearer secret", gotHeaders.Get("Authorization"))
}

func TestFinder_Latest_NoMatchingAsset(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(releasesJSON))
	}))
	defer srv.Close()

	_, err := newFinder(t).Latest(t.Context(), srv.URL, "ghostery-safari")
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrArtifactNotFound.Error())
}

func TestFinder_Latest_EmptyListing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	_, err := newFinder(t).Latest(t.Context(), srv.URL, "ghostery-chromium")
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrArtifactNotFound.Error())
}

func TestFinder_Latest_RetriesTransientFailures(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(releasesJSON))
	}))
	defer srv.Close()

	url, err := newFinder(t).Latest(t.Context(), srv.URL, "ghostery-chromium")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/v10.3.0/ghostery-chromium.zip", url)
	assert.Equal(t, int32(3), calls.Load())
}

func TestFinder_Latest_GivesUpAfterRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := newFinder(t).Latest(t.Context(), srv.URL, "ghostery-chromium")
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrReleaseListFailed.Error())
	assert.Equal(t, int32(4), calls.Load())
}

func TestFinder_Latest_NotFoundIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		http.NotFound(w, nil)
	}))
	defer srv.Close()

	_, err := newFinder(t).Latest(t.Context(), srv.URL, "ghostery-chromium")
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrReleaseListFailed.Error())
	assert.Equal(t, int32(1), calls.Load())
}

func TestFinder_Latest_RateLimitExhausted(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.Header().Set("X-RateLimit-Remaining", "0")
		w.Header().Set("X-RateLimit-Reset", "1700000000")
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := newFinder(t).Latest(t.Context(), srv.URL, "ghostery-chromium")
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrReleaseListFailed.Error())
	assert.Equal(t, int32(1), calls.Load())
}
