// Package github discovers extension builds from a GitHub release listing.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.trai.ch/extq/internal/core/domain"
	"go.trai.ch/extq/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	maxRetries     = 3
	initialBackoff = 1 * time.Second
	maxBackoff     = 32 * time.Second
	userAgent      = "extq"
	apiTimeout     = 30 * time.Second
)

type githubAsset struct {
	Name               string `json:"name"`
	BrowserDownloadURL string `json:"browser_download_url"`
}

type githubRelease struct {
	TagName string        `json:"tag_name"`
	Assets  []githubAsset `json:"assets"`
}

// Finder implements ports.ReleaseFinder against the GitHub REST API.
type Finder struct {
	logger     ports.Logger
	httpClient *http.Client
	token      string
	backoff    time.Duration
}

// Option configures a Finder.
type Option func(*Finder)

// WithHTTPClient replaces the HTTP client used for API calls.
func WithHTTPClient(client *http.Client) Option {
	return func(f *Finder) {
		f.httpClient = client
	}
}

// WithToken authenticates API calls, lifting the anonymous rate limit.
func WithToken(token string) Option {
	return func(f *Finder) {
		f.token = token
	}
}

// WithBackoff sets the initial retry delay.
func WithBackoff(d time.Duration) Option {
	return func(f *Finder) {
		f.backoff = d
	}
}

// NewFinder creates a Finder.
func NewFinder(logger ports.Logger, opts ...Option) *Finder {
	f := &Finder{
		logger:     logger,
		httpClient: &http.Client{Timeout: apiTimeout},
		backoff:    initialBackoff,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Latest returns the download URL of the first asset of the newest release whose
// URL contains match.
func (f *Finder) Latest(ctx context.Context, releasesURL, match string) (string, error) {
	releases, err := f.listReleases(ctx, releasesURL)
	if err != nil {
		return "", zerr.With(err, "url", releasesURL)
	}
	if len(releases) == 0 {
		return "", zerr.With(domain.ErrArtifactNotFound, "url", releasesURL)
	}

	latest := releases[0]
	f.logger.Info(fmt.Sprintf("looking for the %q build of %q...", match, latest.TagName))

	for _, asset := range latest.Assets {
		if strings.Contains(asset.BrowserDownloadURL, match) {
			return asset.BrowserDownloadURL, nil
		}
	}

	err = zerr.With(domain.ErrArtifactNotFound, "tag", latest.TagName)
	return "", zerr.With(err, "match", match)
}

func (f *Finder) listReleases(ctx context.Context, releasesURL string) ([]githubRelease, error) {
	resp, err := f.doWithRetry(ctx, releasesURL)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrReleaseListFailed.Error())
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		err := zerr.With(domain.ErrReleaseListFailed, "status_code", resp.StatusCode)
		if msg := strings.TrimSpace(string(body)); msg != "" {
			err = zerr.With(err, "response", msg)
		}
		return nil, err
	}

	var releases []githubRelease
	if err := json.NewDecoder(resp.Body).Decode(&releases); err != nil {
		return nil, zerr.Wrap(err, domain.ErrReleaseListFailed.Error())
	}
	return releases, nil
}

func (f *Finder) newRequest(ctx context.Context, url string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", userAgent)
	if f.token != "" {
		req.Header.Set("Authorization", "Bearer "+f.token)
	}
	return req, nil
}

// doWithRetry issues a GET, retrying transient failures with exponential backoff.
// The last retryable response is returned as is once retries run out.
func (f *Finder) doWithRetry(ctx context.Context, url string) (*http.Response, error) {
	var lastErr error

	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			if err := sleep(ctx, f.calculateBackoff(attempt-1)); err != nil {
				return nil, err
			}
		}

		req, err := f.newRequest(ctx, url)
		if err != nil {
			return nil, err
		}

		resp, err := f.httpClient.Do(req)
		if err != nil {
			lastErr = err
			if ctx.Err() != nil {
				return nil, err
			}
			continue
		}

		if err := checkRateLimit(resp); err != nil {
			_ = resp.Body.Close()
			return nil, err
		}

		if !isRetryableStatus(resp.StatusCode) || attempt == maxRetries {
			return resp, nil
		}
		_ = resp.Body.Close()
	}

	return nil, lastErr
}

func (f *Finder) calculateBackoff(attempt int) time.Duration {
	backoff := float64(f.backoff) * math.Pow(2, float64(attempt))
	if backoff > float64(maxBackoff) {
		backoff = float64(maxBackoff)
	}
	return time.Duration(backoff)
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func isRetryableStatus(code int) bool {
	switch code {
	case http.StatusForbidden,
		http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

// checkRateLimit fails fast once the API reports no remaining requests.
func checkRateLimit(resp *http.Response) error {
	remaining, err := strconv.Atoi(resp.Header.Get("X-RateLimit-Remaining"))
	if err != nil || remaining > 0 {
		return nil
	}

	rateErr := zerr.With(domain.ErrReleaseListFailed, "rate_limit_remaining", 0)
	if reset, err := strconv.ParseInt(resp.Header.Get("X-RateLimit-Reset"), 10, 64); err == nil {
		rateErr = zerr.With(rateErr, "resets_at", time.Unix(reset, 0).UTC().Format(time.RFC3339))
	}
	return rateErr
}
