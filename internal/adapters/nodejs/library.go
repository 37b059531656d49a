package nodejs

import (
	"context"
	"encoding/base64"

	"go.trai.ch/extq/internal/core/domain"
	"go.trai.ch/extq/internal/core/ports"
)

// Library is a library build served by a bridge process.
type Library struct {
	version string
	proc    *process
}

// Version returns the library version.
func (l *Library) Version() string {
	return l.version
}

// DeserializeEngine restores an engine from its serialized bytes.
func (l *Library) DeserializeEngine(ctx context.Context, data []byte) (ports.Engine, error) {
	var handle string
	args := map[string]string{"data": base64.StdEncoding.EncodeToString(data)}
	if err := l.proc.call(ctx, "deserialize", args, &handle); err != nil {
		return nil, err
	}
	return &Engine{proc: l.proc, handle: handle}, nil
}

// BuildRequest builds a library request object. An empty sourceURL is left out.
func (l *Library) BuildRequest(ctx context.Context, url, sourceURL string) (domain.Request, error) {
	var handle string
	args := map[string]string{"url": url, "sourceUrl": sourceURL}
	if err := l.proc.call(ctx, "buildRequest", args, &handle); err != nil {
		return domain.Request{}, err
	}
	return domain.Request{URL: url, SourceURL: sourceURL, Handle: handle}, nil
}

// ReleaseRequest drops the request object behind req.Handle.
func (l *Library) ReleaseRequest(ctx context.Context, req domain.Request) error {
	return l.proc.call(ctx, "release", map[string]string{"handle": req.Handle}, nil)
}

// Close stops the bridge process.
func (l *Library) Close() error {
	return l.proc.close()
}

// Engine is a deserialized engine living in the bridge process.
type Engine struct {
	proc   *process
	handle string
}

// UpdateEnv replaces the engine's environment flags.
func (e *Engine) UpdateEnv(ctx context.Context, flags domain.EnvironmentFlags) error {
	args := map[string]any{"engine": e.handle, "flags": flags}
	return e.proc.call(ctx, "updateEnv", args, nil)
}

// MatchNetwork returns the network filters matching req.
func (e *Engine) MatchNetwork(ctx context.Context, req domain.Request) ([]domain.Filter, error) {
	var filters []domain.Filter
	args := map[string]string{"engine": e.handle, "request": req.Handle}
	if err := e.proc.call(ctx, "matchNetwork", args, &filters); err != nil {
		return nil, err
	}
	return filters, nil
}

// MatchCosmetic returns the cosmetic matches for req.
func (e *Engine) MatchCosmetic(
	ctx context.Context,
	req domain.Request,
	opts domain.CosmeticOptions,
) ([]domain.CosmeticMatch, error) {
	var matches []domain.CosmeticMatch
	args := map[string]any{"engine": e.handle, "request": req.Handle, "options": opts}
	if err := e.proc.call(ctx, "matchCosmetic", args, &matches); err != nil {
		return nil, err
	}
	return matches, nil
}

// Release drops the engine from the bridge.
func (e *Engine) Release(ctx context.Context) error {
	return e.proc.call(ctx, "release", map[string]string{"handle": e.handle}, nil)
}
