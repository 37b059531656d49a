// Package harness runs one rule asset through a loaded filtering library.
package harness

import (
	"context"
	"errors"

	"go.trai.ch/extq/internal/core/domain"
	"go.trai.ch/extq/internal/core/ports"
	"go.trai.ch/zerr"
)

// UnsupportedReason explains why declarative (JSON) rule sets produce no matches.
const UnsupportedReason = "declarative rule sets are not matched"

// Harness matches rule assets against a target request.
type Harness struct {
	tracer ports.Tracer
}

// NewHarness creates a new Harness.
func NewHarness(tracer ports.Tracer) *Harness {
	return &Harness{tracer: tracer}
}

// Match deserializes the engine in asset, applies the environment flags derived from
// query.EnvToken and collects the network filters and cosmetic matches for the query.
// JSON rule sets yield an Unsupported outcome without touching the library.
func (h *Harness) Match(
	ctx context.Context,
	lib ports.Library,
	asset domain.Asset,
	query domain.MatchQuery,
) (outcome domain.AssetOutcome, err error) {
	if asset.Kind == domain.AssetKindRulesJSON {
		return domain.UnsupportedOutcome(asset, UnsupportedReason), nil
	}

	ctx, span := h.tracer.Start(ctx, "match")
	span.SetAttribute("asset", asset.Path)
	defer func() {
		if err != nil {
			span.RecordError(err)
		}
		span.End()
	}()

	engine, err := lib.DeserializeEngine(ctx, asset.Data)
	if err != nil {
		return domain.AssetOutcome{}, zerr.With(err, "asset", asset.Path)
	}
	defer func() {
		if releaseErr := engine.Release(ctx); releaseErr != nil {
			err = errors.Join(err, releaseErr)
		}
	}()

	flags := domain.FlagsFromToken(query.EnvToken)
	span.SetAttribute("env", flags.Names())
	if err := engine.UpdateEnv(ctx, flags); err != nil {
		return domain.AssetOutcome{}, zerr.With(err, "asset", asset.Path)
	}

	req, err := lib.BuildRequest(ctx, query.URL, query.SourceURL)
	if err != nil {
		return domain.AssetOutcome{}, zerr.With(err, "url", query.URL)
	}
	defer func() {
		if releaseErr := lib.ReleaseRequest(ctx, req); releaseErr != nil {
			err = errors.Join(err, releaseErr)
		}
	}()

	network, err := engine.MatchNetwork(ctx, req)
	if err != nil {
		return domain.AssetOutcome{}, zerr.With(err, "asset", asset.Path)
	}

	cosmetic, err := engine.MatchCosmetic(ctx, req, domain.DefaultCosmeticOptions())
	if err != nil {
		return domain.AssetOutcome{}, zerr.With(err, "asset", asset.Path)
	}

	result := domain.MatchResult{
		NetworkFilters:  network,
		CosmeticMatches: cosmetic,
	}
	span.SetAttribute("network_filters", len(result.NetworkFilters))
	span.SetAttribute("cosmetic_matches", len(result.CosmeticMatches))

	return domain.AssetOutcome{
		Asset:  asset,
		Status: domain.OutcomeMatched,
		Result: result,
	}, nil
}
