package report_test

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/extq/internal/adapters/report"
	"go.trai.ch/extq/internal/core/domain"
)

func newTestPrinter(t *testing.T) (*report.Printer, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	return report.NewPrinter(buf), buf
}

func TestPrinter_Print(t *testing.T) {
	tests := []struct {
		name       string
		result     domain.MatchResult
		goldenName string
	}{
		{
			name:       "no matches",
			result:     domain.MatchResult{},
			goldenName: "print_empty",
		},
		{
			name: "network and cosmetic matches",
			result: domain.MatchResult{
				NetworkFilters: []domain.Filter{
					{Kind: domain.FilterKindNetwork, Text: "||tracker.example^$third-party"},
					{Kind: domain.FilterKindNetwork, Text: "@@||tracker.example/consent.js"},
				},
				CosmeticMatches: []domain.CosmeticMatch{
					{Filter: domain.Filter{Kind: domain.FilterKindCosmetic, Text: "##.ad-banner"}},
					{
						Filter: domain.Filter{
							Kind:             domain.FilterKindCosmetic,
							Text:             "news.example##+js(set-constant, ads%2Cenabled, false)",
							ScriptInject:     true,
							Script:           &domain.ScriptCall{Name: "set-constant", Args: []string{"ads%2Cenabled", "false"}},
							DomainRestricted: true,
						},
						Exception: &domain.Filter{Kind: domain.FilterKindCosmetic, Text: "news.example#@#+js()"},
					},
				},
			},
			goldenName: "print_matches",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, buf := newTestPrinter(t)
			require.NoError(t, p.Print(domain.AssetOutcome{Status: domain.OutcomeMatched, Result: tt.result}))

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestPrinter_Print_IgnoresUnmatchedOutcomes(t *testing.T) {
	p, buf := newTestPrinter(t)

	asset := domain.Asset{Path: "rule_resources/dnr-ads.json", Kind: domain.AssetKindRulesJSON}
	require.NoError(t, p.Print(domain.UnsupportedOutcome(asset, "declarative rule sets are not matched")))
	require.NoError(t, p.Print(domain.SkippedOutcome(asset, "regional")))

	assert.Empty(t, buf.String())
}
