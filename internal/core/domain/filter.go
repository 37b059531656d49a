package domain

// FilterKind distinguishes network filters from cosmetic filters.
type FilterKind string

const (
	// FilterKindNetwork blocks, allows or rewrites requests.
	FilterKindNetwork FilterKind = "network"
	// FilterKindCosmetic hides elements or injects scripts into pages.
	FilterKindCosmetic FilterKind = "cosmetic"
)

// ScriptCall is a parsed scriptlet injection: the scriptlet name and its raw arguments.
type ScriptCall struct {
	Name string   `json:"name"`
	Args []string `json:"args"`
}

// Filter describes a matched filter as reported by the filtering library.
type Filter struct {
	Kind FilterKind `json:"kind"`
	// Text is the library's canonical rendering of the filter.
	Text         string      `json:"text"`
	ScriptInject bool        `json:"scriptInject"`
	Script       *ScriptCall `json:"script,omitempty"`
	// DomainRestricted is set when the filter carries a hostname constraint.
	DomainRestricted bool `json:"domainRestricted"`
}

// IsCosmetic reports whether the filter is a cosmetic filter.
func (f Filter) IsCosmetic() bool {
	return f.Kind == FilterKindCosmetic
}

// CosmeticMatch pairs a matched cosmetic filter with the exception that overrides it, if any.
type CosmeticMatch struct {
	Filter    Filter  `json:"filter"`
	Exception *Filter `json:"exception,omitempty"`
}

// MatchResult is what a single rule asset yields for one request.
type MatchResult struct {
	// NetworkFilters keeps the order and multiplicity the library reported.
	NetworkFilters  []Filter
	CosmeticMatches []CosmeticMatch
}

// OutcomeStatus tells whether an asset was matched.
type OutcomeStatus int

const (
	// OutcomeMatched means the asset was loaded and queried.
	OutcomeMatched OutcomeStatus = iota
	// OutcomeUnsupported means the asset format cannot be queried.
	OutcomeUnsupported
	// OutcomeSkipped means the asset was left out on request.
	OutcomeSkipped
)

// String returns the lowercase status name.
func (s OutcomeStatus) String() string {
	switch s {
	case OutcomeMatched:
		return "matched"
	case OutcomeUnsupported:
		return "unsupported"
	case OutcomeSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// AssetOutcome is the per-asset result of a query.
type AssetOutcome struct {
	Asset  Asset
	Status OutcomeStatus
	Reason string
	Result MatchResult
}

// SkippedOutcome builds the outcome of an asset left out on request.
func SkippedOutcome(asset Asset, reason string) AssetOutcome {
	return AssetOutcome{Asset: asset, Status: OutcomeSkipped, Reason: reason}
}

// UnsupportedOutcome builds the outcome of an asset that cannot be queried.
func UnsupportedOutcome(asset Asset, reason string) AssetOutcome {
	return AssetOutcome{Asset: asset, Status: OutcomeUnsupported, Reason: reason}
}
