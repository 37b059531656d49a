package domain

// LibraryLocation identifies a materialized build of the filtering library.
type LibraryLocation struct {
	Version string
	// Dir is the version directory holding package.json and dist/.
	Dir string
	// Entry is the module entry point relative to Dir.
	Entry string
}

// Request is a library-side request object built from a URL and its referring page.
type Request struct {
	URL       string
	SourceURL string
	// Handle references the request inside the library runtime.
	Handle string
}

// CosmeticOptions selects which cosmetic rule families are consulted.
type CosmeticOptions struct {
	GetExtendedRules     bool `json:"getExtendedRules"`
	GetPureHasRules      bool `json:"getPureHasRules"`
	GetRulesFromHostname bool `json:"getRulesFromHostname"`
	GetInjectionRules    bool `json:"getInjectionRules"`
}

// DefaultCosmeticOptions returns the options used for every query.
func DefaultCosmeticOptions() CosmeticOptions {
	return CosmeticOptions{
		GetExtendedRules:     false,
		GetPureHasRules:      true,
		GetRulesFromHostname: true,
		GetInjectionRules:    true,
	}
}

// MatchQuery is the caller input for matching a single asset.
type MatchQuery struct {
	URL       string
	SourceURL string
	EnvToken  string
}
