package domain

// AssetKind classifies a rule file found inside an artifact.
type AssetKind int

const (
	// AssetKindRulesBinary is a serialized filtering engine.
	AssetKindRulesBinary AssetKind = iota
	// AssetKindRulesJSON is a declarative (DNR) rule set.
	AssetKindRulesJSON
)

// String returns the short name of the kind.
func (k AssetKind) String() string {
	switch k {
	case AssetKindRulesBinary:
		return "binary"
	case AssetKindRulesJSON:
		return "json"
	default:
		return "unknown"
	}
}

// Asset is a rule file extracted from an artifact.
type Asset struct {
	// Path is the slash-separated location of the file inside the artifact.
	Path string
	Kind AssetKind
	// Data holds the raw bytes of binary assets.
	Data []byte
	// Text holds the contents of JSON assets.
	Text string
	// Digest is the xxhash64 of the asset content.
	Digest uint64
}

// Size returns the content length in bytes.
func (a Asset) Size() int {
	if a.Kind == AssetKindRulesJSON {
		return len(a.Text)
	}
	return len(a.Data)
}

// ReleaseArtifact is the result of pulling an extension build.
type ReleaseArtifact struct {
	Version string
	// Assets are kept in archive walk order.
	Assets []Asset
}
