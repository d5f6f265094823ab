package types

import "fmt"

// Default threshold constants for the resolution policy.
// Changing these changes observable behavior system-wide, so they are
// deliberate named constants rather than environment-driven settings.
const (
	// DefaultAutoMatchThreshold is the confidence above which a fuzzy match
	// is treated as authoritative and silently substituted.
	DefaultAutoMatchThreshold = 0.7

	// DefaultSuggestionThreshold is the confidence above which a
	// non-authoritative match is still worth surfacing to the user.
	DefaultSuggestionThreshold = 0.4
)

// Thresholds holds the two confidence cutoffs used by the resolution policy.
// Injected at construction so callers with differing strictness can coexist.
type Thresholds struct {
	AutoMatch  float64
	Suggestion float64
}

// DefaultThresholds returns the standard policy thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		AutoMatch:  DefaultAutoMatchThreshold,
		Suggestion: DefaultSuggestionThreshold,
	}
}

// Validate checks that both thresholds are within [0,1] and correctly ordered.
func (t Thresholds) Validate() error {
	if t.AutoMatch < 0 || t.AutoMatch > 1 {
		return fmt.Errorf("auto-match threshold must be between 0 and 1, got %v", t.AutoMatch)
	}
	if t.Suggestion < 0 || t.Suggestion > 1 {
		return fmt.Errorf("suggestion threshold must be between 0 and 1, got %v", t.Suggestion)
	}
	if t.Suggestion >= t.AutoMatch {
		return fmt.Errorf("suggestion threshold (%v) must be below auto-match threshold (%v)", t.Suggestion, t.AutoMatch)
	}
	return nil
}

// ScoredCandidate pairs a corpus identifier with its raw similarity score and
// normalized confidence. Ephemeral; never persisted.
type ScoredCandidate struct {
	Identifier string  `json:"identifier"`
	RawScore   int     `json:"raw_score"`
	Confidence float64 `json:"confidence"`
}

// ResolutionResult is the outcome of resolving one requested identifier.
// Matched is empty when no candidate cleared the auto-match threshold.
type ResolutionResult struct {
	Requested    string   `json:"requested"`
	Matched      string   `json:"matched,omitempty"`
	Confidence   float64  `json:"confidence"`
	Alternatives []string `json:"alternatives,omitempty"`
}

// MatchKind classifies how a batch request was satisfied.
type MatchKind int

const (
	// MatchExact means the identifier was found verbatim in the corpus.
	MatchExact MatchKind = iota
	// MatchFuzzy means a substitute cleared the auto-match threshold.
	MatchFuzzy
	// MatchNone means resolution failed; alternatives may carry suggestions.
	MatchNone
)

// String returns the wire name for the match kind.
func (k MatchKind) String() string {
	switch k {
	case MatchExact:
		return "exact"
	case MatchFuzzy:
		return "fuzzy"
	case MatchNone:
		return "unresolved"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler so MatchKind serializes as
// its name in JSON output.
func (k MatchKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting the names
// produced by MarshalText.
func (k *MatchKind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "exact":
		*k = MatchExact
	case "fuzzy":
		*k = MatchFuzzy
	case "unresolved":
		*k = MatchNone
	default:
		return fmt.Errorf("unknown match kind %q", text)
	}
	return nil
}

// BatchItem is the per-request entry in a batch resolution report, in the
// same order the requests were submitted.
type BatchItem struct {
	Requested string           `json:"requested"`
	Kind      MatchKind        `json:"kind"`
	Result    ResolutionResult `json:"result"`
}

// FuzzyMatchRecord is the audit entry recorded whenever a fuzzy substitute
// was applied, suitable for surfacing as
// "Note: path X was interpreted as Y (NN% confidence)."
type FuzzyMatchRecord struct {
	Requested    string   `json:"requested"`
	Actual       string   `json:"actual"`
	Confidence   float64  `json:"confidence"`
	Alternatives []string `json:"alternatives,omitempty"`
}

// BatchReport aggregates the outcome of resolving a batch of identifiers.
type BatchReport struct {
	Items        []BatchItem        `json:"items"`
	FuzzyMatches []FuzzyMatchRecord `json:"fuzzy_matches,omitempty"`
}

// Resolved returns the number of items that were satisfied either exactly
// or via an auto-applied fuzzy match.
func (r *BatchReport) Resolved() int {
	n := 0
	for _, item := range r.Items {
		if item.Kind != MatchNone {
			n++
		}
	}
	return n
}
