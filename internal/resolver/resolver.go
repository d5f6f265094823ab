package resolver

import (
	"github.com/standardbeagle/fpr/internal/types"
)

const (
	// selectorTopN is how many ranked candidates the policy examines.
	selectorTopN = 5

	// maxAlternatives caps the alternatives list in any result.
	maxAlternatives = 3
)

// Resolver applies the three-tier resolution policy (auto-resolve, suggest,
// reject) on top of the ranked candidate selector. It holds no mutable
// state; one Resolver can serve any number of goroutines.
type Resolver struct {
	thresholds types.Thresholds
}

// New creates a resolver with the given thresholds. Returns an error when
// the thresholds are out of range or mis-ordered.
func New(thresholds types.Thresholds) (*Resolver, error) {
	if err := thresholds.Validate(); err != nil {
		return nil, err
	}
	return &Resolver{thresholds: thresholds}, nil
}

// NewDefault creates a resolver with the standard thresholds.
func NewDefault() *Resolver {
	return &Resolver{thresholds: types.DefaultThresholds()}
}

// Thresholds returns the thresholds this resolver was built with.
func (r *Resolver) Thresholds() types.Thresholds {
	return r.thresholds
}

// Resolve matches one requested identifier against the candidate set.
//
// An exact member of the candidate set resolves immediately with confidence
// 1.0. Otherwise the best fuzzy candidate decides the bucket: at or above
// the auto-match threshold it becomes the authoritative substitute with the
// runners-up as alternatives; at or above the suggestion threshold nothing
// is substituted but the ranked candidates are surfaced as suggestions;
// below that the result is a plain miss. Malformed or empty input never
// errors, it just scores low.
func (r *Resolver) Resolve(query string, candidates []string) types.ResolutionResult {
	for _, candidate := range candidates {
		if candidate == query {
			return types.ResolutionResult{
				Requested:  query,
				Matched:    query,
				Confidence: 1.0,
			}
		}
	}

	matches := FindBestMatches(query, candidates, selectorTopN)
	if len(matches) == 0 {
		return types.ResolutionResult{Requested: query}
	}

	best := matches[0]
	switch {
	case best.Confidence >= r.thresholds.AutoMatch:
		return types.ResolutionResult{
			Requested:    query,
			Matched:      best.Identifier,
			Confidence:   best.Confidence,
			Alternatives: identifiers(matches[1:], maxAlternatives),
		}
	case best.Confidence >= r.thresholds.Suggestion:
		// Not confident enough to substitute, but the caller should see
		// what it would have been.
		return types.ResolutionResult{
			Requested:    query,
			Confidence:   best.Confidence,
			Alternatives: identifiers(matches, maxAlternatives),
		}
	default:
		return types.ResolutionResult{
			Requested:  query,
			Confidence: best.Confidence,
		}
	}
}

// identifiers extracts up to limit identifiers from scored candidates.
func identifiers(matches []types.ScoredCandidate, limit int) []string {
	if len(matches) == 0 {
		return nil
	}
	if len(matches) > limit {
		matches = matches[:limit]
	}
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Identifier
	}
	return out
}
