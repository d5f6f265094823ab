package resolver

import (
	"sort"

	"github.com/standardbeagle/fpr/internal/score"
	"github.com/standardbeagle/fpr/internal/types"
)

// FindBestMatches scores the query against every candidate, discards
// non-positive scores, and returns at most topN candidates ordered by raw
// score descending. Ties break lexicographically on the identifier so output
// is stable across repeated calls against the same input. A negative topN
// returns all positive-scoring candidates.
//
// Pure and synchronous; safe to call concurrently.
func FindBestMatches(query string, candidates []string, topN int) []types.ScoredCandidate {
	scored := make([]types.ScoredCandidate, 0, len(candidates))
	for _, candidate := range candidates {
		raw := score.Score(query, candidate)
		if raw <= 0 {
			continue
		}
		scored = append(scored, types.ScoredCandidate{
			Identifier: candidate,
			RawScore:   raw,
			Confidence: score.Confidence(raw),
		})
	}

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].RawScore != scored[j].RawScore {
			return scored[i].RawScore > scored[j].RawScore
		}
		return scored[i].Identifier < scored[j].Identifier
	})

	if topN >= 0 && len(scored) > topN {
		scored = scored[:topN]
	}
	return scored
}
