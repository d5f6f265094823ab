package score

import (
	"github.com/hbollon/go-edlib"
)

// Distance returns the exact Levenshtein edit distance between a and b: the
// minimum number of single-character insertions, deletions, or substitutions
// needed to transform one into the other.
//
// Exact values matter here because the segment scorer subtracts this number
// directly as a penalty, so no approximation or early cutoff is used.
// Symmetric and total over all string pairs, including empty strings.
func Distance(a, b string) int {
	return edlib.LevenshteinDistance(a, b)
}
