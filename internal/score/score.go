package score

import (
	"strings"
)

// Scoring constants for path similarity. The confidence divisor is calibrated
// so that a same-filename match with two matching ancestor segments lands at
// confidence 1.0 (50 + 10 + 10 = 70).
const (
	// FilenameMatchBonus is awarded when both paths name the same file.
	FilenameMatchBonus = 50

	// FilenamePartialBase is the starting credit for near-miss filenames,
	// reduced by twice their edit distance.
	FilenamePartialBase = 20

	// SegmentMatchBonus is awarded per directory segment that matches exactly.
	SegmentMatchBonus = 10

	// SegmentPrefixBonus is the base credit when one directory segment is a
	// prefix of the other ("extract" vs "extractor"), reduced by the length
	// difference so longer suffixes earn less.
	SegmentPrefixBonus = 5

	// DepthPenalty is subtracted once per level of directory-depth difference.
	DepthPenalty = 5

	// SpecificMismatchWeight multiplies the edit-distance penalty on the
	// deepest mismatched directory segment. The most specific segment is the
	// one that names the module, so a mismatch there ("extractor" vs
	// "generator") must outweigh the shared-filename and shared-ancestor
	// bonuses; a plain 1x penalty lets unrelated modules clear the auto-match
	// threshold whenever the filename and an ancestor agree.
	SpecificMismatchWeight = 4
)

// SplitPath decomposes a slash-delimited identifier into its directory
// segments and filename. The last segment is always the filename, even when
// the path has no directory component.
func SplitPath(path string) (dirs []string, filename string) {
	segments := strings.Split(path, "/")
	return segments[:len(segments)-1], segments[len(segments)-1]
}

// Score computes a signed similarity score between a queried path and a
// candidate path. Higher is more similar; non-positive scores mean the
// candidate is not worth surfacing at all.
//
// The filename term dominates because two files named identically are very
// likely the same concept moved or mistyped; prefix credit on directory
// segments captures the common missing-suffix mistake ("build" for
// "builder"); the depth penalty discourages matches across unrelated
// nesting levels.
func Score(query, candidate string) int {
	queryDirs, queryFile := SplitPath(query)
	candDirs, candFile := SplitPath(candidate)

	total := filenameTerm(queryFile, candFile)
	total += directoryTerm(queryDirs, candDirs)

	depthDiff := len(queryDirs) - len(candDirs)
	if depthDiff < 0 {
		depthDiff = -depthDiff
	}
	total -= DepthPenalty * depthDiff

	return total
}

// filenameTerm awards full credit for identical filenames and decaying
// partial credit for near misses.
func filenameTerm(queryFile, candFile string) int {
	if queryFile == candFile {
		return FilenameMatchBonus
	}
	partial := FilenamePartialBase - 2*Distance(queryFile, candFile)
	if partial < 0 {
		return 0
	}
	return partial
}

// directoryTerm compares directory segments index by index over the shared
// depth. The deepest mismatched segment carries a heavier penalty than
// shallower ones; see SpecificMismatchWeight.
func directoryTerm(queryDirs, candDirs []string) int {
	shared := len(queryDirs)
	if len(candDirs) < shared {
		shared = len(candDirs)
	}

	total := 0
	deepestMismatch := -1
	for i := 0; i < shared; i++ {
		if queryDirs[i] != candDirs[i] && !isPrefixPair(queryDirs[i], candDirs[i]) {
			deepestMismatch = i
		}
	}

	for i := 0; i < shared; i++ {
		qs, cs := queryDirs[i], candDirs[i]
		switch {
		case qs == cs:
			total += SegmentMatchBonus
		case isPrefixPair(qs, cs):
			lenDiff := len(qs) - len(cs)
			if lenDiff < 0 {
				lenDiff = -lenDiff
			}
			total += SegmentPrefixBonus - lenDiff
		case i == deepestMismatch:
			total -= SpecificMismatchWeight * Distance(qs, cs)
		default:
			total -= Distance(qs, cs)
		}
	}

	return total
}

// isPrefixPair reports whether one segment is a proper prefix of the other.
// Empty segments never count as prefixes; they would make every segment a
// trivial match.
func isPrefixPair(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.HasPrefix(a, b) || strings.HasPrefix(b, a)
}
