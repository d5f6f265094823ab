package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitPath(t *testing.T) {
	t.Run("nested_path", func(t *testing.T) {
		dirs, file := SplitPath("src/auth/login.ts")
		assert.Equal(t, []string{"src", "auth"}, dirs)
		assert.Equal(t, "login.ts", file)
	})

	t.Run("bare_filename", func(t *testing.T) {
		dirs, file := SplitPath("login.ts")
		assert.Empty(t, dirs)
		assert.Equal(t, "login.ts", file)
	})

	t.Run("empty_string", func(t *testing.T) {
		dirs, file := SplitPath("")
		assert.Empty(t, dirs)
		assert.Equal(t, "", file)
	})
}

func TestScoreFilenameTerm(t *testing.T) {
	t.Run("identical_filenames", func(t *testing.T) {
		assert.Equal(t, 50, Score("main.go", "main.go"))
	})

	t.Run("near_miss_gets_partial_credit", func(t *testing.T) {
		// distance 1: 20 - 2*1 = 18
		assert.Equal(t, 18, Score("logn.ts", "login.ts"))
	})

	t.Run("distant_filenames_get_nothing", func(t *testing.T) {
		// partial credit floors at zero rather than going negative
		assert.Equal(t, 0, Score("aaaaaaaaaaaa.go", "zzzz.md"))
	})
}

func TestScoreDirectoryTerm(t *testing.T) {
	t.Run("matching_segments_add_up", func(t *testing.T) {
		// 50 + 10 + 10 = 70, the confidence calibration point
		assert.Equal(t, 70, Score("src/auth/login.ts", "src/auth/login.ts"))
	})

	t.Run("prefix_segment_credit", func(t *testing.T) {
		// 50 + 10 + (5 - 2) = 63
		assert.Equal(t, 63, Score("src/extract/index.ts", "src/extractor/index.ts"))
		assert.Equal(t, 63, Score("src/build/index.ts", "src/builder/index.ts"))
	})

	t.Run("longer_suffix_earns_less_prefix_credit", func(t *testing.T) {
		short := Score("src/extract/index.ts", "src/extractor/index.ts")
		long := Score("src/ex/index.ts", "src/extractor/index.ts")
		assert.Greater(t, short, long)
	})

	t.Run("specific_segment_mismatch_weighs_heavily", func(t *testing.T) {
		// extractor vs generator: distance 4 at the most specific segment,
		// 50 + 10 - 4*4 = 44
		assert.Equal(t, 44, Score("src/extractor/index.ts", "src/generator/index.ts"))
	})

	t.Run("only_deepest_mismatch_weighted", func(t *testing.T) {
		// x/y at depth 0 (distance 1) costs plain distance because the
		// deeper extractor/generator mismatch is the more specific one:
		// 50 - 1 - 4*4 = 33
		assert.Equal(t, 33, Score("x/extractor/index.ts", "y/generator/index.ts"))
	})
}

func TestScoreDepthPenalty(t *testing.T) {
	t.Run("applied_once_per_level", func(t *testing.T) {
		// 50 - 5*1 vs 50 - 5*2
		assert.Equal(t, 45, Score("a/file.ts", "file.ts"))
		assert.Equal(t, 40, Score("a/b/file.ts", "file.ts"))
	})

	t.Run("symmetric_in_direction", func(t *testing.T) {
		assert.Equal(t, Score("a/file.ts", "file.ts"), Score("file.ts", "a/file.ts"))
	})
}

func TestScoreMonotonicity(t *testing.T) {
	// For a fixed filename, a candidate whose directory is a strict prefix
	// match must outrank one requiring a full-segment substitution.
	query := "src/extract/index.ts"
	prefix := Score(query, "src/extractor/index.ts")
	substitution := Score(query, "src/parser/index.ts")
	assert.Greater(t, prefix, substitution)
}
