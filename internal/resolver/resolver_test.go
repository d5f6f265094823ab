package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/fpr/internal/types"
)

func TestNew(t *testing.T) {
	t.Run("valid_thresholds", func(t *testing.T) {
		r, err := New(types.Thresholds{AutoMatch: 0.8, Suggestion: 0.3})
		require.NoError(t, err)
		assert.Equal(t, 0.8, r.Thresholds().AutoMatch)
		assert.Equal(t, 0.3, r.Thresholds().Suggestion)
	})

	t.Run("rejects_out_of_range", func(t *testing.T) {
		_, err := New(types.Thresholds{AutoMatch: 1.5, Suggestion: 0.4})
		assert.Error(t, err)

		_, err = New(types.Thresholds{AutoMatch: 0.7, Suggestion: -0.1})
		assert.Error(t, err)
	})

	t.Run("rejects_misordered", func(t *testing.T) {
		_, err := New(types.Thresholds{AutoMatch: 0.4, Suggestion: 0.7})
		assert.Error(t, err)

		_, err = New(types.Thresholds{AutoMatch: 0.5, Suggestion: 0.5})
		assert.Error(t, err)
	})
}

func TestResolveIdentity(t *testing.T) {
	r := NewDefault()
	corpus := []string{"main.ts", "src/auth/login.ts", "src/extractor/index.ts"}

	for _, id := range corpus {
		result := r.Resolve(id, corpus)
		assert.Equal(t, id, result.Matched, "exact member %q must resolve to itself", id)
		assert.Equal(t, 1.0, result.Confidence)
		assert.Empty(t, result.Alternatives)
	}
}

func TestResolveEmptyCorpus(t *testing.T) {
	r := NewDefault()
	result := r.Resolve("src/auth/login.ts", nil)
	assert.Equal(t, "src/auth/login.ts", result.Requested)
	assert.Empty(t, result.Matched)
	assert.Equal(t, 0.0, result.Confidence)
	assert.Empty(t, result.Alternatives)
}

func TestResolveAutoMatch(t *testing.T) {
	r := NewDefault()
	corpus := []string{
		"src/extractor/index.ts",
		"src/api/index.ts",
		"src/cli/index.ts",
	}

	t.Run("missing_suffix_corrected", func(t *testing.T) {
		result := r.Resolve("src/extract/index.ts", corpus)
		assert.Equal(t, "src/extractor/index.ts", result.Matched)
		assert.Equal(t, 0.9, result.Confidence)
	})

	t.Run("alternatives_exclude_the_match", func(t *testing.T) {
		result := r.Resolve("src/extract/index.ts", corpus)
		assert.NotContains(t, result.Alternatives, result.Matched)
		for _, alt := range result.Alternatives {
			assert.Contains(t, corpus, alt)
		}
	})
}

func TestResolveCrossModuleRejection(t *testing.T) {
	// Same filename and same src/ ancestor must not be enough to silently
	// substitute a different module.
	r := NewDefault()
	corpus := []string{
		"src/generator/index.ts",
		"src/api/index.ts",
		"src/cli/index.ts",
	}

	result := r.Resolve("src/extractor/index.ts", corpus)
	assert.Empty(t, result.Matched, "generator must not auto-substitute for extractor")
	assert.Equal(t, 0.63, result.Confidence)
	assert.Less(t, result.Confidence, types.DefaultAutoMatchThreshold)

	// Still worth suggesting, with the would-be match first.
	require.NotEmpty(t, result.Alternatives)
	assert.Equal(t, "src/generator/index.ts", result.Alternatives[0])
}

func TestResolveSuggestionBucket(t *testing.T) {
	r := NewDefault()
	corpus := []string{"src/generator/index.ts"}

	result := r.Resolve("src/extractor/index.ts", corpus)
	assert.Empty(t, result.Matched)
	assert.GreaterOrEqual(t, result.Confidence, types.DefaultSuggestionThreshold)
	assert.Equal(t, []string{"src/generator/index.ts"}, result.Alternatives)
}

func TestResolveBelowSuggestion(t *testing.T) {
	r := NewDefault()
	// Shared filename and ancestor, but build/generator is a distance-9
	// substitution at the module segment: 50 + 10 - 4*9 = 24, confidence 0.34.
	result := r.Resolve("src/build/index.ts", []string{"src/generator/index.ts"})
	assert.Empty(t, result.Matched)
	assert.Empty(t, result.Alternatives)
	assert.Less(t, result.Confidence, types.DefaultSuggestionThreshold)
}

func TestResolveDeterministic(t *testing.T) {
	r := NewDefault()
	corpus := []string{"c/file.ts", "b/file.ts"}

	first := r.Resolve("a/file.ts", corpus)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, r.Resolve("a/file.ts", corpus))
	}
}

func TestResolveCapsAlternatives(t *testing.T) {
	r := NewDefault()
	corpus := []string{
		"src/auth/login.ts",
		"src/auth/logins.ts",
		"src/auth/logint.ts",
		"src/auth/loginx.ts",
		"src/auth/loginy.ts",
		"src/auth/loginz.ts",
	}

	result := r.Resolve("src/auth/logim.ts", corpus)
	assert.LessOrEqual(t, len(result.Alternatives), maxAlternatives)
}
