package corpus

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	fprerrors "github.com/standardbeagle/fpr/internal/errors"
)

// Scanner builds a corpus from a directory tree. Identifiers are
// slash-delimited paths relative to the root, matching the form callers of
// the resolution engine request.
type Scanner struct {
	root    string
	include []string
	exclude []string
}

// NewScanner creates a scanner for the given root. Empty include patterns
// admit every file; exclude patterns always win over includes. Patterns use
// doublestar globs ("src/**/*.ts").
func NewScanner(root string, include, exclude []string) *Scanner {
	return &Scanner{root: root, include: include, exclude: exclude}
}

// Scan walks the tree and returns the matching identifiers as an in-memory
// corpus. Unreadable entries are skipped rather than failing the scan;
// only a broken root or context cancellation produce an error.
func (s *Scanner) Scan(ctx context.Context) (*Memory, error) {
	corpus := NewMemory()

	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == s.root {
				return err
			}
			return nil // skip unreadable entries, keep walking
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		rel, relErr := filepath.Rel(s.root, path)
		if relErr != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if rel != "." && s.excludedDir(rel) {
				return filepath.SkipDir
			}
			return nil
		}

		if s.Matches(rel) {
			corpus.Add(rel)
		}
		return nil
	})
	if err != nil {
		return nil, fprerrors.NewCorpusError("scan", s.root, err)
	}

	return corpus, nil
}

// Matches reports whether a root-relative slash path passes the scanner's
// include/exclude patterns.
func (s *Scanner) Matches(rel string) bool {
	for _, pattern := range s.exclude {
		if matched, _ := doublestar.Match(pattern, rel); matched {
			return false
		}
	}
	if len(s.include) == 0 {
		return true
	}
	for _, pattern := range s.include {
		if matched, _ := doublestar.Match(pattern, rel); matched {
			return true
		}
	}
	return false
}

// Rel converts an absolute path under the root into a corpus identifier.
// Returns false when the path is outside the root.
func (s *Scanner) Rel(path string) (string, bool) {
	rel, err := filepath.Rel(s.root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", false
	}
	return filepath.ToSlash(rel), true
}

// excludedDir checks a directory against the exclude patterns so excluded
// subtrees are pruned instead of walked.
func (s *Scanner) excludedDir(rel string) bool {
	if base := filepath.Base(rel); base == ".git" {
		return true
	}
	for _, pattern := range s.exclude {
		dirPattern := strings.TrimSuffix(pattern, "/**")
		if matched, _ := doublestar.Match(dirPattern, rel); matched {
			return true
		}
	}
	return false
}
