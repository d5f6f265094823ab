package metrics

import (
	"fmt"
	"sync/atomic"
)

// ResolutionStats tracks resolution outcomes across the life of a process.
// All counters are atomic; safe for concurrent use without locking.
type ResolutionStats struct {
	exactHits    atomic.Int64
	fuzzyMatches atomic.Int64
	unresolved   atomic.Int64
	batches      atomic.Int64
}

// NewResolutionStats creates a zeroed stats collector.
func NewResolutionStats() *ResolutionStats {
	return &ResolutionStats{}
}

// RecordExact counts an identifier found verbatim in the corpus.
func (s *ResolutionStats) RecordExact() { s.exactHits.Add(1) }

// RecordFuzzy counts an auto-applied fuzzy substitution.
func (s *ResolutionStats) RecordFuzzy() { s.fuzzyMatches.Add(1) }

// RecordUnresolved counts a request that produced no authoritative match.
func (s *ResolutionStats) RecordUnresolved() { s.unresolved.Add(1) }

// RecordBatch counts one completed batch resolution pass.
func (s *ResolutionStats) RecordBatch() { s.batches.Add(1) }

// StatsSnapshot is a point-in-time copy of the counters.
type StatsSnapshot struct {
	ExactHits    int64 `json:"exact_hits"`
	FuzzyMatches int64 `json:"fuzzy_matches"`
	Unresolved   int64 `json:"unresolved"`
	Batches      int64 `json:"batches"`
}

// Snapshot returns the current counter values.
func (s *ResolutionStats) Snapshot() StatsSnapshot {
	return StatsSnapshot{
		ExactHits:    s.exactHits.Load(),
		FuzzyMatches: s.fuzzyMatches.Load(),
		Unresolved:   s.unresolved.Load(),
		Batches:      s.batches.Load(),
	}
}

// String renders a one-line human summary.
func (snap StatsSnapshot) String() string {
	total := snap.ExactHits + snap.FuzzyMatches + snap.Unresolved
	return fmt.Sprintf("requests=%d exact=%d fuzzy=%d unresolved=%d batches=%d",
		total, snap.ExactHits, snap.FuzzyMatches, snap.Unresolved, snap.Batches)
}
