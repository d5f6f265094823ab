package resolver

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	fprerrors "github.com/standardbeagle/fpr/internal/errors"
	"github.com/standardbeagle/fpr/internal/metrics"
	"github.com/standardbeagle/fpr/internal/types"
)

// Corpus is the set of identifiers known to exist at resolution time.
// Implementations may be backed by memory, the file system, or a remote
// store; List is called once per batch so lookup latency stays out of the
// per-item scoring loop.
type Corpus interface {
	// List returns every identifier in the corpus.
	List(ctx context.Context) ([]string, error)

	// Contains reports whether the identifier exists verbatim.
	Contains(ctx context.Context, id string) (bool, error)
}

// BatchResolver resolves a list of requested identifiers against a corpus in
// one pass. Exact lookups run concurrently; the fuzzy scoring itself is pure
// and synchronous.
type BatchResolver struct {
	corpus   Corpus
	resolver *Resolver
	workers  int
	stats    *metrics.ResolutionStats
}

// NewBatchResolver creates a batch resolver over the given corpus and policy.
func NewBatchResolver(corpus Corpus, resolver *Resolver) *BatchResolver {
	return &BatchResolver{
		corpus:   corpus,
		resolver: resolver,
		workers:  runtime.NumCPU(),
	}
}

// SetWorkers bounds the number of concurrent exact lookups. Values below 1
// are ignored.
func (b *BatchResolver) SetWorkers(n int) {
	if n >= 1 {
		b.workers = n
	}
}

// SetStats attaches a stats collector; outcomes are recorded per request.
func (b *BatchResolver) SetStats(stats *metrics.ResolutionStats) {
	b.stats = stats
}

// ResolveAll resolves every requested identifier independently and returns a
// report with items in request order plus the audit list of fuzzy matches
// that were applied. The corpus is listed once for the whole batch. The only
// error paths are corpus I/O and context cancellation; resolution itself
// never fails.
func (b *BatchResolver) ResolveAll(ctx context.Context, requested []string) (*types.BatchReport, error) {
	corpusIDs, err := b.corpus.List(ctx)
	if err != nil {
		return nil, fprerrors.NewCorpusError("list", "", err)
	}

	exact := make([]bool, len(requested))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.workers)
	for i, id := range requested {
		g.Go(func() error {
			found, err := b.corpus.Contains(gctx, id)
			if err != nil {
				return err
			}
			exact[i] = found
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fprerrors.NewCorpusError("lookup", "", err)
	}

	report := &types.BatchReport{
		Items: make([]types.BatchItem, 0, len(requested)),
	}

	for i, id := range requested {
		if exact[i] {
			report.Items = append(report.Items, types.BatchItem{
				Requested: id,
				Kind:      types.MatchExact,
				Result: types.ResolutionResult{
					Requested:  id,
					Matched:    id,
					Confidence: 1.0,
				},
			})
			b.recordOutcome(types.MatchExact)
			continue
		}

		result := b.resolver.Resolve(id, corpusIDs)
		kind := types.MatchNone
		if result.Matched != "" {
			kind = types.MatchFuzzy
			report.FuzzyMatches = append(report.FuzzyMatches, types.FuzzyMatchRecord{
				Requested:    id,
				Actual:       result.Matched,
				Confidence:   result.Confidence,
				Alternatives: result.Alternatives,
			})
		}
		report.Items = append(report.Items, types.BatchItem{
			Requested: id,
			Kind:      kind,
			Result:    result,
		})
		b.recordOutcome(kind)
	}

	if b.stats != nil {
		b.stats.RecordBatch()
	}
	return report, nil
}

func (b *BatchResolver) recordOutcome(kind types.MatchKind) {
	if b.stats == nil {
		return
	}
	switch kind {
	case types.MatchExact:
		b.stats.RecordExact()
	case types.MatchFuzzy:
		b.stats.RecordFuzzy()
	default:
		b.stats.RecordUnresolved()
	}
}
