package pipeline

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/guardline/leads-cli/internal/source"
	"github.com/guardline/leads-cli/internal/store"
)

// snapshotLimit bounds the existing-leads snapshot loaded for deduplication.
const snapshotLimit = 100000

// Summary aggregates the outcome of a batch run.
type Summary struct {
	Sources    int `json:"sources"`
	Failed     int `json:"failed_sources"`
	Found      int `json:"found"`
	Accepted   int `json:"accepted"`
	Rejected   int `json:"rejected"`
	Duplicates int `json:"duplicates"`
}

// RunBatch fetches records from every source concurrently, then runs them
// through the pipeline sequentially against a single existing-leads snapshot.
// Accepted leads join the snapshot immediately, so leads within one run
// deduplicate against each other. A source that fails to fetch is logged and
// skipped; only snapshot loading or storage failures abort the run.
func (p *Pipeline) RunBatch(ctx context.Context, sources []source.Source, concurrency int) (Summary, error) {
	if concurrency <= 0 {
		concurrency = 4
	}

	batches := make([][]source.RawRecord, len(sources))
	var failed int
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, src := range sources {
		g.Go(func() error {
			records, err := src.Fetch(gctx)
			if err != nil {
				zap.L().Error("source fetch failed",
					zap.String("source", src.Name()),
					zap.Error(err),
				)
				mu.Lock()
				failed++
				mu.Unlock()
				return nil
			}
			zap.L().Info("source fetched",
				zap.String("source", src.Name()),
				zap.Int("records", len(records)),
			)
			batches[i] = records
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	existing, _, err := p.store.ListLeads(ctx, store.Filter{Limit: snapshotLimit})
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{Sources: len(sources), Failed: failed}
	for i, src := range sources {
		for _, rec := range batches[i] {
			summary.Found++
			l := Assemble(src.Name(), rec)
			res, err := p.Process(ctx, l, existing)
			if err != nil {
				return summary, err
			}
			switch {
			case res.Accepted:
				summary.Accepted++
				existing = append(existing, res.Lead)
			case res.Duplicate:
				summary.Duplicates++
			default:
				summary.Rejected++
			}
		}
	}

	zap.L().Info("batch run complete",
		zap.Int("sources", summary.Sources),
		zap.Int("failed_sources", summary.Failed),
		zap.Int("found", summary.Found),
		zap.Int("accepted", summary.Accepted),
		zap.Int("rejected", summary.Rejected),
		zap.Int("duplicates", summary.Duplicates),
	)
	return summary, nil
}
