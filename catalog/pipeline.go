package catalog

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/Miidoriya/cbr"
	"golang.org/x/net/html"
	"golang.org/x/sync/errgroup"
)

// Progress reports how many rows of an extraction have completed.
type Progress struct {
	Completed int
	Total     int
}

// ProgressFunc is called as rows are extracted. It may be called from
// multiple goroutines.
type ProgressFunc func(Progress)

// Pipeline extracts issue records from rows on a bounded set of workers.
type Pipeline struct {
	Extractor   cbr.IssueExtractor
	Concurrency int // maximum rows in flight; defaults to GOMAXPROCS
	Progress    ProgressFunc
}

// NewPipeline creates a new Pipeline with default concurrency.
func NewPipeline(extractor cbr.IssueExtractor) *Pipeline {
	return &Pipeline{Extractor: extractor}
}

// ExtractAll extracts one record per row, titled title, in row order.
// It returns only after every started extraction has finished. If ctx is
// canceled first, no records are returned.
func (p *Pipeline) ExtractAll(ctx context.Context, rows []*html.Node, title string) ([]cbr.IssueRecord, error) {
	concurrency := p.Concurrency
	if concurrency <= 0 {
		concurrency = runtime.GOMAXPROCS(0)
	}

	var (
		mu        sync.Mutex
		records   = make([]cbr.IssueRecord, len(rows))
		completed atomic.Int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, row := range rows {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			rec := p.Extractor.Extract(row, title)

			mu.Lock()
			records[i] = rec
			mu.Unlock()

			if p.Progress != nil {
				p.Progress(Progress{Completed: int(completed.Add(1)), Total: len(rows)})
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
