package scoring

import (
	"context"
	"fmt"

	"github.com/Techascendconsulting/stakeholder-v1-sub011/internal/coverage"
	"github.com/Techascendconsulting/stakeholder-v1-sub011/internal/types"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds ScoreAll when the caller passes 0
const DefaultConcurrency = 4

// Item is one transcript in a batch. A nil Independence falls back to Options.Independence.
type Item struct {
	Input        coverage.Input
	Independence map[string]float64
}

// ScoreAll scores items in parallel. Results keep the order of items. The
// first failure cancels the remaining work and is returned with its index.
func ScoreAll(ctx context.Context, items []Item, opts Options, concurrency int) ([]*types.ScoringOutput, error) {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	results := make([]*types.ScoringOutput, len(items))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i := range items {
		i := i
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}

			itemOpts := opts
			if items[i].Independence != nil {
				itemOpts.Independence = items[i].Independence
			}
			out, err := ScoreMeeting(items[i].Input, itemOpts)
			if err != nil {
				return fmt.Errorf("item %d: %w", i, err)
			}
			// each goroutine owns its slot
			results[i] = out
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
