// Package batch doubts many statements concurrently.
package batch

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/straja-ai/doubt/internal/doubt"
	"github.com/straja-ai/doubt/internal/engine"
)

// Item is the outcome for one input statement.
type Item struct {
	Index  int           `json:"index" yaml:"index"`
	Result *doubt.Result `json:"result" yaml:"result"`
}

// Runner fans statements out over a bounded number of workers.
type Runner struct {
	doubter engine.Doubter
	workers int
	logger  *zap.Logger
}

// NewRunner builds a runner. workers < 1 means one worker.
func NewRunner(d engine.Doubter, workers int, logger *zap.Logger) *Runner {
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{doubter: d, workers: workers, logger: logger}
}

// Run doubts every statement at depth 0. Results come back in input order.
// The first failure or a cancelled ctx stops the remaining work.
func (r *Runner) Run(ctx context.Context, statements []string) ([]Item, error) {
	items := make([]Item, len(statements))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i, text := range statements {
		if gctx.Err() != nil {
			break
		}
		i, text := i, text
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := r.doubter.Doubt(text, 0)
			if err != nil {
				return fmt.Errorf("statement %d: %w", i, err)
			}
			items[i] = Item{Index: i, Result: res}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.logger.Debug("batch complete",
		zap.Int("statements", len(statements)),
		zap.Int("workers", r.workers))
	return items, nil
}
