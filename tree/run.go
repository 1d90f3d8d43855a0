package tree

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// RunWorkers runs rollout repeatedly on every worker in workers,
// concurrently, until ctx is canceled or any single call returns an
// error. The first error cancels ctx for every other worker and is
// returned once all of them have stopped.
func RunWorkers(ctx context.Context, workers []*Worker, rollout func(ctx context.Context, w *Worker) error) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, w := range workers {
		w := w
		g.Go(func() error {
			for ctx.Err() == nil {
				if err := rollout(ctx, w); err != nil {
					return err
				}
			}
			return ctx.Err()
		})
	}
	return g.Wait()
}
