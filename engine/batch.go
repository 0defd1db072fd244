package engine

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/optakt/rangelp/position"
)

// Batch evaluates independent parameter sets concurrently, with at most limit
// evaluations in flight. Results keep the order of the input. The first
// failure cancels the remaining evaluations.
func Batch(ctx context.Context, cfg Config, params []position.Params, limit int) ([]Result, error) {

	results := make([]Result, len(params))

	g, gCtx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i := range params {
		i := i
		g.Go(func() error {
			err := gCtx.Err()
			if err != nil {
				return err
			}
			result, err := Compute(cfg, params[i])
			if err != nil {
				return fmt.Errorf("could not compute position %d: %w", i, err)
			}
			results[i] = result
			return nil
		})
	}

	err := g.Wait()
	if err != nil {
		return nil, err
	}

	return results, nil
}
