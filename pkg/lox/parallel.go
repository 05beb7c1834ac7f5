package lox

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ParallelMapErr runs iteratee over the collection with at most limit
// goroutines. Results keep the input order. The first error cancels
// the context passed to the remaining calls; when several items fail,
// the error of the item with the lowest index is returned.
func ParallelMapErr[T, R any](
	ctx context.Context,
	limit int,
	collection []T,
	iteratee func(ctx context.Context, item T, index int) (R, error),
) ([]R, error) {
	result := make([]R, len(collection))
	errs := make([]error, len(collection))

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, item := range collection {
		if gctx.Err() != nil {
			break
		}

		// Items start in index order and a started item always runs, so
		// every item below a failed one has reported its own result.
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			r, err := iteratee(gctx, item, i)
			if err != nil {
				errs[i] = err
				return err
			}

			result[i] = r

			return nil
		})
	}

	waitErr := g.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	if waitErr != nil {
		return nil, waitErr
	}

	// The parent may be canceled before any task was started.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
