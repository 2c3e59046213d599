// Package parallel provides helpers for running a loop body concurrently
// and for shuffling several slices with one shared permutation.
package parallel

import (
	"context"
	"errors"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/malywonsz/mpu/pkg/datastructures"
)

// ErrLengthMismatch indicates slices that were expected to have equal length.
var ErrLengthMismatch = errors.New("slices have different lengths")

// defaultWorkers bounds concurrency when the caller passes workers <= 0.
const defaultWorkers = 100

// ForEach applies fn to every input concurrently, with at most workers
// goroutines in flight, and returns the results in input order. The first
// error cancels the remaining work via the group context and is returned.
func ForEach[In, Out any](ctx context.Context, workers int, inputs []In, fn func(context.Context, In) (Out, error)) ([]Out, error) {
	if workers <= 0 {
		workers = defaultWorkers
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	results := make([]Out, len(inputs))
	for i, input := range inputs {
		i, input := i, input
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out, err := fn(ctx, input)
			if err != nil {
				return err
			}
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// ConsistentShuffle shuffles several equal-length slices with the same
// permutation, so that elements at matching positions stay aligned. The
// inputs are not modified; the shuffled copies are returned in input
// order.
func ConsistentShuffle[T any](rng *rand.Rand, lists ...[]T) ([][]T, error) {
	if len(lists) == 0 {
		return nil, nil
	}
	n := len(lists[0])
	for _, list := range lists[1:] {
		if len(list) != n {
			return nil, ErrLengthMismatch
		}
	}

	perm := rng.Perm(n)
	shuffled := make([][]T, len(lists))
	for i, list := range lists {
		picked, err := datastructures.NewEList(list).GetMany(perm)
		if err != nil {
			return nil, err
		}
		shuffled[i] = picked.Values()
	}
	return shuffled, nil
}
