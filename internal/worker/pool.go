// Package worker runs independent jobs with bounded concurrency.
package worker

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/osse101/HonorBot_Go/internal/logger"
)

// Result pairs a job's output with its error. Results keep input order.
type Result[R any] struct {
	Value R
	Err   error
}

// Pool bounds how many jobs run at once.
type Pool struct {
	limit int
}

// NewPool creates a pool running at most limit jobs concurrently.
func NewPool(limit int) *Pool {
	if limit <= 0 {
		limit = DefaultConcurrency
	}
	return &Pool{limit: limit}
}

// Limit returns the concurrency bound.
func (p *Pool) Limit() int {
	return p.limit
}

// Map applies fn to every item with at most p.Limit() calls in flight and
// returns one Result per item at the item's index. A failing job does not
// cancel the others. Map returns early only if ctx is cancelled, in which
// case items not yet started carry ctx.Err().
func Map[T, R any](ctx context.Context, p *Pool, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))

	g := new(errgroup.Group)
	g.SetLimit(p.limit)

	for i, item := range items {
		if err := ctx.Err(); err != nil {
			for j := i; j < len(items); j++ {
				results[j].Err = err
			}
			break
		}
		g.Go(func() error {
			results[i] = run(ctx, item, fn)
			if results[i].Err != nil {
				logger.FromContext(ctx).Debug(LogMsgWorkerJobFailed, "index", i, "error", results[i].Err)
			}
			return nil
		})
	}

	_ = g.Wait()
	return results
}

func run[T, R any](ctx context.Context, item T, fn func(context.Context, T) (R, error)) (res Result[R]) {
	defer func() {
		if r := recover(); r != nil {
			logger.FromContext(ctx).Error(LogMsgWorkerJobPanicked, "panic", r)
			res.Err = fmt.Errorf("worker job panicked: %v", r)
		}
	}()
	res.Value, res.Err = fn(ctx, item)
	return res
}
