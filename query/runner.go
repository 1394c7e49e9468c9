// SPDX-License-Identifier: MIT

package query

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/umarhussain15/distributed-tracing-graph/core"
)

// DefaultWorkers is the number of queries a Runner executes at once.
const DefaultWorkers = 4

// Runner executes batteries against a graph.
type Runner struct {
	workers int
	logger  *slog.Logger
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithWorkers bounds concurrent queries. n < 1 panics.
func WithWorkers(n int) RunnerOption {
	if n < 1 {
		panic(fmt.Sprintf("query: workers must be positive, got %d", n))
	}

	return func(r *Runner) { r.workers = n }
}

// WithLogger sets the logger for per-query debug records. nil is ignored.
func WithLogger(l *slog.Logger) RunnerOption {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRunner returns a Runner with DefaultWorkers and a discarding logger.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		workers: DefaultWorkers,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Run executes every query against g and returns results in battery order.
//
// Per-query failures (unknown node, invalid parameters) are kept in
// Result.Err and do not stop the battery. Only cancellation of ctx aborts
// the run; the partial results are returned with the context error.
func (r *Runner) Run(ctx context.Context, g *core.Graph, queries []Query) ([]Result, error) {
	if g == nil {
		return nil, core.ErrNilGraph
	}

	results := make([]Result, len(queries))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(r.workers)

	for i, q := range queries {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = Result{Query: q, Err: err}
				return err
			}

			began := time.Now()
			res := q.Execute(ctx, g)
			results[i] = res

			if res.Err != nil {
				if errors.Is(res.Err, context.Canceled) || errors.Is(res.Err, context.DeadlineExceeded) {
					return res.Err
				}
				r.logger.Warn("query failed", "index", i, "query", q.Label(), "err", res.Err)
				return nil
			}
			r.logger.Debug("query done",
				"index", i,
				"query", q.Label(),
				"result", res.String(),
				"elapsed", time.Since(began),
			)

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return results, fmt.Errorf("query: run battery: %w", err)
	}

	return results, nil
}

// Render writes one line per result, in order.
func Render(w io.Writer, results []Result) error {
	for _, res := range results {
		if _, err := fmt.Fprintln(w, res.String()); err != nil {
			return err
		}
	}

	return nil
}
