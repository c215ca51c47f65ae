// Package batch sequences classification across many cases with per-case
// isolation: one case's failure never drops or corrupts another's result.
package batch

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/clientops/auditor/internal/cases"
	"github.com/clientops/auditor/internal/classifier"
	"github.com/clientops/auditor/internal/workflow"
)

// Progress is invoked as the batch advances with the number of cases
// handled so far and the batch total. The completed count is monotonically
// increasing regardless of worker completion order.
type Progress func(completed, total int)

// Runner processes an ordered sequence of case records into an equal-length
// ordered sequence of classification results.
type Runner struct {
	rt      *workflow.Runtime
	workers int
	logger  *slog.Logger
}

// New creates a Runner. A worker count of one processes cases sequentially,
// keeping a single oracle call in flight; higher counts classify cases
// through a bounded pool while preserving input ordering in the output.
func New(rt *workflow.Runtime, workers int, logger *slog.Logger) *Runner {
	if workers < 1 {
		workers = 1
	}
	return &Runner{rt: rt, workers: workers, logger: logger}
}

// Run classifies every record and returns the results in input order.
// Each record yields exactly one result: a workflow error or panic becomes
// an explicit error-state result rather than a dropped case. On context
// cancellation Run stops issuing new oracle calls and returns the results
// of the cases already completed, in input order.
func (r *Runner) Run(ctx context.Context, recs []cases.Record, progress Progress) []classifier.Result {
	if r.workers == 1 {
		return r.runSequential(ctx, recs, progress)
	}
	return r.runParallel(ctx, recs, progress)
}

func (r *Runner) runSequential(ctx context.Context, recs []cases.Record, progress Progress) []classifier.Result {
	results := make([]classifier.Result, 0, len(recs))

	for i, rec := range recs {
		if ctx.Err() != nil {
			r.logger.Warn(
				"batch interrupted",
				"completed", len(results),
				"total", len(recs),
			)
			return results
		}

		results = append(results, r.process(ctx, rec))

		if progress != nil {
			progress(i+1, len(recs))
		}
	}

	return results
}

func (r *Runner) runParallel(ctx context.Context, recs []cases.Record, progress Progress) []classifier.Result {
	results := make([]classifier.Result, len(recs))
	done := make([]bool, len(recs))

	var mu sync.Mutex
	completed := 0

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i, rec := range recs {
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}

			res := r.process(gctx, rec)

			mu.Lock()
			results[i] = res
			done[i] = true
			completed++
			if progress != nil {
				progress(completed, len(recs))
			}
			mu.Unlock()

			return nil
		})
	}

	// Workers never return errors; Wait only synchronizes completion.
	_ = g.Wait()

	if ctx.Err() != nil {
		kept := make([]classifier.Result, 0, len(recs))
		for i := range results {
			if done[i] {
				kept = append(kept, results[i])
			}
		}
		r.logger.Warn(
			"batch interrupted",
			"completed", len(kept),
			"total", len(recs),
		)
		return kept
	}

	return results
}

// process runs one case through the workflow, converting any error or panic
// into an error-state result so the case still appears in the batch output.
func (r *Runner) process(ctx context.Context, rec cases.Record) (res classifier.Result) {
	defer func() {
		if p := recover(); p != nil {
			r.logger.Error(
				"case processing panicked",
				"case", rec.CaseName,
				"panic", p,
			)
			res = classifier.ErrorResult(rec, fmt.Errorf("case processing panic: %v", p))
		}
	}()

	out, err := workflow.Execute(ctx, r.rt, rec)
	if err != nil {
		if ctx.Err() != nil {
			// Interrupted mid-case: surface the interruption as an explicit
			// error result rather than a silent drop.
			return classifier.ErrorResult(rec, ctx.Err())
		}
		r.logger.Error(
			"case processing failed",
			"case", rec.CaseName,
			"error", err,
		)
		return classifier.ErrorResult(rec, err)
	}

	return *out
}
