// Package scheduler runs the fixed-size worker pool: a dispatcher strides
// the target list across workers, and a single collector drains the shared
// result channel until every worker is done.
package scheduler

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/hamed0406/webstatus/internal/domain"
	"github.com/hamed0406/webstatus/internal/monitoring"
	"github.com/hamed0406/webstatus/internal/probe"
)

type Dispatcher struct {
	Logger  *zap.Logger
	Checker probe.Checker
	Metrics *monitoring.Metrics
	Workers int
}

func NewDispatcher(logger *zap.Logger, checker probe.Checker, metrics *monitoring.Metrics, workers int) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{
		Logger:  logger,
		Checker: checker,
		Metrics: metrics,
		Workers: workers,
	}
}

// Run checks every URL and returns one Record per target, in completion
// order across workers. It blocks until every target reaches a terminal
// outcome; there is no run-level deadline and no mid-flight cancellation,
// the only timeout is the per-request one inside the checker.
func (d *Dispatcher) Run(ctx context.Context, urls []string) ([]domain.Record, error) {
	// A pool of zero workers would never close the channel and the
	// collector below would block forever.
	if d.Workers < 1 {
		return nil, fmt.Errorf("worker count must be at least 1, got %d", d.Workers)
	}

	results := make(chan domain.Record)
	var wg sync.WaitGroup

	for i := 0; i < d.Workers; i++ {
		w := &worker{
			id:      i,
			workers: d.Workers,
			checker: d.Checker,
			logger:  d.Logger,
			metrics: d.Metrics,
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.run(ctx, urls, results)
		}()
	}

	// Close the channel once every sender is released; this is the
	// collector's only completion signal.
	go func() {
		wg.Wait()
		close(results)
	}()

	collected := make([]domain.Record, 0, len(urls))
	for rec := range results {
		collected = append(collected, rec)
	}

	d.Logger.Info("run_complete",
		zap.Int("targets", len(urls)),
		zap.Int("workers", d.Workers),
		zap.Int("records", len(collected)),
	)
	return collected, nil
}
