package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/hamed0406/webstatus/internal/domain"
	"github.com/hamed0406/webstatus/internal/monitoring"
	"github.com/hamed0406/webstatus/internal/probe"
)

// worker processes its strided share of the target list in ascending
// index order and emits one Record per target on the shared channel.
type worker struct {
	id      int
	workers int
	checker probe.Checker
	logger  *zap.Logger
	metrics *monitoring.Metrics
}

func (w *worker) run(ctx context.Context, urls []string, out chan<- domain.Record) {
	for _, j := range Assignment(w.id, w.workers, len(urls)) {
		out <- w.checkOne(ctx, urls[j])
	}
}

func (w *worker) checkOne(ctx context.Context, url string) domain.Record {
	start := time.Now()
	res := w.checker.Check(ctx, url)
	elapsed := time.Since(start)

	rec := domain.Record{
		URL:       url,
		Elapsed:   elapsed,
		Timestamp: time.Now().UTC(),
	}
	if res.Responded() {
		rec.Outcome = domain.Outcome{StatusCode: res.StatusCode}
	} else {
		rec.Outcome = domain.Outcome{Error: res.Message}
	}

	w.metrics.ObserveCheck(res.Responded(), elapsed.Seconds())
	if res.Attempts > 1 {
		w.metrics.AddRetries(res.Attempts - 1)
	}

	w.logger.Debug("target_checked",
		zap.Int("worker", w.id),
		zap.String("url", url),
		zap.Int("status", rec.Outcome.StatusCode),
		zap.String("error", rec.Outcome.Error),
		zap.Int("attempts", res.Attempts),
		zap.Duration("elapsed", elapsed),
	)
	return rec
}
