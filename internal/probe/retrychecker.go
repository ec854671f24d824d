package probe

import (
	"context"
	"time"
)

// RetryChecker wraps an inner Checker with a bounded retry loop. Retries
// counts additional attempts after the first, so Retries = 0 performs
// exactly one attempt. Retries happen sequentially; Backoff is the pause
// between them and is zero unless a caller opts in.
type RetryChecker struct {
	Inner   Checker
	Retries int
	Backoff time.Duration
}

// Check runs attempts until one gets a response or the budget is spent.
// On exhaustion it returns the most recent attempt's error.
func (r *RetryChecker) Check(ctx context.Context, target string) AttemptResult {
	var last AttemptResult
	for attempt := 0; attempt <= r.Retries; attempt++ {
		if attempt > 0 && r.Backoff > 0 {
			time.Sleep(r.Backoff)
		}
		last = r.Inner.Check(ctx, target)
		last.Attempts = attempt + 1
		if last.Responded() {
			return last
		}
	}
	return last
}
