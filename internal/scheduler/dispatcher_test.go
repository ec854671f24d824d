package scheduler

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/hamed0406/webstatus/internal/probe"
)

// scriptedChecker returns a canned result per URL and tolerates
// concurrent calls from many workers.
type scriptedChecker struct {
	mu      sync.Mutex
	byURL   map[string]probe.AttemptResult
	calls   map[string]int
	latency time.Duration
}

func (s *scriptedChecker) Check(ctx context.Context, target string) probe.AttemptResult {
	s.mu.Lock()
	if s.calls == nil {
		s.calls = make(map[string]int)
	}
	s.calls[target]++
	res, ok := s.byURL[target]
	s.mu.Unlock()

	if s.latency > 0 {
		time.Sleep(s.latency)
	}
	if !ok {
		return probe.AttemptResult{StatusCode: 200}
	}
	return res
}

func TestDispatcher_OneTargetOneWorker(t *testing.T) {
	chk := &scriptedChecker{byURL: map[string]probe.AttemptResult{
		"https://ok.test": {StatusCode: 200},
	}}
	d := NewDispatcher(nil, chk, nil, 1)
	recs, err := d.Run(context.Background(), []string{"https://ok.test"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("want 1 record, got %d", len(recs))
	}
	r := recs[0]
	if r.URL != "https://ok.test" || r.Outcome.StatusCode != 200 {
		t.Fatalf("unexpected record %+v", r)
	}
	if r.Timestamp.IsZero() {
		t.Fatal("timestamp must be set at terminal state")
	}
}

func TestDispatcher_AllTargetsCollectedOnce(t *testing.T) {
	var urls []string
	for i := 0; i < 25; i++ {
		urls = append(urls, fmt.Sprintf("https://t%02d.test", i))
	}
	for _, workers := range []int{1, 2, 3, 7, 25, 40} {
		chk := &scriptedChecker{latency: time.Millisecond}
		d := NewDispatcher(nil, chk, nil, workers)
		recs, err := d.Run(context.Background(), urls)
		if err != nil {
			t.Fatalf("workers=%d: %v", workers, err)
		}
		if len(recs) != len(urls) {
			t.Fatalf("workers=%d: want %d records, got %d", workers, len(urls), len(recs))
		}
		seen := make(map[string]int)
		for _, r := range recs {
			seen[r.URL]++
		}
		for _, u := range urls {
			if seen[u] != 1 {
				t.Fatalf("workers=%d: url %s collected %d times", workers, u, seen[u])
			}
		}
	}
}

func TestDispatcher_FiveTargetsTwoWorkers(t *testing.T) {
	urls := []string{"https://a.test", "https://b.test", "https://c.test", "https://d.test", "https://e.test"}
	chk := &scriptedChecker{byURL: map[string]probe.AttemptResult{
		"https://c.test": {Message: "dial tcp: connection refused"},
	}}
	d := NewDispatcher(nil, chk, nil, 2)
	recs, err := d.Run(context.Background(), urls)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(recs) != 5 {
		t.Fatalf("want 5 records regardless of completion order, got %d", len(recs))
	}
	for _, r := range recs {
		if r.URL == "https://c.test" {
			if r.Outcome.Responded() {
				t.Fatalf("c.test should have failed, got %+v", r.Outcome)
			}
			if r.Outcome.Error != "dial tcp: connection refused" {
				t.Fatalf("failure must carry the error description, got %q", r.Outcome.Error)
			}
		} else if r.Outcome.StatusCode != 200 {
			t.Fatalf("%s should have responded 200, got %+v", r.URL, r.Outcome)
		}
	}
}

func TestDispatcher_ZeroWorkersRejected(t *testing.T) {
	d := NewDispatcher(nil, &scriptedChecker{}, nil, 0)
	done := make(chan struct{})
	var runErr error
	go func() {
		_, runErr = d.Run(context.Background(), []string{"https://x.test"})
		close(done)
	}()
	select {
	case <-done:
		if runErr == nil {
			t.Fatal("workers=0 must error instead of hanging the collector")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run blocked with zero workers")
	}
}

func TestDispatcher_ElapsedCoversRetries(t *testing.T) {
	const perAttempt = 20 * time.Millisecond
	inner := &scriptedChecker{
		byURL:   map[string]probe.AttemptResult{"https://flaky.test": {Message: "reset"}},
		latency: perAttempt,
	}
	// two scripted failures, then the checker map keeps failing; use the
	// retry decorator so three attempts happen in total
	rc := &probe.RetryChecker{Inner: inner, Retries: 2}
	d := NewDispatcher(nil, rc, nil, 1)
	recs, err := d.Run(context.Background(), []string{"https://flaky.test"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := recs[0].Elapsed; got < 3*perAttempt {
		t.Fatalf("elapsed must be cumulative across attempts: got %s, want >= %s", got, 3*perAttempt)
	}
	inner.mu.Lock()
	calls := inner.calls["https://flaky.test"]
	inner.mu.Unlock()
	if calls != 3 {
		t.Fatalf("want 3 attempts, got %d", calls)
	}
}

func TestDispatcher_EmptyTargetSet(t *testing.T) {
	d := NewDispatcher(nil, &scriptedChecker{}, nil, 4)
	recs, err := d.Run(context.Background(), nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(recs) != 0 {
		t.Fatalf("want no records, got %d", len(recs))
	}
}
