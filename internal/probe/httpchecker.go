package probe

import (
	"context"
	"net/http"
	"time"
)

// HTTPChecker probes a URL with one GET request. The shared Client is safe
// for concurrent use by every worker; its Timeout bounds each attempt.
type HTTPChecker struct {
	Client *http.Client
}

func NewHTTPChecker(timeout time.Duration) *HTTPChecker {
	return &HTTPChecker{
		Client: &http.Client{Timeout: timeout},
	}
}

func (h *HTTPChecker) Check(ctx context.Context, target string) AttemptResult {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return AttemptResult{Message: err.Error()}
	}

	resp, err := h.Client.Do(req)
	if err != nil {
		return AttemptResult{Message: err.Error()}
	}
	defer resp.Body.Close()

	// Any response counts, 4xx/5xx included: only transport completion
	// is judged here.
	return AttemptResult{StatusCode: resp.StatusCode}
}
