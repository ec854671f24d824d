package probe

import "context"

// AttemptResult is the outcome of a single probe attempt.
//
// StatusCode is set whenever a response was received, whatever the status
// class; 0 means the attempt failed at the transport level (connection
// error, timeout, DNS failure) and Message holds the error description.
// Attempts is how many probes it took to reach this result; a plain
// single-shot checker leaves it at 0 and callers read that as 1.
type AttemptResult struct {
	StatusCode int
	Message    string
	Attempts   int
}

// Responded reports whether the attempt got any HTTP response at all.
func (r AttemptResult) Responded() bool { return r.StatusCode != 0 }

// Checker performs a single check for a given target URL.
type Checker interface {
	Check(ctx context.Context, target string) AttemptResult
}
