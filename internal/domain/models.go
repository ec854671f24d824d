package domain

import (
	"strconv"
	"time"
)

// Outcome is the terminal classification of one checked URL.
//
// StatusCode is set when any HTTP response was received; the status class
// does not matter at this layer, a 500 is still a completed check. Error
// holds the last attempt's transport error when no attempt got a response.
type Outcome struct {
	StatusCode int    `json:"status_code,omitempty"`
	Error      string `json:"error,omitempty"`
}

// Responded reports whether the check completed at the transport level.
func (o Outcome) Responded() bool { return o.StatusCode != 0 }

// Status renders the outcome the way status.json expects it: the numeric
// status code as text, or the error message.
func (o Outcome) Status() string {
	if o.Responded() {
		return strconv.Itoa(o.StatusCode)
	}
	return o.Error
}

// Record is the final result for one target. Elapsed spans every attempt,
// from the first request's start to the terminal attempt's completion;
// Timestamp is taken when the terminal state is reached.
type Record struct {
	URL       string        `json:"url"`
	Outcome   Outcome       `json:"outcome"`
	Elapsed   time.Duration `json:"elapsed"`
	Timestamp time.Time     `json:"timestamp"`
}
