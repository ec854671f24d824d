// Package report writes the status.json artifact.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/hamed0406/webstatus/internal/domain"
)

// Entry is one element of the output array. Status is either the numeric
// status code as text or the error message; ResponseTime is the cumulative
// elapsed time truncated to whole seconds.
type Entry struct {
	URL          string `json:"url"`
	Status       string `json:"status"`
	ResponseTime int64  `json:"response_time"`
	Timestamp    string `json:"timestamp"`
}

func toEntry(r domain.Record) Entry {
	return Entry{
		URL:          r.URL,
		Status:       r.Outcome.Status(),
		ResponseTime: int64(r.Elapsed / time.Second),
		Timestamp:    r.Timestamp.Format(time.RFC3339),
	}
}

// Write serializes the records to path as a JSON array in the order given,
// which is the collector's arrival order.
func Write(path string, records []domain.Record) error {
	entries := make([]Entry, 0, len(records))
	for _, r := range records {
		entries = append(entries, toEntry(r))
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
