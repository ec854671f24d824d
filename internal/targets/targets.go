// Package targets builds the immutable URL list a run operates on.
package targets

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LoadFile reads a newline-delimited URL list. Surrounding whitespace is
// trimmed and blank lines are skipped.
func LoadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read url list: %w", err)
	}
	defer f.Close()

	var urls []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		urls = append(urls, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read url list: %w", err)
	}
	return urls, nil
}

// Build merges command-line URLs with the optional file list: args first,
// then file entries in file order. The returned slice is treated as
// read-only for the rest of the run.
func Build(args []string, file string) ([]string, error) {
	out := make([]string, 0, len(args))
	out = append(out, args...)
	if file != "" {
		fromFile, err := LoadFile(file)
		if err != nil {
			return nil, err
		}
		out = append(out, fromFile...)
	}
	return out, nil
}
