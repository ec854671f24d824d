package config

import (
	"errors"
	"fmt"
	"runtime"
	"time"

	"go.uber.org/multierr"
)

type Config struct {
	File        string        // newline-delimited URL list; empty means args only
	URLs        []string      // literal URLs from the command line
	Workers     int           // fixed worker pool size
	Timeout     time.Duration // per-request timeout
	Retries     int           // additional attempts after the first
	OutPath     string        // result file, e.g. "status.json"
	LogDir      string        // logs directory
	MetricsAddr string        // optional debug listener, e.g. "127.0.0.1:9100"; empty disables
}

// Default returns the configuration used when a flag is not given.
// Worker count follows the host's available parallelism.
func Default() Config {
	return Config{
		Workers: runtime.NumCPU(),
		Timeout: 5 * time.Second,
		Retries: 3,
		OutPath: "status.json",
		LogDir:  "logs",
	}
}

// Validate reports every configuration problem at once rather than the
// first one hit. A zero worker count is rejected here: spawning no workers
// would leave the result channel open and the collector blocked forever.
func (c Config) Validate() error {
	var err error
	if c.File == "" && len(c.URLs) == 0 {
		err = multierr.Append(err, errors.New("specify --file <path> or one or more URLs"))
	}
	if c.Workers < 1 {
		err = multierr.Append(err, fmt.Errorf("--workers must be at least 1, got %d", c.Workers))
	}
	if c.Timeout <= 0 {
		err = multierr.Append(err, fmt.Errorf("--timeout must be positive, got %s", c.Timeout))
	}
	if c.Retries < 0 {
		err = multierr.Append(err, fmt.Errorf("--retries must not be negative, got %d", c.Retries))
	}
	if c.OutPath == "" {
		err = multierr.Append(err, errors.New("--out must not be empty"))
	}
	return err
}
