package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hamed0406/webstatus/internal/config"
	"github.com/hamed0406/webstatus/internal/targets"
)

// validateCmd checks the configuration and target list without probing
// anything. Useful before pointing a large list at the network.
var validateCmd = &cobra.Command{
	Use:   "validate [flags] [url ...]",
	Short: "Validate configuration and target list without running checks",
	Args:  cobra.ArbitraryArgs,
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
	defaults := config.Default()
	f := validateCmd.Flags()
	f.StringVar(&flagFile, "file", "", "path to a newline-delimited URL list")
	f.UintVar(&flagWorkers, "workers", uint(defaults.Workers), "worker pool size")
	f.UintVar(&flagTimeout, "timeout", uint(defaults.Timeout/time.Second), "per-request timeout in seconds")
	f.UintVar(&flagRetries, "retries", uint(defaults.Retries), "additional attempts after a failed request")
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg := configFromFlags(args)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	urls, err := targets.Build(cfg.URLs, cfg.File)
	if err != nil {
		return err
	}

	fmt.Printf("Configuration is valid.\n")
	fmt.Printf("  Targets: %d (%d from args)\n", len(urls), len(cfg.URLs))
	fmt.Printf("  Workers: %d\n", cfg.Workers)
	fmt.Printf("  Timeout: %s, retries: %d\n", cfg.Timeout, cfg.Retries)
	return nil
}
