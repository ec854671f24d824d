// Package main is the entry point for the webstatus CLI.
//
// webstatus checks a list of URLs concurrently and writes one record per
// target to status.json.
//
// Usage:
//
//	webstatus --file urls.txt
//	webstatus --workers 8 --timeout 3 --retries 1 https://example.com
//	webstatus validate --file urls.txt
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information - set at build time via ldflags.
var (
	version = "dev"
	commit  = "none"
)

var rootCmd = &cobra.Command{
	Use:   "webstatus [flags] [url ...]",
	Short: "Concurrent URL health checker",
	Long: `webstatus probes every given URL with an HTTP GET, retrying on
transport failure, and writes a status.json report.

Targets come from --file (one URL per line) and/or positional arguments.
A fixed pool of workers splits the list; each worker retries failed
requests up to --retries additional times before recording the failure.`,
	Args:          cobra.ArbitraryArgs,
	RunE:          runCheck,
	SilenceUsage:  true,
	SilenceErrors: false,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("webstatus %s (%s)\n", version, commit)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
