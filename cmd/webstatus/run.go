package main

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hamed0406/webstatus/internal/config"
	"github.com/hamed0406/webstatus/internal/httpapi"
	"github.com/hamed0406/webstatus/internal/logging"
	"github.com/hamed0406/webstatus/internal/monitoring"
	"github.com/hamed0406/webstatus/internal/probe"
	"github.com/hamed0406/webstatus/internal/report"
	"github.com/hamed0406/webstatus/internal/scheduler"
	"github.com/hamed0406/webstatus/internal/targets"
)

var (
	flagFile        string
	flagWorkers     uint
	flagTimeout     uint
	flagRetries     uint
	flagOut         string
	flagLogDir      string
	flagMetricsAddr string
)

func init() {
	defaults := config.Default()
	f := rootCmd.Flags()
	f.StringVar(&flagFile, "file", "", "path to a newline-delimited URL list")
	f.UintVar(&flagWorkers, "workers", uint(defaults.Workers), "worker pool size")
	f.UintVar(&flagTimeout, "timeout", uint(defaults.Timeout/time.Second), "per-request timeout in seconds")
	f.UintVar(&flagRetries, "retries", uint(defaults.Retries), "additional attempts after a failed request")
	f.StringVar(&flagOut, "out", defaults.OutPath, "output file")
	f.StringVar(&flagLogDir, "log-dir", defaults.LogDir, "logs directory")
	f.StringVar(&flagMetricsAddr, "metrics-addr", "", "serve /metrics and /healthz on this address while running")
}

func configFromFlags(args []string) config.Config {
	cfg := config.Default()
	cfg.File = flagFile
	cfg.URLs = args
	cfg.Workers = int(flagWorkers)
	cfg.Timeout = time.Duration(flagTimeout) * time.Second
	cfg.Retries = int(flagRetries)
	cfg.OutPath = flagOut
	cfg.LogDir = flagLogDir
	cfg.MetricsAddr = flagMetricsAddr
	return cfg
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg := configFromFlags(args)
	if err := cfg.Validate(); err != nil {
		return err
	}

	urls, err := targets.Build(cfg.URLs, cfg.File)
	if err != nil {
		return err
	}

	logger, err := logging.NewLogger(cfg.LogDir)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer logger.Sync()
	logger = logger.With(zap.String("run_id", uuid.NewString()))

	metrics := monitoring.NewMetrics(prometheus.DefaultRegisterer)
	if cfg.MetricsAddr != "" {
		go httpapi.NewServer(logger).Serve(cfg.MetricsAddr)
	}

	checker := &probe.RetryChecker{
		Inner:   probe.NewHTTPChecker(cfg.Timeout),
		Retries: cfg.Retries,
	}

	logger.Info("run_start",
		zap.Int("targets", len(urls)),
		zap.Int("workers", cfg.Workers),
		zap.Duration("timeout", cfg.Timeout),
		zap.Int("retries", cfg.Retries),
	)

	d := scheduler.NewDispatcher(logger, checker, metrics, cfg.Workers)
	records, err := d.Run(context.Background(), urls)
	if err != nil {
		return err
	}

	if err := report.Write(cfg.OutPath, records); err != nil {
		logger.Error("report_write_failed", zap.Error(err))
		return err
	}

	fmt.Printf("Output written to %s\n", cfg.OutPath)
	return nil
}
