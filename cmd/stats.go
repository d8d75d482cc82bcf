package cmd

import (
	"io"
	"log"

	"github.com/spf13/cobra"

	"github.com/naka-gawa/pypi-stats/internal/config"
	"github.com/naka-gawa/pypi-stats/internal/format"
	"github.com/naka-gawa/pypi-stats/internal/gateway"
	"github.com/naka-gawa/pypi-stats/internal/usecase"
)

// runStats wires the gateways into the reporter and runs one report.
func runStats(cmd *cobra.Command, opts *options, packages []string) error {
	logger := log.New(io.Discard, "", log.LstdFlags) // Default: discard all logs.
	if opts.verbose {
		logger.SetOutput(cmd.ErrOrStderr())
	}

	cfg, err := config.Load(opts.configPath, version)
	if err != nil {
		return err
	}
	// Flags take precedence over the config file.
	cfg.Merge(config.Config{IndexURL: opts.indexURL, StatsURL: opts.statsURL})
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger.Printf("Using index %s and stats API %s\n", cfg.IndexURL, cfg.StatsURL)

	httpClient := gateway.NewHTTPClient(cfg.UserAgent)
	source := usecase.NewPackageSource(func() (gateway.UserLookup, error) {
		index, err := gateway.NewPyPIIndex(cfg.IndexURL, httpClient.Transport, logger)
		if err != nil {
			return nil, err
		}
		return index, nil
	}, logger)
	fetcher := gateway.NewPyPIStatsGateway(cfg.StatsURL, httpClient, logger)
	reporter := usecase.NewReporter(source, fetcher, logger)

	return reporter.Report(cmd.Context(), usecase.Request{
		Users:    opts.users,
		Packages: packages,
		Sort:     opts.sort,
	}, format.New(opts.format, cmd.OutOrStdout()))
}
