// Package cmd contains the CLI command for the application,
// built using the Cobra library.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/naka-gawa/pypi-stats/internal/domain"
	"github.com/naka-gawa/pypi-stats/internal/format"
)

// version is set at build time with -ldflags "-X github.com/naka-gawa/pypi-stats/cmd.version=...".
var version = "0.1.0.dev1"

// options holds the parsed command line.
type options struct {
	users      []string
	sort       domain.SortMode
	format     format.Format
	verbose    bool
	configPath string
	indexURL   string
	statsURL   string
}

// NewRootCmd builds the pypi-stats command with fresh flag state.
func NewRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "pypi-stats [flags] [package ...]",
		Short: "Show download stats for PyPI packages",
		Long: `pypi-stats shows recent download counts (last month, week and day) for
PyPI packages from pypistats.org. Packages can be named directly or
collected from the PyPI users who own or maintain them.

When -A/-N or -C/-T are combined, the last one given wins.`,
		Args:         cobra.ArbitraryArgs,
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd, opts, args)
		},
	}
	cmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	flags := cmd.Flags()
	choiceVarP(flags, &opts.sort, domain.SortByName, domain.SortNone, "sort-alpha", "A", "Sort packages alphabetically")
	choiceVarP(flags, &opts.sort, domain.SortByDownloads, domain.SortNone, "sort-num", "N", "Sort packages by downloads, highest first")
	choiceVarP(flags, &opts.format, format.CSV, format.CSV, "csv", "C", "Output CSV")
	choiceVarP(flags, &opts.format, format.Table, format.CSV, "table", "T", "Output an ASCII table")
	flags.StringArrayVarP(&opts.users, "user", "u", nil, "Show packages belonging to the given PyPI user (repeatable)")
	flags.BoolP("version", "V", false, "Show the program version and exit")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose/debug logging")
	flags.StringVar(&opts.configPath, "config", "", "Path to a TOML config file")
	flags.StringVar(&opts.indexURL, "index-url", "", "PyPI XML-RPC endpoint (overrides config)")
	flags.StringVar(&opts.statsURL, "stats-url", "", "pypistats.org API base URL (overrides config)")
	return cmd
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
