package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nao1215/datecheck/internal/config"
	"github.com/nao1215/datecheck/internal/staleness"
)

// NewRootCmd creates the root command for datecheck.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "datecheck <root-dir>",
		Short: "Find stale \"as of <Month> <Year>\" dates in Markdown docs",
		Long: `datecheck scans every .md file under a directory for phrases such as
"As of July 2022" and lists the ones that are at least --threshold months
older than the current month, grouped by file and line.

The report is a Markdown checklist meant to be pasted into a tracking issue.
When nothing is stale the output is the single word "empty", so a CI job can
decide whether to open an issue.

Examples:
  # Check the docs directory against the current month
  datecheck docs

  # Check against a fixed month
  datecheck --month 2021-07 docs

  # Only report dates older than a year, as JSON
  datecheck --threshold 12 --format json docs`,
		Version:       getVersion(),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runTriageCmd,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().Bool("log-json", false, "Write logs as JSON")

	cmd.Flags().IntP("threshold", "t", staleness.DefaultThreshold,
		"Minimum age in months for a date to be reported")
	cmd.Flags().StringP("format", "f", config.DefaultFormat,
		"Report format: markdown, json, yaml or text")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")
	cmd.Flags().StringP("month", "m", "",
		"Reference month in YYYY-MM form (default: current month)")

	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
