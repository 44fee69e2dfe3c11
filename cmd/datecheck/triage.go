package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nao1215/datecheck/internal/clock"
	"github.com/nao1215/datecheck/internal/config"
	applog "github.com/nao1215/datecheck/internal/log"
	"github.com/nao1215/datecheck/internal/model"
	"github.com/nao1215/datecheck/internal/pipeline"
	"github.com/nao1215/datecheck/internal/report"
	"github.com/nao1215/datecheck/internal/source"
)

// runTriageCmd is the RunE of the root command.
func runTriageCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := applog.New(cmd.ErrOrStderr(), cfg.Verbose, cfg.JSONLog)

	var clk clock.Clock = clock.System{}
	if cfg.Reference != nil {
		clk = clock.Fixed(*cfg.Reference)
	}

	return runTriage(cmd.Context(), cfg, clk, cmd.OutOrStdout(), logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from command flags.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	if len(args) > 0 {
		cfg.Root = args[0]
	}

	cfg.Verbose = getVerboseFlag(cmd)

	var err error

	cfg.JSONLog, err = cmd.Flags().GetBool("log-json")
	if err != nil {
		return nil, err
	}

	cfg.Threshold, err = cmd.Flags().GetInt("threshold")
	if err != nil {
		return nil, err
	}

	cfg.Format, err = cmd.Flags().GetString("format")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	month, err := cmd.Flags().GetString("month")
	if err != nil {
		return nil, err
	}
	if month != "" {
		reference, err := model.ParseYearMonth(month)
		if err != nil {
			return nil, fmt.Errorf("invalid --month: %w", err)
		}
		cfg.Reference = &reference
	}

	return cfg, nil
}

// runTriage scans cfg.Root and writes the report for the stale dates.
// Nothing is written when any step fails.
func runTriage(ctx context.Context, cfg *config.Config, clk clock.Clock, stdout io.Writer, logger *slog.Logger) error {
	src, err := source.NewDir(cfg.Root)
	if err != nil {
		return err
	}

	reference := clk.CurrentMonth()
	logger.Debug("starting triage",
		"root", cfg.Root,
		"reference", reference.String(),
		"threshold", cfg.Threshold,
	)

	triage := model.NewTriage(cfg.Root, reference, cfg.Threshold)
	p := pipeline.DefaultPipeline(src, pipeline.WithLogger(logger))
	if err := p.Execute(ctx, triage); err != nil {
		return err
	}

	logger.Debug("triage completed",
		"documents", len(triage.Paths),
		"found", triage.Found.AnnotationCount(),
		"stale", triage.Stale.AnnotationCount(),
	)

	return outputReport(cfg, triage, stdout)
}

// outputReport renders the triage and writes it to cfg.ReportFile,
// or to stdout when no file is configured.
func outputReport(cfg *config.Config, triage *model.Triage, stdout io.Writer) error {
	var buf bytes.Buffer
	writer, err := report.NewWriter(cfg.Format, &buf)
	if err != nil {
		return err
	}
	if _, err := writer.Write(triage); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	if cfg.ReportFile == "" {
		_, err := buf.WriteTo(stdout)
		return err
	}

	// Create directories if they don't exist
	dir := filepath.Dir(cfg.ReportFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if _, err := buf.WriteTo(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return f.Close()
}
