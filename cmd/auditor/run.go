package main

import (
	"fmt"
	"log/slog"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/clientops/auditor/internal/batch"
	"github.com/clientops/auditor/internal/cases"
	"github.com/clientops/auditor/internal/classifier"
	"github.com/clientops/auditor/internal/config"
	"github.com/clientops/auditor/internal/indicators"
	"github.com/clientops/auditor/internal/oracle"
	"github.com/clientops/auditor/internal/report"
	"github.com/clientops/auditor/internal/sources"
	"github.com/clientops/auditor/internal/timeline"
	"github.com/clientops/auditor/internal/workflow"
)

var (
	runOutput  string
	runWorkers int
)

func newRunCmd() *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run <input-dir>",
		Short: "Classify every case file in a directory and write the assessment workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAudit(cmd, args[0])
		},
	}

	runCmd.Flags().StringVarP(&runOutput, "output", "o", "client_assessments.xlsx", "Output workbook path")
	runCmd.Flags().IntVar(&runWorkers, "workers", 0, "Concurrent classification workers (0 uses config)")

	return runCmd
}

func runAudit(cmd *cobra.Command, inputDir string) error {
	ctx := cmd.Context()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	cfg.Sources.Dir = inputDir
	if runWorkers > 0 {
		cfg.Pipeline.Workers = runWorkers
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	logger.Info(
		"auditor starting",
		"version", cfg.Version,
		"env", cfg.Env(),
		"input", inputDir,
		"output", runOutput,
		"workers", cfg.Pipeline.Workers,
	)

	source, err := sources.NewFileSource(cfg.Sources)
	if err != nil {
		return fmt.Errorf("open sources: %w", err)
	}

	records, err := collect(cmd, source, cfg, logger)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("no case files found in %s", inputDir)
	}

	engine, err := indicators.NewEngine(
		indicators.DefaultSpecialLexicon(),
		indicators.DefaultExcessivelySpecialLexicon(),
	)
	if err != nil {
		return fmt.Errorf("compile indicator rules: %w", err)
	}

	rt := &workflow.Runtime{
		Oracle:   oracle.NewAgent(cfg.Agent),
		Engine:   engine,
		Scorer:   timeline.NewScorer(timeline.DefaultLexicon()),
		Pipeline: cfg.Pipeline,
		Logger:   logger,
	}

	runner := batch.New(rt, cfg.Pipeline.Workers, logger)
	results := runner.Run(ctx, records, func(completed, total int) {
		fmt.Fprintf(cmd.OutOrStdout(), "Classified %d/%d cases\n", completed, total)
	})

	if err := ctx.Err(); err != nil {
		logger.Warn("run interrupted", "completed", len(results), "total", len(records))
	}
	if len(results) == 0 {
		return fmt.Errorf("no cases classified")
	}

	if err := report.NewExcel().Render(results, runOutput); err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	printSummary(cmd, results, runOutput)
	return nil
}

// collect reads every case file from the source and extracts its record.
// A file that cannot be read is logged and skipped rather than aborting
// the run.
func collect(
	cmd *cobra.Command,
	source sources.System,
	cfg *config.Config,
	logger *slog.Logger,
) ([]cases.Record, error) {
	ctx := cmd.Context()

	names, err := source.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list case files: %w", err)
	}

	extractor := cases.NewExtractor(timeline.NewSegmenter(cfg.Pipeline.EventBodyLimit))

	records := make([]cases.Record, 0, len(names))
	for _, name := range names {
		raw, err := source.Read(ctx, name)
		if err != nil {
			logger.Warn("skipping unreadable case file", "name", name, "error", err)
			continue
		}
		records = append(records, extractor.Extract(name, raw))
	}

	return records, nil
}

func printSummary(cmd *cobra.Command, results []classifier.Result, output string) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "\nAssessment complete: %d cases -> %s\n\n", len(results), output)

	tally := report.Tally(results, func(r classifier.Result) string {
		return string(r.Recommendation)
	})
	for label, count := range sortedTally(tally) {
		fmt.Fprintf(out, "  %-35s %d\n", label, count)
	}
}

// sortedTally returns the tally as an ordered slice of label/count pairs
// so the printed breakdown is stable across runs.
func sortedTally(tally map[string]int) func(func(string, int) bool) {
	labels := make([]string, 0, len(tally))
	for label := range tally {
		labels = append(labels, label)
	}
	slices.Sort(labels)

	return func(yield func(string, int) bool) {
		for _, label := range labels {
			if !yield(label, tally[label]) {
				return
			}
		}
	}
}
