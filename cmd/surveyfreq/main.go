package main

import (
	"log/slog"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/usestring/surveyfreq/internal/aggregate"
	"github.com/usestring/surveyfreq/internal/cache"
	"github.com/usestring/surveyfreq/internal/config"
	"github.com/usestring/surveyfreq/internal/logging"
	"github.com/usestring/surveyfreq/internal/report"
	"github.com/usestring/surveyfreq/internal/tokenize"
	"github.com/usestring/surveyfreq/pkg/nlp"
	"github.com/usestring/surveyfreq/pkg/table"
)

func main() {
	cfg := config.Load()

	cleanup, err := logging.Setup(cfg)
	if err != nil {
		slog.Error("failed to set up logging", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	if err := run(cfg); err != nil {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	tab, err := table.Open(cfg.InputPath)
	if err != nil {
		return err
	}
	slog.Info("loaded input table", "path", cfg.InputPath, "rows", tab.Len(), "columns", len(tab.Columns()))

	// Replace the question-text headers with short names when the count
	// matches; otherwise keep the headers as loaded.
	if len(cfg.ColumnNames) == len(tab.Columns()) {
		if err := tab.RenameColumns(cfg.ColumnNames); err != nil {
			return err
		}
	}

	pipeline, err := nlp.NewEnglishPipeline()
	if err != nil {
		return err
	}
	annCache, err := cache.NewAnnotationCache(cfg.CacheMaxItems)
	if err != nil {
		return err
	}
	tok := tokenize.New(pipeline, annCache)

	// The passes are independent: each owns its counters and output files,
	// and within a pass rows are visited strictly in table order.
	var g errgroup.Group
	g.Go(func() error {
		return runPass(cfg, tab, cfg.DescriptionColumns, tok, tokenize.FullText{}, cfg.DescriptionsOutput)
	})
	g.Go(func() error {
		return runPass(cfg, tab, cfg.AdjectiveColumns, tok, tokenize.AdjectiveList{}, cfg.AdjectivesOutput)
	})
	if len(cfg.EntityColumns) > 0 {
		g.Go(func() error {
			return runPass(cfg, tab, cfg.EntityColumns, tok, tokenize.NamedEntities{}, cfg.EntitiesOutput)
		})
	}
	return g.Wait()
}

// runPass aggregates one designated column set under one policy, builds the
// padded frequency table and writes it out.
func runPass(cfg *config.Config, tab *table.Table, columns []string, tok *tokenize.Tokenizer, policy tokenize.Policy, outPath string) error {
	counters, err := aggregate.Aggregate(tab, columns, tok, policy)
	if err != nil {
		return err
	}
	freqs := report.Build(counters, columns)
	if err := freqs.SaveCSV(outPath); err != nil {
		return err
	}
	slog.Info("saved frequency table", "policy", policy.Name(), "path", outPath, "rows", freqs.Rows)

	if cfg.WriteSummary {
		sumPath := summaryPath(outPath)
		if err := freqs.SaveSummaryCSV(sumPath); err != nil {
			return err
		}
		slog.Info("saved summary", "policy", policy.Name(), "path", sumPath)
	}
	return nil
}

// summaryPath derives the summary file name from the output file name:
// "x.csv" becomes "x_summary.csv".
func summaryPath(outPath string) string {
	if strings.HasSuffix(outPath, ".csv") {
		return strings.TrimSuffix(outPath, ".csv") + "_summary.csv"
	}
	return outPath + "_summary"
}
