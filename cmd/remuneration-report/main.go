package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"remcli/internal/config"
	"remcli/internal/currency"
	"remcli/internal/dataprocessing"
	"remcli/internal/exporter"
	"remcli/pkg/contracts"
	"remcli/pkg/contracts/domain"
)

// maxCompanyWorkers bounds the per-company summary fan-out.
const maxCompanyWorkers = 4

func main() {
	workbook := flag.String("file", "", "path to the Dir Consol workbook (required)")
	configPath := flag.String("config", "", "optional YAML config file")
	outputDir := flag.String("out", "", "output directory for datasets (defaults to configured reports dir)")
	window := flag.Int("window", 0, "growth window in fiscal years (defaults to configured value)")
	convention := flag.String("convention", "", "currency convention override: indian or international")
	showVersion := flag.Bool("version", false, "print version information and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(contracts.GetFullVersionString())
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := setupLogger(cfg.Logging).With(slog.String("run_id", uuid.NewString()))

	if *window > 0 {
		cfg.Growth.MaxYears = *window
	}
	if *convention != "" {
		if !currency.Convention(*convention).IsValid() {
			logger.Error("unknown currency convention", "convention", *convention)
			os.Exit(1)
		}
		cfg.Currency.Convention = *convention
	}
	if *outputDir == "" {
		*outputDir = cfg.Paths.ReportsDir
	}
	if *workbook == "" {
		logger.Error("no workbook specified", "hint", "pass -file <Dir Consol .xlsx>")
		os.Exit(1)
	}

	logger.Info("starting remuneration report",
		"workbook", *workbook,
		"output_dir", *outputDir,
		"growth_window", cfg.Growth.MaxYears,
		"convention", cfg.Currency.Convention)

	set, err := dataprocessing.ParseDirConsol(*workbook, logger)
	if err != nil {
		logger.Error("failed to parse workbook", "error", err)
		os.Exit(1)
	}
	if len(set.Disclosures) == 0 {
		logger.Error("no disclosures found in workbook",
			"path", *workbook,
			"rows_skipped", set.RowsSkipped,
			"hint", "check that the Dir Consol sheet has data rows")
		os.Exit(1)
	}

	summarizer := dataprocessing.NewSummarizer(logger, dataprocessing.SummarizerConfig{
		Formatter:     currency.NewFormatter(currency.Convention(cfg.Currency.Convention), cfg.Currency.Symbol),
		MaxYears:      cfg.Growth.MaxYears,
		PercentDigits: cfg.Growth.PercentDigits,
	})
	writer := exporter.NewCSVWriter(*outputDir)

	companies := set.Companies()
	sort.Slice(companies, func(i, j int) bool { return companies[i].Name < companies[j].Name })

	results := make([][]dataprocessing.DirectorSummary, len(companies))
	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(maxCompanyWorkers)
	for i, company := range companies {
		i, company := i, company
		g.Go(func() error {
			sub := &domain.DisclosureSet{Disclosures: set.ByCompany(company.CompanyID)}
			summaries := summarizer.Summarize(sub)
			results[i] = summaries

			path := filepath.Join("esop", datasetFileName(company)+".csv")
			if err := writer.WriteEsopSeries(summaries, path); err != nil {
				return fmt.Errorf("company %s: %w", company.CompanyID, err)
			}
			logger.Debug("exported company datasets",
				"company", company.CompanyID,
				"directors", len(summaries))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Error("failed to export company datasets", "error", err)
		os.Exit(1)
	}

	var all []dataprocessing.DirectorSummary
	for _, summaries := range results {
		all = append(all, summaries...)
	}

	if err := writer.WriteGrowthSummaries(all, "growth_summary.csv"); err != nil {
		logger.Error("failed to export growth summaries", "error", err)
		os.Exit(1)
	}
	if err := writer.WriteEsopSeries(all, "esop_series.csv"); err != nil {
		logger.Error("failed to export combined esop series", "error", err)
		os.Exit(1)
	}

	logger.Info("remuneration report complete",
		"companies", len(companies),
		"directors", len(all),
		"rows_skipped", set.RowsSkipped,
		"output_dir", *outputDir)
}

func setupLogger(cfg config.LoggingConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// datasetFileName derives a filesystem-safe name for a company's dataset.
func datasetFileName(c domain.Company) string {
	name := c.CompanyID
	if name == "" {
		name = c.Name
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, name)
}
