package app

import (
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"fund-screening/internal/alerting"
	"fund-screening/internal/compare"
	"fund-screening/internal/config"
	"fund-screening/internal/ingest"
	"fund-screening/internal/report"
	"fund-screening/internal/screening"
	"fund-screening/internal/table"
)

// App aggregates configuration and shared dependencies for the CLI commands.
type App struct {
	Config *config.Config
	Logger zerolog.Logger

	// reportCapable is the startup capability check for the document
	// renderer payload; export consults it instead of failing late.
	reportCapable bool
}

// NewApp constructs a new application handle.
func NewApp(cfg *config.Config, logger zerolog.Logger) *App {
	return &App{
		Config:        cfg,
		Logger:        logger.With().Str("component", "app").Logger(),
		reportCapable: cfg.Report.Enabled,
	}
}

func (a *App) newReader() *ingest.Reader {
	return ingest.NewReader(a.Config.Ingest.SheetCandidates, a.Logger)
}

func (a *App) thresholds() (screening.Thresholds, error) {
	specs := a.Config.Screening.Thresholds
	levels := make([]screening.Threshold, 0, len(specs))
	for _, spec := range specs {
		levels = append(levels, screening.Threshold{
			Label: spec.Label,
			Bound: decimal.NewFromFloat(spec.Bound),
		})
	}
	return screening.NewThresholds(levels, a.Config.Screening.TerminalStatus)
}

func (a *App) buckets() (compare.Buckets, error) {
	specs := a.Config.Alerting.Buckets
	levels := make([]compare.Bucket, 0, len(specs))
	for _, spec := range specs {
		levels = append(levels, compare.Bucket{
			Label: spec.Label,
			Min:   decimal.NewFromFloat(spec.Min),
		})
	}
	return compare.NewBuckets(levels, a.Config.Alerting.StableLabel)
}

func (a *App) newNotifier() alerting.Notifier {
	if a.Config.Alerting.Telegram.Enabled {
		cfg := a.Config.Alerting.Telegram
		return alerting.NewTelegramNotifier(cfg.BotToken, cfg.ChatID, cfg.APIBase, 10*time.Second, a.Logger)
	}
	return nil
}

func (a *App) metricWeights() []report.MetricWeight {
	specs := a.Config.Screening.MetricWeights
	out := make([]report.MetricWeight, 0, len(specs))
	for _, spec := range specs {
		out = append(out, report.MetricWeight{
			Metric: spec.Metric,
			Weight: decimal.NewFromFloat(spec.Weight).String(),
		})
	}
	return out
}

// universeLoad is the shared outcome of multi-source ingestion.
type universeLoad struct {
	Table    *table.Table
	Universe screening.Universe
	// Dropped counts rows discarded for lacking an identifier.
	Dropped  int
	Rank     screening.RankOutcome
	Warnings []ingest.SourceWarning
	// CategoryMissing counts sources left without any category field.
	CategoryMissing int
}

// loadUniverse ingests, normalizes, aggregates, and ranks a batch of
// delimited sources into one fund universe. Per-source failures become
// warnings; only a batch with zero readable sources is an error.
func (a *App) loadUniverse(paths []string, overrideCategory string) (*universeLoad, error) {
	if len(paths) == 0 {
		return nil, errors.New("at least one input file is required")
	}

	batch := a.newReader().ReadBatch(paths)
	if len(batch.Tables) == 0 {
		return nil, errors.New("no input source could be read")
	}

	load := &universeLoad{Warnings: batch.Warnings}
	for _, tbl := range batch.Tables {
		outcome := table.Normalize(tbl, overrideCategory)
		if outcome.CategoryStamped {
			a.Logger.Info().Str("category", overrideCategory).Int("rows", tbl.Len()).Msg("stamped override category")
		}
		if outcome.CategoryMissing {
			load.CategoryMissing++
		}
	}
	if load.CategoryMissing > 0 {
		a.Logger.Warn().Int("sources", load.CategoryMissing).Msg("sources lack a category column and no override was supplied")
	}

	load.Table = table.Concat(batch.Tables...)

	load.Rank = screening.RankByCategory(load.Table)
	if load.Rank.Skipped {
		a.Logger.Warn().Strs("missing_columns", load.Rank.Missing).Msg("category-relative ranking skipped")
	} else {
		a.Logger.Info().Int("ranked", load.Rank.Ranked).Msg("category-relative percentiles computed")
	}

	load.Universe, load.Dropped = screening.UniverseFrom(load.Table)
	if load.Dropped > 0 {
		a.Logger.Warn().Int("rows", load.Dropped).Msg("rows without an identifier were dropped")
	}

	a.Logger.Info().
		Int("sources", len(batch.Tables)).
		Int("funds", len(load.Universe)).
		Int("unreadable_sources", len(batch.Warnings)).
		Msg("fund universe loaded")
	return load, nil
}
