package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fund-screening/internal/report"
	"fund-screening/internal/screening"
)

// ExportOptions hold parameters for exporting one classified category.
type ExportOptions struct {
	Inputs     []string
	Category   string
	Quarter    string
	CSVPath    string
	PNGPath    string
	ReportPath string
}

// Export serializes one category's classified table as CSV, a status
// distribution chart, and/or the document-renderer payload.
func (a *App) Export(ctx context.Context, opts ExportOptions) error {
	if opts.CSVPath == "" && opts.PNGPath == "" && opts.ReportPath == "" {
		return errors.New("at least one of --csv, --png, or --report must be provided")
	}
	if opts.Category == "" {
		return errors.New("--category is required")
	}

	th, err := a.thresholds()
	if err != nil {
		return err
	}

	load, err := a.loadUniverse(opts.Inputs, "")
	if err != nil {
		return err
	}

	sub := load.Table.FilterCategory(opts.Category)
	if sub.Len() == 0 {
		return fmt.Errorf("category %q not present; available: %s",
			opts.Category, strings.Join(load.Table.Categories(), ", "))
	}

	universe, _ := screening.UniverseFrom(sub)
	res := screening.Classify(universe, th)

	a.Logger.Info().Str("category", opts.Category).
		Int("classified", len(res.Classified)).
		Int("unscored", len(res.Unscored)).
		Msg("exporting category")

	if opts.CSVPath != "" {
		if err := report.WriteCSV(opts.CSVPath, sub.Columns, res); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
	}

	if opts.PNGPath != "" {
		if err := report.WriteChart(opts.PNGPath, opts.Category, res, th); err != nil {
			return fmt.Errorf("write chart: %w", err)
		}
	}

	if opts.ReportPath != "" {
		if !a.reportCapable {
			a.Logger.Warn().Msg("report payload export disabled by configuration; skipping")
		} else {
			payload := report.BuildPayload(opts.Category, opts.Quarter, res, th, a.metricWeights())
			if err := report.WriteJSON(opts.ReportPath, payload); err != nil {
				return fmt.Errorf("write report payload: %w", err)
			}
		}
	}

	return nil
}
