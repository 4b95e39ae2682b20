package app

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"fund-screening/internal/screening"
)

// ScreenOptions configure the screen command.
type ScreenOptions struct {
	Inputs   []string
	Category string
	Quarter  string
}

// Screen ingests the current-period exports and prints the classified
// universe summary per category.
func (a *App) Screen(ctx context.Context, opts ScreenOptions) error {
	th, err := a.thresholds()
	if err != nil {
		return err
	}

	load, err := a.loadUniverse(opts.Inputs, opts.Category)
	if err != nil {
		return err
	}

	categories := load.Table.Categories()
	if len(categories) == 0 {
		fmt.Fprintln(os.Stdout, "no categories present in the loaded universe")
		return nil
	}

	if opts.Quarter != "" {
		fmt.Fprintf(os.Stdout, "Screening summary for %s\n", opts.Quarter)
	}

	writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	labels := th.Labels()
	fmt.Fprintf(writer, "Category\tFunds\t%s\tUnscored\n", strings.Join(labels, "\t"))

	for _, category := range categories {
		sub := load.Table.FilterCategory(category)
		universe, _ := screening.UniverseFrom(sub)
		res := screening.Classify(universe, th)
		counts := res.StatusCounts()

		cells := make([]string, 0, len(labels))
		for _, label := range labels {
			cells = append(cells, fmt.Sprintf("%d", counts[label]))
		}
		fmt.Fprintf(writer, "%s\t%d\t%s\t%d\n",
			category,
			len(res.Classified)+len(res.Unscored),
			strings.Join(cells, "\t"),
			len(res.Unscored),
		)

		if len(res.Unscored) > 0 {
			a.Logger.Warn().Str("category", category).Int("funds", len(res.Unscored)).
				Msg("classification unavailable for funds without a percentile score")
		}
	}

	return writer.Flush()
}
