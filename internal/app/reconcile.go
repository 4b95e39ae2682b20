package app

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"fund-screening/internal/reconcile"
)

// ReconcileOptions configure the reconcile command.
type ReconcileOptions struct {
	Inputs    []string
	Portfolio string
	Category  string
	Quarter   string
}

// Reconcile matches the current portfolio against the screened universe and
// prints a coverage report with each holding's classification.
func (a *App) Reconcile(ctx context.Context, opts ReconcileOptions) error {
	th, err := a.thresholds()
	if err != nil {
		return err
	}

	load, err := a.loadUniverse(opts.Inputs, opts.Category)
	if err != nil {
		return err
	}

	portfolio, err := a.newReader().ReadPortfolio(opts.Portfolio)
	if err != nil {
		return fmt.Errorf("load portfolio: %w", err)
	}

	res := reconcile.Reconcile(portfolio, load.Universe, th)
	if res.Skipped {
		fmt.Fprintf(os.Stdout, "reconciliation skipped: %s\navailable columns: %s\n",
			res.SkipReason, strings.Join(res.Headers, ", "))
		return nil
	}

	fmt.Fprintf(os.Stdout, "Total holdings: %d\nIn screening universe: %d/%d\n",
		res.Total, res.Found(), res.Total)

	if len(res.Matches) > 0 {
		writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(writer, "Holding\tWeight\tCategory\tPercentile\tStatus")
		for _, m := range res.Matches {
			weight := ""
			if m.Holding.Weight != nil {
				weight = m.Holding.Weight.String()
			}
			score := ""
			if m.Score != nil {
				score = m.Score.StringFixed(2)
			}
			fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\n", m.Holding.Identifier, weight, m.Category, score, m.Status)
		}
		if err := writer.Flush(); err != nil {
			return err
		}
	}

	if len(res.Missing) > 0 {
		fmt.Fprintf(os.Stdout, "Not in universe: %s\n", strings.Join(res.Missing, ", "))
	}

	return nil
}
