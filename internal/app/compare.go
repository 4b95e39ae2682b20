package app

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"fund-screening/internal/alerting"
	"fund-screening/internal/compare"
)

// CompareOptions configure the compare command.
type CompareOptions struct {
	Inputs   []string
	Previous []string
	Category string
	Quarter  string
}

// Compare joins the current universe against the prior quarter's, buckets
// the deltas into alert severities, and dispatches a summary alert when
// flagged funds cross the notification floor.
func (a *App) Compare(ctx context.Context, opts CompareOptions) error {
	buckets, err := a.buckets()
	if err != nil {
		return err
	}

	current, err := a.loadUniverse(opts.Inputs, opts.Category)
	if err != nil {
		return err
	}
	prior, err := a.loadUniverse(opts.Previous, opts.Category)
	if err != nil {
		return fmt.Errorf("load prior period: %w", err)
	}

	res := compare.Compare(current.Universe, prior.Universe, buckets)
	if res.Skipped {
		fmt.Fprintf(os.Stdout, "comparison skipped: %s\n", res.SkipReason)
		return nil
	}

	fmt.Fprintf(os.Stdout, "Compared %d funds present in both periods\n", len(res.Records))
	if len(res.Records) == 0 {
		return nil
	}

	flaggedSeverities, err := buckets.AtOrAbove(a.Config.Alerting.NotifyFloor)
	if err != nil {
		return err
	}
	flagged := res.Flagged(flaggedSeverities)

	bySeverity := res.BySeverity()
	for label, count := range bySeverity {
		a.Logger.Info().Str("severity", label).Int("funds", count).Msg("comparison bucket")
	}

	if len(flagged) == 0 {
		fmt.Fprintln(os.Stdout, "no funds require immediate attention")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%d funds flagged for attention\n", len(flagged))
	writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "Symbol\tName\tSeverity\tChange\tCurrent")
	for _, rec := range flagged {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\n",
			rec.Identifier, rec.Name, rec.Severity, rec.Delta.StringFixed(2), rec.Current.StringFixed(2))
	}
	if err := writer.Flush(); err != nil {
		return err
	}

	if notifier := a.newNotifier(); notifier != nil {
		note := alerting.Notification{
			Quarter:  opts.Quarter,
			Compared: len(res.Records),
			Flagged:  len(flagged),
			Floor:    a.Config.Alerting.NotifyFloor,
		}
		for i, rec := range flagged {
			if i == maxNotifiedMovers {
				break
			}
			note.Movers = append(note.Movers, alerting.Mover{
				Identifier: rec.Identifier,
				Delta:      rec.Delta,
				Severity:   rec.Severity,
			})
		}
		if err := notifier.Notify(ctx, note); err != nil {
			a.Logger.Error().Err(err).Msg("failed to dispatch alert summary")
		}
	}

	return nil
}

// maxNotifiedMovers caps the per-fund lines in an alert message.
const maxNotifiedMovers = 5
