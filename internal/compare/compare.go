// Package compare joins a current fund universe against the prior period's
// and buckets each score delta into an alert severity.
package compare

import (
	"sort"

	"github.com/shopspring/decimal"

	"fund-screening/internal/screening"
)

// Record is one period-over-period observation. Delta is current minus
// prior; positive means deterioration since lower scores are better.
type Record struct {
	Identifier string
	Name       string
	Category   string
	Current    decimal.Decimal
	Prior      decimal.Decimal
	Delta      decimal.Decimal
	Severity   string
}

// Result carries the joined comparison alongside its conditions. A zero-row
// join is informational, not an error.
type Result struct {
	// Records is sorted descending by delta so the most deteriorated funds
	// surface first.
	Records []Record
	// Skipped is true when either universe lacks scores entirely; SkipReason
	// names the side.
	Skipped    bool
	SkipReason string
}

// Compare inner-joins current against prior on identifier. Funds new or
// dropped this period are excluded. Duplicate identifiers join against the
// prior period's first occurrence in ingestion order.
func Compare(current, prior screening.Universe, buckets Buckets) Result {
	if !current.HasScores() {
		return Result{Skipped: true, SkipReason: "current universe has no percentile scores"}
	}
	if !prior.HasScores() {
		return Result{Skipped: true, SkipReason: "prior universe has no percentile scores"}
	}

	priorFirst := prior.FirstBySymbol()

	var res Result
	for _, rec := range current {
		if rec.Score == nil {
			continue
		}
		prev, ok := priorFirst[rec.Symbol]
		if !ok || prev.Score == nil {
			continue
		}
		delta := rec.Score.Sub(*prev.Score)
		res.Records = append(res.Records, Record{
			Identifier: rec.Symbol,
			Name:       rec.Name,
			Category:   rec.Category,
			Current:    *rec.Score,
			Prior:      *prev.Score,
			Delta:      delta,
			Severity:   buckets.Assign(delta),
		})
	}

	sort.SliceStable(res.Records, func(i, j int) bool {
		return res.Records[i].Delta.GreaterThan(res.Records[j].Delta)
	})
	return res
}

// BySeverity tallies joined records per severity label.
func (r Result) BySeverity() map[string]int {
	out := make(map[string]int, 4)
	for _, rec := range r.Records {
		out[rec.Severity]++
	}
	return out
}

// Flagged returns the records whose severity is in the given set, keeping
// the descending-delta order.
func (r Result) Flagged(severities []string) []Record {
	set := make(map[string]struct{}, len(severities))
	for _, s := range severities {
		set[s] = struct{}{}
	}
	var out []Record
	for _, rec := range r.Records {
		if _, ok := set[rec.Severity]; ok {
			out = append(out, rec)
		}
	}
	return out
}
