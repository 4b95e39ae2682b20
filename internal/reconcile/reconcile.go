// Package reconcile matches the firm's current holdings against the
// screened fund universe to surface each holding's classification.
package reconcile

import (
	"strings"

	"github.com/shopspring/decimal"

	"fund-screening/internal/screening"
	"fund-screening/internal/table"
)

// HoldingRecord is one portfolio entry, sourced from a table with ambiguous
// column names. Weight is a fraction of the portfolio when present.
type HoldingRecord struct {
	Identifier string
	Weight     *decimal.Decimal
	Category   string
}

// Match joins a holding with its universe record's screening metadata.
// The universe's first occurrence of the identifier wins when duplicated.
type Match struct {
	Holding  HoldingRecord
	Name     string
	Category string
	Score    *decimal.Decimal
	Status   string
}

// Result carries coverage counts and conditions. Found()+len(Missing) always
// equals Total, including the empty-holdings case.
type Result struct {
	// Skipped is true when no identifier-role column could be resolved in
	// the holdings table; Headers then lists what was available.
	Skipped    bool
	SkipReason string
	Headers    []string

	Roles   table.Roles
	Total   int
	Matches []Match
	// Missing lists holdings identifiers absent from the universe.
	Missing []string
}

// Found returns the number of holdings present in the universe.
func (r Result) Found() int {
	return len(r.Matches)
}

// Reconcile intersects the holdings identifiers against the screened
// universe. Holdings identifiers are de-duplicated preserving first-seen
// order before counting, so coverage is a set metric.
func Reconcile(portfolio *table.Table, universe screening.Universe, th screening.Thresholds) Result {
	roles := table.Resolve(portfolio.Columns)
	if !roles.HasIdentifier() {
		return Result{
			Skipped:    true,
			SkipReason: "could not identify holding column",
			Headers:    portfolio.Columns,
		}
	}

	holdings := extractHoldings(portfolio, roles)
	first := universe.FirstBySymbol()

	res := Result{Roles: roles, Total: len(holdings)}
	for _, h := range holdings {
		rec, ok := first[h.Identifier]
		if !ok {
			res.Missing = append(res.Missing, h.Identifier)
			continue
		}
		m := Match{
			Holding:  h,
			Name:     rec.Name,
			Category: rec.Category,
			Score:    rec.Score,
		}
		if rec.Score != nil {
			m.Status = th.Classify(*rec.Score)
		}
		res.Matches = append(res.Matches, m)
	}
	return res
}

func extractHoldings(portfolio *table.Table, roles table.Roles) []HoldingRecord {
	seen := make(map[string]struct{}, portfolio.Len())
	var out []HoldingRecord
	for _, row := range portfolio.Rows {
		id := strings.TrimSpace(row[roles.Identifier])
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		h := HoldingRecord{Identifier: id}
		if roles.Weight != "" {
			if w, err := decimal.NewFromString(strings.TrimSpace(row[roles.Weight])); err == nil {
				h.Weight = &w
			}
		}
		if roles.Category != "" {
			h.Category = row[roles.Category]
		}
		out = append(out, h)
	}
	return out
}
