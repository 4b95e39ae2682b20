package screening

import (
	"strings"

	"github.com/shopspring/decimal"

	"fund-screening/internal/table"
)

// FundRecord is one screened fund. Score is the category-relative percentile
// where lower is better; nil marks an absent or unparseable score. Row keeps
// every source field for pass-through export.
type FundRecord struct {
	Symbol   string
	Name     string
	Category string
	Score    *decimal.Decimal
	Row      table.Row
}

// Universe is the ordered fund universe for one evaluation period. Duplicate
// identifiers are permitted and preserved.
type Universe []FundRecord

// UniverseFrom materializes fund records from an aggregated table. Rows with
// an empty identifier cannot participate in reconciliation or comparison and
// are dropped; the count of dropped rows is returned so the caller can warn.
func UniverseFrom(t *table.Table) (Universe, int) {
	universe := make(Universe, 0, t.Len())
	dropped := 0

	for _, row := range t.Rows {
		symbol := strings.TrimSpace(row[table.ColSymbol])
		if symbol == "" {
			dropped++
			continue
		}
		universe = append(universe, FundRecord{
			Symbol:   symbol,
			Name:     row[table.ColName],
			Category: row[table.ColCategory],
			Score:    parseScore(row, table.ColPercentile),
			Row:      row,
		})
	}
	return universe, dropped
}

// HasScores reports whether any record carries a percentile score. A
// universe without scores cannot be classified or compared.
func (u Universe) HasScores() bool {
	for _, rec := range u {
		if rec.Score != nil {
			return true
		}
	}
	return false
}

// FirstBySymbol indexes the first occurrence of each identifier in
// ingestion order. Joins against a non-deduplicated universe deliberately
// use the first occurrence.
func (u Universe) FirstBySymbol() map[string]FundRecord {
	out := make(map[string]FundRecord, len(u))
	for _, rec := range u {
		if _, ok := out[rec.Symbol]; !ok {
			out[rec.Symbol] = rec
		}
	}
	return out
}

func parseScore(row table.Row, col string) *decimal.Decimal {
	raw, ok := row.Get(col)
	if !ok {
		return nil
	}
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return nil
	}
	return &d
}
