package screening

import (
	"strings"

	"github.com/shopspring/decimal"

	"fund-screening/internal/table"
)

// RankOutcome reports the result of category-relative percentile ranking.
type RankOutcome struct {
	// Ranked counts rows whose percentile was recomputed.
	Ranked int
	// Skipped is true when the table lacks the columns ranking needs.
	Skipped bool
	// Missing lists the columns that prevented ranking.
	Missing []string
}

// RankByCategory recomputes the percentile column from the raw screening
// score, ranked within each category. The best raw score in a category lands
// at the lowest percentile; ties receive their average rank. Rows with an
// absent or unparseable raw score keep whatever percentile value they
// already carry. A table missing the raw-score or category column is a
// recoverable schema gap: ranking is skipped and reported.
func RankByCategory(t *table.Table) RankOutcome {
	var missing []string
	if !t.HasColumn(table.ColRawScore) {
		missing = append(missing, table.ColRawScore)
	}
	if !t.HasColumn(table.ColCategory) {
		missing = append(missing, table.ColCategory)
	}
	if len(missing) > 0 {
		return RankOutcome{Skipped: true, Missing: missing}
	}

	groups := make(map[string][]int)
	scores := make([]*decimal.Decimal, t.Len())
	for i, row := range t.Rows {
		category, ok := row.Get(table.ColCategory)
		if !ok || strings.TrimSpace(category) == "" {
			continue
		}
		raw, ok := row.Get(table.ColRawScore)
		if !ok {
			continue
		}
		d, err := decimal.NewFromString(strings.TrimSpace(raw))
		if err != nil {
			continue
		}
		scores[i] = &d
		groups[category] = append(groups[category], i)
	}

	hundred := decimal.NewFromInt(100)
	ranked := 0
	if len(groups) > 0 {
		t.EnsureColumn(table.ColPercentile)
	}
	for _, idx := range groups {
		n := int64(len(idx))
		for _, i := range idx {
			greater, equal := 0, 0
			for _, j := range idx {
				switch scores[j].Cmp(*scores[i]) {
				case 1:
					greater++
				case 0:
					equal++
				}
			}
			// Average descending rank for ties: greater + (equal+1)/2,
			// then rank/n scaled to 0-100. Kept exact in halves.
			rankTwice := decimal.NewFromInt(int64(2*greater + equal + 1))
			pct := rankTwice.Mul(hundred).Div(decimal.NewFromInt(2 * n))
			t.Rows[i][table.ColPercentile] = pct.String()
			ranked++
		}
	}

	return RankOutcome{Ranked: ranked}
}
