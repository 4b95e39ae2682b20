package table

// Canonical column names as they appear in YCharts screening exports.
const (
	ColSymbol     = "Symbol"
	ColName       = "Name"
	ColCategory   = "Morningstar Category"
	ColPercentile = "FI ESG Quant Percentile Screen"
	ColRawScore   = "FI ESG Quant Screen Scoring System"

	// legacyCategoryColumn is the alternate header some exports use.
	legacyCategoryColumn = "Category Name"
)

// NormalizeOutcome reports what the normalizer did to one source table.
type NormalizeOutcome struct {
	// CategoryStamped is true when every row was stamped with the override.
	CategoryStamped bool
	// CategoryMissing is true when the table has no category column and no
	// override was supplied; rows pass through without a category field.
	CategoryMissing bool
}

// Normalize gives a raw table a canonical category field in place. A legacy
// category header is renamed to the canonical one; if the table has no
// category column at all and override is non-empty, every row is stamped
// with it. Missing category is a reportable outcome, never an error.
func Normalize(t *Table, override string) NormalizeOutcome {
	t.RenameColumn(legacyCategoryColumn, ColCategory)

	if t.HasColumn(ColCategory) {
		return NormalizeOutcome{}
	}

	if override == "" {
		return NormalizeOutcome{CategoryMissing: true}
	}

	t.addColumn(ColCategory)
	for _, row := range t.Rows {
		row[ColCategory] = override
	}
	return NormalizeOutcome{CategoryStamped: true}
}
