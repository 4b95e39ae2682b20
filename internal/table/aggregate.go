package table

import (
	"sort"
	"strings"
)

// Concat combines normalized tables from multiple sources into one table.
// Rows keep their relative order across sources and are not deduplicated;
// the resulting schema is the union of all source columns.
func Concat(tables ...*Table) *Table {
	out := New()
	for _, t := range tables {
		if t == nil {
			continue
		}
		for _, c := range t.Columns {
			out.addColumn(c)
		}
		out.Rows = append(out.Rows, t.Rows...)
	}
	return out
}

// Categories enumerates the distinct category values present in the table,
// excluding absent and blank cells, sorted by name so downstream iteration
// is reproducible.
func (t *Table) Categories() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, row := range t.Rows {
		v, ok := row.Get(ColCategory)
		if !ok || strings.TrimSpace(v) == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// FilterCategory produces the sub-universe for one category, preserving row
// order. The returned table shares row maps with the source.
func (t *Table) FilterCategory(category string) *Table {
	out := New(t.Columns...)
	for _, row := range t.Rows {
		if v, ok := row.Get(ColCategory); ok && v == category {
			out.Rows = append(out.Rows, row)
		}
	}
	return out
}
