package table

import (
	"reflect"
	"testing"
)

func sampleTables() (*Table, *Table) {
	a := FromRecords([][]string{
		{"Symbol", ColCategory},
		{"A1", "Large Blend"},
		{"A2", "Foreign Large Value"},
	})
	b := FromRecords([][]string{
		{"Symbol", ColCategory, "Expense Ratio"},
		{"B1", "Large Blend", "0.03"},
		{"B2", ""},
	})
	return a, b
}

func TestConcatUnionSchemaAndOrder(t *testing.T) {
	a, b := sampleTables()
	agg := Concat(a, b)

	wantCols := []string{"Symbol", ColCategory, "Expense Ratio"}
	if !reflect.DeepEqual(agg.Columns, wantCols) {
		t.Fatalf("columns = %v, want %v", agg.Columns, wantCols)
	}
	if agg.Len() != 4 {
		t.Fatalf("rows = %d, want 4", agg.Len())
	}

	// Rows missing a column carry no value for it rather than an error.
	if agg.Rows[0].Has("Expense Ratio") {
		t.Fatal("first source rows should not carry the second source's column")
	}

	gotOrder := make([]string, 0, 4)
	for _, row := range agg.Rows {
		gotOrder = append(gotOrder, row["Symbol"])
	}
	if !reflect.DeepEqual(gotOrder, []string{"A1", "A2", "B1", "B2"}) {
		t.Fatalf("row order = %v", gotOrder)
	}
}

func TestConcatFilterAssociativity(t *testing.T) {
	a, b := sampleTables()

	combined := Concat(a, b).FilterCategory("Large Blend")

	separate := Concat(a.FilterCategory("Large Blend"), b.FilterCategory("Large Blend"))

	if combined.Len() != separate.Len() {
		t.Fatalf("filter-then-concat and concat-then-filter disagree: %d vs %d", combined.Len(), separate.Len())
	}
	for i := range combined.Rows {
		if combined.Rows[i]["Symbol"] != separate.Rows[i]["Symbol"] {
			t.Fatalf("row %d differs: %q vs %q", i, combined.Rows[i]["Symbol"], separate.Rows[i]["Symbol"])
		}
	}
}

func TestCategoriesExcludeBlankAndSort(t *testing.T) {
	a, b := sampleTables()
	got := Concat(a, b).Categories()

	want := []string{"Foreign Large Value", "Large Blend"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("categories = %v, want %v", got, want)
	}
}

func TestFromRecordsRaggedRows(t *testing.T) {
	tbl := FromRecords([][]string{
		{"Symbol", "Name"},
		{"VTI"},
		{"IXUS", "iShares Core", "extra"},
	})

	if tbl.Rows[0].Has("Name") {
		t.Fatal("short row should leave trailing columns absent")
	}
	if got := tbl.Rows[1]["Name"]; got != "iShares Core" {
		t.Fatalf("long row name = %q", got)
	}
}
