package table

import "strings"

// Row maps a column name to its cell value. A key that is not present marks
// the cell as absent, which is distinct from a present-but-empty value.
type Row map[string]string

// Get returns the value for col and whether the cell is present.
func (r Row) Get(col string) (string, bool) {
	v, ok := r[col]
	return v, ok
}

// Has reports whether the row carries a value for col.
func (r Row) Has(col string) bool {
	_, ok := r[col]
	return ok
}

// Table is an ordered sequence of rows sharing a union schema. Columns are
// kept in first-seen order; rows may cover any subset of them.
type Table struct {
	Columns []string
	Rows    []Row

	colSet map[string]struct{}
}

// New constructs an empty table with the given column order.
func New(columns ...string) *Table {
	t := &Table{colSet: make(map[string]struct{}, len(columns))}
	for _, c := range columns {
		t.addColumn(c)
	}
	return t
}

// HasColumn reports whether the table schema includes name.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.colSet[name]
	return ok
}

// Append adds a row and folds any new columns into the union schema.
func (t *Table) Append(row Row) {
	for col := range row {
		t.addColumn(col)
	}
	t.Rows = append(t.Rows, row)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

func (t *Table) addColumn(name string) {
	if t.colSet == nil {
		t.colSet = make(map[string]struct{})
	}
	if _, ok := t.colSet[name]; ok {
		return
	}
	t.colSet[name] = struct{}{}
	t.Columns = append(t.Columns, name)
}

// EnsureColumn registers a column in the schema if it is not already there.
func (t *Table) EnsureColumn(name string) {
	t.addColumn(name)
}

// RenameColumn rewrites a column name across the schema and every row.
// Renaming onto an existing column is a no-op to avoid clobbering data.
func (t *Table) RenameColumn(from, to string) {
	if from == to || !t.HasColumn(from) || t.HasColumn(to) {
		return
	}
	delete(t.colSet, from)
	t.colSet[to] = struct{}{}
	for i, c := range t.Columns {
		if c == from {
			t.Columns[i] = to
		}
	}
	for _, row := range t.Rows {
		if v, ok := row[from]; ok {
			row[to] = v
			delete(row, from)
		}
	}
}

// FromRecords builds a table from raw records where the first record is the
// header. Header cells are trimmed; ragged data rows are tolerated and simply
// omit the trailing columns. Cells beyond the header width are dropped.
func FromRecords(records [][]string) *Table {
	if len(records) == 0 {
		return New()
	}

	header := make([]string, len(records[0]))
	for i, h := range records[0] {
		header[i] = strings.TrimSpace(h)
	}

	t := New(header...)
	for _, rec := range records[1:] {
		row := make(Row, len(header))
		for i, cell := range rec {
			if i >= len(header) || header[i] == "" {
				continue
			}
			row[header[i]] = cell
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}
