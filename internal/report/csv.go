// Package report serializes a classified category for delivery: delimited
// text, a status-distribution chart, and a structured payload for the
// external document renderer.
package report

import (
	"encoding/csv"
	"os"
	"path/filepath"

	"fund-screening/internal/screening"
	"fund-screening/internal/table"
)

const statusColumn = "Status"

// WriteCSV serializes a category's classified table. Identifier, name,
// score, and status lead; the remaining source columns follow in table
// order. Unscored records are appended last with an empty status.
func WriteCSV(path string, columns []string, res screening.Result) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	extras := extraColumns(columns)
	header := append([]string{table.ColSymbol, table.ColName, table.ColPercentile, statusColumn}, extras...)
	if err := writer.Write(header); err != nil {
		return err
	}

	writeRecord := func(rec screening.FundRecord, status string) error {
		score := ""
		if rec.Score != nil {
			score = rec.Score.String()
		}
		record := []string{rec.Symbol, rec.Name, score, status}
		for _, col := range extras {
			record = append(record, rec.Row[col])
		}
		return writer.Write(record)
	}

	for _, rec := range res.Classified {
		if err := writeRecord(rec.FundRecord, rec.Status); err != nil {
			return err
		}
	}
	for _, rec := range res.Unscored {
		if err := writeRecord(rec, ""); err != nil {
			return err
		}
	}

	return writer.Error()
}

// extraColumns filters out the columns already emitted in the fixed prefix.
func extraColumns(columns []string) []string {
	var out []string
	for _, col := range columns {
		switch col {
		case table.ColSymbol, table.ColName, table.ColPercentile, statusColumn:
			continue
		}
		out = append(out, col)
	}
	return out
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
