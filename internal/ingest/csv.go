// Package ingest materializes tables from delimited files and spreadsheet
// workbooks. One bad source never aborts the batch; per-source failures are
// collected as warnings alongside the partial result.
package ingest

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"fund-screening/internal/table"
)

// SourceWarning records a source that could not be materialized.
type SourceWarning struct {
	Source string
	Err    error
}

// Batch is the outcome of multi-source ingestion.
type Batch struct {
	// Tables holds one table per successfully read source, in input order.
	Tables   []*table.Table
	Warnings []SourceWarning
}

// Reader loads tabular sources.
type Reader struct {
	sheetCandidates []string
	logger          zerolog.Logger
}

// NewReader constructs a Reader. candidates is the ordered sheet-name list
// searched in workbooks; empty falls back to DefaultSheetCandidates.
func NewReader(candidates []string, logger zerolog.Logger) *Reader {
	if len(candidates) == 0 {
		candidates = DefaultSheetCandidates
	}
	return &Reader{
		sheetCandidates: candidates,
		logger:          logger.With().Str("component", "ingest").Logger(),
	}
}

// ReadCSV materializes one delimited file as a table. The first record is
// the header; ragged rows are tolerated.
func (r *Reader) ReadCSV(path string) (*table.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("read %s: file has no header row", path)
	}

	return table.FromRecords(records), nil
}

// ReadBatch reads every path, skipping sources that fail and carrying the
// failure as a warning.
func (r *Reader) ReadBatch(paths []string) Batch {
	var batch Batch
	for _, path := range paths {
		t, err := r.ReadCSV(path)
		if err != nil {
			r.logger.Warn().Err(err).Str("source", path).Msg("skipping unreadable source")
			batch.Warnings = append(batch.Warnings, SourceWarning{Source: path, Err: err})
			continue
		}
		r.logger.Debug().Str("source", path).Int("rows", t.Len()).Msg("source loaded")
		batch.Tables = append(batch.Tables, t)
	}
	return batch
}

// ReadPortfolio loads a holdings table, dispatching on file extension:
// spreadsheet workbooks go through named-sheet resolution, anything else is
// treated as delimited text.
func (r *Reader) ReadPortfolio(path string) (*table.Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		t, sheet, err := r.ReadWorkbook(path)
		if err != nil {
			return nil, err
		}
		r.logger.Debug().Str("source", path).Str("sheet", sheet).Msg("workbook sheet resolved")
		return t, nil
	default:
		return r.ReadCSV(path)
	}
}
