package ingest

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"fund-screening/internal/table"
)

// DefaultSheetCandidates is the ordered list of sheet names searched in a
// holdings workbook; the first match wins.
var DefaultSheetCandidates = []string{"ESG MAIN", "ESG MAIN YCHARTS", "ESG_MAIN", "Main"}

// SheetNotFoundError reports that no candidate sheet exists in a workbook,
// surfacing what is available so the operator can fix the export.
type SheetNotFoundError struct {
	Candidates []string
	Available  []string
}

func (e *SheetNotFoundError) Error() string {
	return fmt.Sprintf("none of the candidate sheets %v found; workbook contains %v", e.Candidates, e.Available)
}

// ReadWorkbook materializes the first matching candidate sheet as a table
// and returns the sheet name used. When the sheet's first data row embeds
// the real header, that row is promoted and the original header discarded.
func (r *Reader) ReadWorkbook(path string) (*table.Table, string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			r.logger.Warn().Err(cerr).Str("source", path).Msg("closing workbook failed")
		}
	}()

	sheet, err := resolveSheet(f.GetSheetList(), r.sheetCandidates)
	if err != nil {
		return nil, "", err
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, "", fmt.Errorf("read sheet %q of %s: %w", sheet, path, err)
	}
	if len(rows) == 0 {
		return nil, "", fmt.Errorf("sheet %q of %s is empty", sheet, path)
	}

	if len(rows) >= 2 && table.EmbeddedHeader(rows[1]) {
		r.logger.Debug().Str("sheet", sheet).Msg("promoting embedded header row")
		rows = rows[1:]
	}

	return table.FromRecords(rows), sheet, nil
}

func resolveSheet(available, candidates []string) (string, error) {
	index := make(map[string]string, len(available))
	for _, name := range available {
		index[strings.ToLower(strings.TrimSpace(name))] = name
	}
	for _, candidate := range candidates {
		if name, ok := index[strings.ToLower(candidate)]; ok {
			return name, nil
		}
	}
	return "", &SheetNotFoundError{Candidates: candidates, Available: available}
}
