package report

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/shopspring/decimal"

	"fund-screening/internal/screening"
	"fund-screening/internal/table"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func testThresholds(t *testing.T) screening.Thresholds {
	t.Helper()
	th, err := screening.NewThresholds([]screening.Threshold{
		{Label: "Elite", Bound: decimal.NewFromInt(25)},
		{Label: "Qualified", Bound: decimal.NewFromInt(37)},
		{Label: "Watchlist", Bound: decimal.NewFromInt(60)},
	}, "Review Required")
	if err != nil {
		t.Fatalf("thresholds: %v", err)
	}
	return th
}

func testResult(t *testing.T) screening.Result {
	t.Helper()
	u := screening.Universe{
		{Symbol: "VTI", Name: "Vanguard Total", Category: "Large Blend", Score: dec("12"),
			Row: table.Row{table.ColSymbol: "VTI", table.ColName: "Vanguard Total", "Expense Ratio": "0.03"}},
		{Symbol: "SPLG", Name: "SPDR Portfolio", Category: "Large Blend", Score: dec("70"),
			Row: table.Row{table.ColSymbol: "SPLG", table.ColName: "SPDR Portfolio"}},
		{Symbol: "NOSCORE", Name: "Unrated", Category: "Large Blend",
			Row: table.Row{table.ColSymbol: "NOSCORE"}},
	}
	return screening.Classify(u, testThresholds(t))
}

func TestWriteCSVLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "large-blend.csv")
	columns := []string{table.ColSymbol, table.ColName, "Expense Ratio", table.ColPercentile}

	if err := WriteCSV(path, columns, testResult(t)); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("read output: %v", err)
	}

	wantHeader := []string{table.ColSymbol, table.ColName, table.ColPercentile, "Status", "Expense Ratio"}
	if !reflect.DeepEqual(records[0], wantHeader) {
		t.Fatalf("header = %v, want %v", records[0], wantHeader)
	}

	// Classified rows ascending by score, unscored last with empty status.
	if records[1][0] != "VTI" || records[1][3] != "Elite" || records[1][4] != "0.03" {
		t.Fatalf("first row = %v", records[1])
	}
	if records[2][0] != "SPLG" || records[2][3] != "Review Required" {
		t.Fatalf("second row = %v", records[2])
	}
	if records[3][0] != "NOSCORE" || records[3][3] != "" {
		t.Fatalf("unscored row = %v", records[3])
	}
}

func TestBuildPayloadSummary(t *testing.T) {
	weights := []MetricWeight{{Metric: "MSCI ESG Score", Weight: "0.05"}}
	payload := BuildPayload("Large Blend", "2026Q2", testResult(t), testThresholds(t), weights)

	if payload.Summary.Total != 3 || payload.Summary.Unscored != 1 {
		t.Fatalf("summary = %+v", payload.Summary)
	}

	counts := map[string]int{}
	for _, sc := range payload.Summary.ByStatus {
		counts[sc.Status] = sc.Count
	}
	if counts["Elite"] != 1 || counts["Review Required"] != 1 || counts["Qualified"] != 0 {
		t.Fatalf("by status = %+v", payload.Summary.ByStatus)
	}

	if len(payload.Funds) != 2 {
		t.Fatalf("funds = %d, unscored records are not report rows", len(payload.Funds))
	}
	if payload.Funds[0].Symbol != "VTI" || payload.Funds[0].Percentile != "12.00" {
		t.Fatalf("first fund = %+v", payload.Funds[0])
	}
}

func TestWriteJSONRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payload.json")
	payload := BuildPayload("Large Blend", "2026Q2", testResult(t), testThresholds(t), nil)

	if err := WriteJSON(path, payload); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read payload: %v", err)
	}
	var decoded Payload
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	if decoded.Category != "Large Blend" || decoded.Quarter != "2026Q2" {
		t.Fatalf("decoded = %+v", decoded)
	}
}

func TestWriteChart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.png")
	if err := WriteChart(path, "Large Blend", testResult(t), testThresholds(t)); err != nil {
		t.Fatalf("WriteChart: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil || info.Size() == 0 {
		t.Fatalf("chart not written: %v", err)
	}

	if err := WriteChart(path, "Empty", screening.Result{}, testThresholds(t)); err == nil {
		t.Fatal("empty result should not render a chart")
	}
}
