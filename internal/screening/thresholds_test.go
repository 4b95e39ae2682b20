package screening

import (
	"testing"

	"github.com/shopspring/decimal"
)

func testThresholds(t *testing.T) Thresholds {
	t.Helper()
	th, err := NewThresholds([]Threshold{
		{Label: "Elite", Bound: decimal.NewFromInt(25)},
		{Label: "Qualified", Bound: decimal.NewFromInt(37)},
		{Label: "Watchlist", Bound: decimal.NewFromInt(60)},
	}, "Review Required")
	if err != nil {
		t.Fatalf("thresholds should be valid: %v", err)
	}
	return th
}

func TestClassifyBoundaries(t *testing.T) {
	th := testThresholds(t)

	cases := []struct {
		score string
		want  string
	}{
		{"0", "Elite"},
		{"25", "Elite"},
		{"25.01", "Qualified"},
		{"37", "Qualified"},
		{"60", "Watchlist"},
		{"61", "Review Required"},
		{"100", "Review Required"},
	}
	for _, c := range cases {
		got := th.Classify(decimal.RequireFromString(c.score))
		if got != c.want {
			t.Fatalf("Classify(%s) = %q, want %q", c.score, got, c.want)
		}
	}
}

func TestThresholdsRejectNonIncreasingBounds(t *testing.T) {
	_, err := NewThresholds([]Threshold{
		{Label: "Elite", Bound: decimal.NewFromInt(25)},
		{Label: "Qualified", Bound: decimal.NewFromInt(25)},
	}, "Review Required")
	if err == nil {
		t.Fatal("equal bounds must be rejected at load time")
	}

	_, err = NewThresholds(nil, "Review Required")
	if err == nil {
		t.Fatal("empty threshold list must be rejected")
	}
}

func TestThresholdLabelsIncludeTerminal(t *testing.T) {
	th := testThresholds(t)
	labels := th.Labels()
	if len(labels) != 4 || labels[3] != "Review Required" {
		t.Fatalf("labels = %v", labels)
	}
}
