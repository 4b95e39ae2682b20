package compare

import (
	"testing"

	"github.com/shopspring/decimal"

	"fund-screening/internal/screening"
)

func testBuckets(t *testing.T) Buckets {
	t.Helper()
	b, err := NewBuckets([]Bucket{
		{Label: "Minor Change", Min: decimal.NewFromInt(10)},
		{Label: "Watchlist", Min: decimal.NewFromInt(25)},
		{Label: "Deteriorated", Min: decimal.NewFromInt(50)},
	}, "Stable/Improved")
	if err != nil {
		t.Fatalf("buckets should be valid: %v", err)
	}
	return b
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestAssignBoundaries(t *testing.T) {
	b := testBuckets(t)

	cases := []struct {
		delta string
		want  string
	}{
		{"50.0001", "Deteriorated"},
		{"50", "Watchlist"},
		{"25.5", "Watchlist"},
		{"25", "Minor Change"},
		{"10.0001", "Minor Change"},
		{"10", "Stable/Improved"},
		{"-30", "Stable/Improved"},
	}
	for _, c := range cases {
		if got := b.Assign(decimal.RequireFromString(c.delta)); got != c.want {
			t.Fatalf("Assign(%s) = %q, want %q", c.delta, got, c.want)
		}
	}
}

func TestBucketsRejectNonIncreasingBounds(t *testing.T) {
	_, err := NewBuckets([]Bucket{
		{Label: "A", Min: decimal.NewFromInt(25)},
		{Label: "B", Min: decimal.NewFromInt(10)},
	}, "Stable/Improved")
	if err == nil {
		t.Fatal("decreasing bounds must be rejected at load time")
	}
}

func TestCompareDeltaAndOrder(t *testing.T) {
	b := testBuckets(t)
	current := screening.Universe{
		{Symbol: "A", Score: dec("80")},
		{Symbol: "B", Score: dec("30")},
		{Symbol: "C", Score: dec("55")},
		{Symbol: "NEW", Score: dec("5")},
	}
	prior := screening.Universe{
		{Symbol: "A", Score: dec("20")},
		{Symbol: "B", Score: dec("35")},
		{Symbol: "C", Score: dec("25")},
		{Symbol: "GONE", Score: dec("50")},
	}

	res := Compare(current, prior, b)
	if res.Skipped {
		t.Fatalf("comparison should run: %s", res.SkipReason)
	}
	if len(res.Records) != 3 {
		t.Fatalf("inner join should exclude new and dropped funds, got %d", len(res.Records))
	}

	// Most deteriorated first.
	if res.Records[0].Identifier != "A" || res.Records[0].Delta.String() != "60" {
		t.Fatalf("first record = %+v", res.Records[0])
	}
	if res.Records[0].Severity != "Deteriorated" {
		t.Fatalf("severity = %q", res.Records[0].Severity)
	}
	if res.Records[2].Identifier != "B" || res.Records[2].Delta.String() != "-5" {
		t.Fatalf("last record = %+v", res.Records[2])
	}
}

func TestCompareAntiSymmetry(t *testing.T) {
	b := testBuckets(t)
	x := screening.Universe{{Symbol: "F", Score: dec("62.5")}}
	y := screening.Universe{{Symbol: "F", Score: dec("40")}}

	forward := Compare(x, y, b)
	backward := Compare(y, x, b)

	fd := forward.Records[0].Delta
	bd := backward.Records[0].Delta
	if !fd.Equal(bd.Neg()) {
		t.Fatalf("deltas should negate: %s vs %s", fd, bd)
	}
}

func TestCompareSkipsWhenScoresAbsent(t *testing.T) {
	b := testBuckets(t)
	scored := screening.Universe{{Symbol: "A", Score: dec("10")}}
	unscored := screening.Universe{{Symbol: "A"}}

	res := Compare(unscored, scored, b)
	if !res.Skipped || res.SkipReason == "" {
		t.Fatalf("missing current scores should skip with reason, got %+v", res)
	}

	res = Compare(scored, unscored, b)
	if !res.Skipped {
		t.Fatal("missing prior scores should skip")
	}
}

func TestCompareJoinsPriorFirstOccurrence(t *testing.T) {
	b := testBuckets(t)
	current := screening.Universe{{Symbol: "A", Score: dec("30")}}
	prior := screening.Universe{
		{Symbol: "A", Score: dec("10")},
		{Symbol: "A", Score: dec("90")},
	}

	res := Compare(current, prior, b)
	if res.Records[0].Delta.String() != "20" {
		t.Fatalf("join must use prior first occurrence, delta = %s", res.Records[0].Delta)
	}
}

func TestFlaggedAndBySeverity(t *testing.T) {
	b := testBuckets(t)
	current := screening.Universe{
		{Symbol: "A", Score: dec("80")},
		{Symbol: "B", Score: dec("40")},
	}
	prior := screening.Universe{
		{Symbol: "A", Score: dec("10")},
		{Symbol: "B", Score: dec("38")},
	}

	res := Compare(current, prior, b)

	floor, err := b.AtOrAbove("Watchlist")
	if err != nil {
		t.Fatalf("AtOrAbove: %v", err)
	}
	flagged := res.Flagged(floor)
	if len(flagged) != 1 || flagged[0].Identifier != "A" {
		t.Fatalf("flagged = %+v", flagged)
	}

	if res.BySeverity()["Stable/Improved"] != 1 {
		t.Fatalf("BySeverity = %v", res.BySeverity())
	}

	if _, err := b.AtOrAbove("No Such Severity"); err == nil {
		t.Fatal("unknown severity floor must error")
	}
}
