package compare

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Bucket maps an alert severity label to an exclusive lower-bound delta.
type Bucket struct {
	Label string
	Min   decimal.Decimal
}

// Buckets is the ordered alert severity configuration. Levels are supplied
// with strictly increasing bounds and evaluated top-down by descending
// bound; a delta at or below the lowest bound maps to the stable label.
type Buckets struct {
	levels []Bucket
	stable string
}

// NewBuckets validates and constructs an alert bucket configuration.
func NewBuckets(levels []Bucket, stable string) (Buckets, error) {
	if len(levels) == 0 {
		return Buckets{}, fmt.Errorf("alert buckets: at least one level required")
	}
	if stable == "" {
		return Buckets{}, fmt.Errorf("alert buckets: stable label required")
	}
	for i, lvl := range levels {
		if lvl.Label == "" {
			return Buckets{}, fmt.Errorf("alert buckets: level %d has empty label", i)
		}
		if i > 0 && !lvl.Min.GreaterThan(levels[i-1].Min) {
			return Buckets{}, fmt.Errorf("alert buckets: bounds must be strictly increasing, %s (%s) does not exceed %s (%s)",
				lvl.Label, lvl.Min, levels[i-1].Label, levels[i-1].Min)
		}
	}
	out := Buckets{levels: make([]Bucket, len(levels)), stable: stable}
	copy(out.levels, levels)
	return out, nil
}

// Assign buckets a score delta into a severity, most severe bound first.
// Lower bounds are exclusive: a delta exactly on a bound falls through to
// the next severity down.
func (b Buckets) Assign(delta decimal.Decimal) string {
	for i := len(b.levels) - 1; i >= 0; i-- {
		if delta.GreaterThan(b.levels[i].Min) {
			return b.levels[i].Label
		}
	}
	return b.stable
}

// Stable returns the label assigned below the lowest bound.
func (b Buckets) Stable() string {
	return b.stable
}

// AtOrAbove returns the severity labels whose bound is at or above the
// bound of floor, i.e. the severities that count as "flagged" when floor is
// the configured notification floor.
func (b Buckets) AtOrAbove(floor string) ([]string, error) {
	for i, lvl := range b.levels {
		if lvl.Label == floor {
			out := make([]string, 0, len(b.levels)-i)
			for _, above := range b.levels[i:] {
				out = append(out, above.Label)
			}
			return out, nil
		}
	}
	return nil, fmt.Errorf("alert buckets: unknown severity %q", floor)
}
