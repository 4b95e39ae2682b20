package screening

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Threshold maps a status label to an inclusive upper-bound percentile.
type Threshold struct {
	Label string
	Bound decimal.Decimal
}

// Thresholds is the ordered percentile rule a fund score is classified
// against. Bounds are strictly increasing; any score above the last bound
// maps to the terminal status.
type Thresholds struct {
	levels   []Threshold
	terminal string
}

// NewThresholds validates and constructs a threshold configuration. Invalid
// ordering is a precondition violation surfaced at load time, not per record.
func NewThresholds(levels []Threshold, terminal string) (Thresholds, error) {
	if len(levels) == 0 {
		return Thresholds{}, fmt.Errorf("thresholds: at least one level required")
	}
	if terminal == "" {
		return Thresholds{}, fmt.Errorf("thresholds: terminal status label required")
	}
	for i, lvl := range levels {
		if lvl.Label == "" {
			return Thresholds{}, fmt.Errorf("thresholds: level %d has empty label", i)
		}
		if i > 0 && !lvl.Bound.GreaterThan(levels[i-1].Bound) {
			return Thresholds{}, fmt.Errorf("thresholds: bounds must be strictly increasing, %s (%s) does not exceed %s (%s)",
				lvl.Label, lvl.Bound, levels[i-1].Label, levels[i-1].Bound)
		}
	}
	out := Thresholds{levels: make([]Threshold, len(levels)), terminal: terminal}
	copy(out.levels, levels)
	return out, nil
}

// Classify returns the label of the first bound, in ascending order, that
// score is less than or equal to, or the terminal label when the score
// exceeds every configured bound.
func (t Thresholds) Classify(score decimal.Decimal) string {
	for _, lvl := range t.levels {
		if score.LessThanOrEqual(lvl.Bound) {
			return lvl.Label
		}
	}
	return t.terminal
}

// Levels returns the configured levels in ascending bound order.
func (t Thresholds) Levels() []Threshold {
	out := make([]Threshold, len(t.levels))
	copy(out, t.levels)
	return out
}

// Terminal returns the status assigned beyond the last bound.
func (t Thresholds) Terminal() string {
	return t.terminal
}

// Labels returns every status label in classification order, terminal last.
func (t Thresholds) Labels() []string {
	out := make([]string, 0, len(t.levels)+1)
	for _, lvl := range t.levels {
		out = append(out, lvl.Label)
	}
	return append(out, t.terminal)
}
