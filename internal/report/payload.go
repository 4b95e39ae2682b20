package report

import (
	"encoding/json"
	"os"
	"time"

	"fund-screening/internal/screening"
)

// Payload is the structured input consumed by the external compliance
// document renderer. This engine only assembles it; rendering happens
// elsewhere.
type Payload struct {
	Category    string         `json:"category"`
	Quarter     string         `json:"quarter"`
	GeneratedAt time.Time      `json:"generated_at"`
	Summary     Summary        `json:"summary"`
	Funds       []Fund         `json:"funds"`
	Weights     []MetricWeight `json:"metric_weights,omitempty"`
}

// Summary aggregates classification counts for the category.
type Summary struct {
	Total    int           `json:"total"`
	Unscored int           `json:"unscored"`
	ByStatus []StatusCount `json:"by_status"`
}

// StatusCount is one status tally, emitted in classification order.
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// Fund is one classified row of the report.
type Fund struct {
	Symbol     string `json:"symbol"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	Percentile string `json:"percentile"`
	Status     string `json:"status"`
}

// MetricWeight documents the screening methodology; informational only.
type MetricWeight struct {
	Metric string `json:"metric"`
	Weight string `json:"weight"`
}

// BuildPayload assembles the renderer payload from a classified category.
func BuildPayload(category, quarter string, res screening.Result, th screening.Thresholds, weights []MetricWeight) Payload {
	counts := res.StatusCounts()
	summary := Summary{
		Total:    len(res.Classified) + len(res.Unscored),
		Unscored: len(res.Unscored),
	}
	for _, label := range th.Labels() {
		summary.ByStatus = append(summary.ByStatus, StatusCount{Status: label, Count: counts[label]})
	}

	funds := make([]Fund, 0, len(res.Classified))
	for _, rec := range res.Classified {
		funds = append(funds, Fund{
			Symbol:     rec.Symbol,
			Name:       rec.Name,
			Category:   rec.Category,
			Percentile: rec.Score.StringFixed(2),
			Status:     rec.Status,
		})
	}

	return Payload{
		Category:    category,
		Quarter:     quarter,
		GeneratedAt: time.Now().UTC(),
		Summary:     summary,
		Funds:       funds,
		Weights:     weights,
	}
}

// WriteJSON persists the payload for the renderer to pick up.
func WriteJSON(path string, payload Payload) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
