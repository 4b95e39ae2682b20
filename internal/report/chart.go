package report

import (
	"errors"
	"os"

	chart "github.com/wcharczuk/go-chart/v2"

	"fund-screening/internal/screening"
)

// WriteChart renders the category's status distribution as a PNG bar chart.
func WriteChart(path, category string, res screening.Result, th screening.Thresholds) error {
	if len(res.Classified) == 0 {
		return errors.New("no classified funds to chart")
	}

	counts := res.StatusCounts()
	bars := make([]chart.Value, 0, 4)
	for _, label := range th.Labels() {
		bars = append(bars, chart.Value{
			Label: label,
			Value: float64(counts[label]),
		})
	}

	graph := chart.BarChart{
		Title:    category,
		Width:    960,
		Height:   540,
		BarWidth: 80,
		Bars:     bars,
		YAxis: chart.YAxis{
			Name: "Funds",
			ValueFormatter: func(v interface{}) string {
				return chart.FloatValueFormatterWithFormat(v, "%.0f")
			},
		},
	}

	if err := ensureDir(path); err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return graph.Render(chart.PNG, file)
}
