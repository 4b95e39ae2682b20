package screening

import "sort"

// Classified is a fund record with its qualitative status attached.
type Classified struct {
	FundRecord
	Status string
}

// Result holds the classified universe for one category view. Records
// without a score are not silently dropped; they are surfaced separately so
// the caller can warn that classification is unavailable for them.
type Result struct {
	// Classified is sorted ascending by score (lower percentile is better),
	// ties broken by ingestion order.
	Classified []Classified
	Unscored   []FundRecord
}

// Classify assigns each scored record the status of the first threshold its
// score falls under.
func Classify(u Universe, th Thresholds) Result {
	var res Result
	for _, rec := range u {
		if rec.Score == nil {
			res.Unscored = append(res.Unscored, rec)
			continue
		}
		res.Classified = append(res.Classified, Classified{
			FundRecord: rec,
			Status:     th.Classify(*rec.Score),
		})
	}

	sort.SliceStable(res.Classified, func(i, j int) bool {
		return res.Classified[i].Score.LessThan(*res.Classified[j].Score)
	})
	return res
}

// StatusCounts tallies classified records per status label.
func (r Result) StatusCounts() map[string]int {
	out := make(map[string]int, 4)
	for _, rec := range r.Classified {
		out[rec.Status]++
	}
	return out
}
