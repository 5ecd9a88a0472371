package benchmark

import "fmt"

// Comparison is the change of one strategy's summary between two runs.
type Comparison struct {
	Name    string
	AvgDiff float64 // Percentage change
	MinDiff float64 // Percentage change
	MaxDiff float64 // Percentage change
	Prev    Result
	Curr    Result
}

// Compare runs comparison between two results.
// It returns a list of comparisons for strategies present in both runs.
func Compare(prev, curr Run) []Comparison {
	prevMap := make(map[string]Result)
	for _, r := range prev.Results {
		prevMap[r.Name] = r
	}

	var comparisons []Comparison
	for _, c := range curr.Results {
		p, ok := prevMap[c.Name]
		if !ok {
			continue
		}
		comparisons = append(comparisons, Comparison{
			Name:    c.Name,
			AvgDiff: percentChange(p.Summary.Avg, c.Summary.Avg),
			MinDiff: percentChange(p.Summary.Min, c.Summary.Min),
			MaxDiff: percentChange(p.Summary.Max, c.Summary.Max),
			Prev:    p,
			Curr:    c,
		})
	}
	return comparisons
}

// Regressions returns the comparisons whose average slowed down by more than
// threshold percent.
func Regressions(comps []Comparison, threshold float64) []Comparison {
	var slow []Comparison
	for _, c := range comps {
		if c.AvgDiff > threshold {
			slow = append(slow, c)
		}
	}
	return slow
}

// percentChange is 0 when prev is 0; millisecond averages of 0 carry no signal.
func percentChange(prev, curr int64) float64 {
	if prev <= 0 {
		return 0
	}
	return float64(curr-prev) / float64(prev) * 100
}

func (c Comparison) String() string {
	return fmt.Sprintf("%s: %+.2f%% avg ms", c.Name, c.AvgDiff)
}
