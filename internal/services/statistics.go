package services

import (
	"slices"
	"strconv"
)

var (
	// WorkingHoursBinEdges bucket activity durations in person-days.
	WorkingHoursBinEdges = []float64{0, 0.5, 1, 2, 3, 5}
	// CycleTimeBinEdges bucket task cycle times in days.
	CycleTimeBinEdges = []float64{0, 1, 2, 3, 5, 8}
)

// histogram counts samples per bin. Bin i covers (edges[i], edges[i+1]];
// the first bin also takes its lower edge and the last bin everything above.
func histogram(samples []float64, edges []float64) Histogram {
	labels := make([]string, len(edges))
	for i, edge := range edges {
		labels[i] = strconv.FormatFloat(edge, 'f', -1, 64)
	}

	frequencies := make([]int, len(edges)-1)
	for _, sample := range samples {
		frequencies[binIndex(sample, edges)]++
	}
	return Histogram{BinEdges: labels, Frequencies: frequencies}
}

func binIndex(sample float64, edges []float64) int {
	last := len(edges) - 2
	for i := 0; i < last; i++ {
		if sample <= edges[i+1] {
			return i
		}
	}
	return last
}

// fiveNumberSummary splits the sorted sample in halves recursively: the
// quartiles are the medians of the halves and the outer edges the extremes
// of the outermost quarters. Samples too small for a lowest quarter report
// a zero minimum.
func fiveNumberSummary(samples []float64) Median {
	sorted := slices.Clone(samples)
	slices.Sort(sorted)

	lower, upper := halves(sorted)
	lowest, _ := halves(lower)

	var summary Median
	if len(lowest) > 0 {
		summary.Edge0 = lowest[0]
	}
	summary.Edge25 = median(lower)
	summary.Edge50 = median(sorted)
	summary.Edge75 = median(upper)
	if n := len(sorted); n > 0 {
		summary.Edge100 = sorted[n-1]
	}
	return summary
}

// halves splits a sorted sample; an odd middle value goes to the upper half.
func halves(sorted []float64) ([]float64, []float64) {
	mid := len(sorted) / 2
	return sorted[:mid], sorted[mid:]
}

// median of a sorted sample, averaging the middle pair at even counts.
func median(sorted []float64) float64 {
	n := len(sorted)
	switch {
	case n == 0:
		return 0
	case n%2 == 1:
		return sorted[n/2]
	default:
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
}
