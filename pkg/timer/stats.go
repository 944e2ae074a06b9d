package timer

import (
	"slices"
	"time"
)

// Statistics summarizes a batch of run durations.
type Statistics struct {
	// Samples holds one duration per run, in run order.
	Samples []time.Duration

	Min     time.Duration
	Max     time.Duration
	Total   time.Duration
	Average time.Duration

	// Median is the middle sorted sample, or the truncated mean of the two
	// middle samples when the batch size is even.
	Median time.Duration
}

// Summarize computes Statistics over samples. Average is Total divided by
// the sample count with integer truncation.
func Summarize(samples []time.Duration) (Statistics, error) {
	if len(samples) == 0 {
		return Statistics{}, ErrNoSamples
	}

	stats := Statistics{Samples: slices.Clone(samples)}

	sorted := slices.Clone(samples)
	slices.Sort(sorted)

	stats.Min = sorted[0]
	stats.Max = sorted[len(sorted)-1]
	stats.Median = median(sorted)

	for _, s := range samples {
		stats.Total += s
	}

	stats.Average = stats.Total / time.Duration(len(samples))

	return stats, nil
}

func median(sorted []time.Duration) time.Duration {
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}

	return (sorted[mid-1] + sorted[mid]) / 2
}

// Runs is the batch size.
func (s Statistics) Runs() int {
	return len(s.Samples)
}
