package services

import "math"

// CycleStats summarises completed cycles. Numeric fields stay nil when no
// cycle has a known length yet.
type CycleStats struct {
	Avg             *float64 `json:"avg"`
	Variance        *float64 `json:"variance"`
	StdDev          *float64 `json:"std_dev"`
	Min             *int     `json:"min"`
	Max             *int     `json:"max"`
	Count           int      `json:"count"`
	Last3           []int    `json:"last3"`
	AvgPeriodLength *float64 `json:"avg_period_length"`
}

func CalculateCycleStats(cycles []Cycle) CycleStats {
	stats := CycleStats{Last3: []int{}}
	stats.AvgPeriodLength = averagePeriodLength(cycles)

	lengths := completedCycleLengths(cycles)
	if len(lengths) == 0 {
		return stats
	}

	mean, variance := meanAndPopulationVariance(lengths)
	stdDev := math.Sqrt(variance)
	minLength, maxLength := minMaxInts(lengths)

	stats.Avg = floatPtr(roundToTenth(mean))
	stats.Variance = floatPtr(roundToTenth(variance))
	stats.StdDev = floatPtr(roundToTenth(stdDev))
	stats.Min = &minLength
	stats.Max = &maxLength
	stats.Count = len(lengths)
	stats.Last3 = append([]int{}, tailInts(lengths, 3)...)
	return stats
}

func averagePeriodLength(cycles []Cycle) *float64 {
	if len(cycles) == 0 {
		return nil
	}
	lengths := make([]int, 0, len(cycles))
	for _, cycle := range cycles {
		lengths = append(lengths, cycle.PeriodLength)
	}
	mean, _ := meanAndPopulationVariance(lengths)
	return floatPtr(roundToTenth(mean))
}

func meanAndPopulationVariance(values []int) (float64, float64) {
	if len(values) == 0 {
		return 0, 0
	}
	var total float64
	for _, value := range values {
		total += float64(value)
	}
	mean := total / float64(len(values))

	var squares float64
	for _, value := range values {
		delta := float64(value) - mean
		squares += delta * delta
	}
	return mean, squares / float64(len(values))
}

func minMaxInts(values []int) (int, int) {
	minValue, maxValue := values[0], values[0]
	for _, value := range values[1:] {
		if value < minValue {
			minValue = value
		}
		if value > maxValue {
			maxValue = value
		}
	}
	return minValue, maxValue
}

func roundToTenth(value float64) float64 {
	return math.Round(value*10) / 10
}

func floatPtr(value float64) *float64 {
	return &value
}
