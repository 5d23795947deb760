package services

import (
	"math"
	"time"

	"github.com/terraincognita07/ovumcy-insights/internal/models"
)

type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

const (
	weightedAverageMinCycles = 3
	weightedAverageWindow    = 6
	maxPredictionRangeDays   = 7
	lowConfidenceStdDev      = 5.0
	mediumConfidenceStdDev   = 2.5
)

type Prediction struct {
	PredictedDate  time.Time  `json:"predicted_date"`
	RangeStart     time.Time  `json:"range_start"`
	RangeEnd       time.Time  `json:"range_end"`
	Confidence     Confidence `json:"confidence"`
	AvgCycleLength float64    `json:"avg_cycle_length"`
	StdDev         *float64   `json:"std_dev"`
	CyclesAnalyzed int        `json:"cycles_analyzed"`
}

// PredictNextPeriod forecasts the next period start. It returns nil when no
// cycle has been logged at all.
func PredictNextPeriod(cycles []Cycle, settings *models.CycleSettings) *Prediction {
	last, ok := latestCycle(cycles)
	if !ok {
		return nil
	}

	stats := CalculateCycleStats(cycles)
	lengths := completedCycleLengths(cycles)
	avgLength, analyzed := estimateCycleLength(lengths, stats, settings)

	anchor := last.Start
	if settings != nil && settings.LastPeriodStart != nil && !settings.LastPeriodStart.IsZero() {
		anchor = calendarDay(*settings.LastPeriodStart)
	}
	if anchor.IsZero() {
		return nil
	}

	predicted := addDays(anchor, int(math.Round(avgLength)))
	width := predictionRangeDays(stats.StdDev)

	return &Prediction{
		PredictedDate:  predicted,
		RangeStart:     addDays(predicted, -width),
		RangeEnd:       addDays(predicted, width),
		Confidence:     predictionConfidence(stats),
		AvgCycleLength: roundToTenth(avgLength),
		StdDev:         stats.StdDev,
		CyclesAnalyzed: analyzed,
	}
}

// estimateCycleLength prefers a recency-weighted mean once three cycles are
// complete, then the plain mean, then the declared setting, then 28.
func estimateCycleLength(lengths []int, stats CycleStats, settings *models.CycleSettings) (float64, int) {
	if len(lengths) >= weightedAverageMinCycles {
		recent := tailInts(lengths, weightedAverageWindow)
		return linearlyWeightedAverage(recent), len(recent)
	}
	if stats.Avg != nil {
		return *stats.Avg, stats.Count
	}
	if settings != nil && settings.AverageCycleLength > 0 {
		return float64(settings.AverageCycleLength), 0
	}
	return models.DefaultCycleLength, 0
}

func linearlyWeightedAverage(values []int) float64 {
	var weighted, weights float64
	for index, value := range values {
		weight := float64(index + 1)
		weighted += float64(value) * weight
		weights += weight
	}
	if weights == 0 {
		return 0
	}
	return weighted / weights
}

func predictionRangeDays(stdDev *float64) int {
	if stdDev == nil {
		return 1
	}
	width := int(math.Round(*stdDev))
	if width > maxPredictionRangeDays {
		width = maxPredictionRangeDays
	}
	if width < 1 {
		width = 1
	}
	return width
}

// predictionConfidence lets data scarcity dominate variance: fewer than three
// completed cycles never reach high.
func predictionConfidence(stats CycleStats) Confidence {
	stdDev := 0.0
	if stats.StdDev != nil {
		stdDev = *stats.StdDev
	}
	switch {
	case stats.Count == 0 || stdDev > lowConfidenceStdDev:
		return ConfidenceLow
	case stats.Count < weightedAverageMinCycles || stdDev > mediumConfidenceStdDev:
		return ConfidenceMedium
	default:
		return ConfidenceHigh
	}
}
