package services

import (
	"time"

	"github.com/terraincognita07/ovumcy-insights/internal/models"
)

const DefaultLifestyleWindowDays = 30

type InsightOptions struct {
	MergeGapDays        int
	MaxSymptomCycleDay  int
	LifestyleWindowDays int
}

func DefaultInsightOptions() InsightOptions {
	return InsightOptions{
		MergeGapDays:        DefaultMergeGapDays,
		MaxSymptomCycleDay:  DefaultMaxSymptomCycleDay,
		LifestyleWindowDays: DefaultLifestyleWindowDays,
	}
}

// CycleInsights bundles every derived record for one user snapshot.
type CycleInsights struct {
	ReferenceDate   time.Time        `json:"reference_date"`
	Cycles          []Cycle          `json:"cycles"`
	Stats           CycleStats       `json:"stats"`
	Prediction      *Prediction      `json:"prediction"`
	LateStatus      *LateStatus      `json:"late_status"`
	Irregularity    *Irregularity    `json:"irregularity"`
	SymptomPatterns []SymptomPattern `json:"symptom_patterns"`
	FertileWindow   *FertileWindow   `json:"fertile_window"`
	Phase           CyclePhase       `json:"phase"`
	Lifestyle       LifestyleSummary `json:"lifestyle"`
}

// BuildInsights runs the full pipeline. settings may be nil.
func BuildInsights(logs []models.LogEntry, settings *models.CycleSettings, today time.Time, options InsightOptions) CycleInsights {
	if options.LifestyleWindowDays <= 0 {
		options.LifestyleWindowDays = DefaultLifestyleWindowDays
	}
	today = calendarDay(today)

	cycles := BuildCycles(logs, options.MergeGapDays)
	stats := CalculateCycleStats(cycles)
	prediction := PredictNextPeriod(cycles, settings)

	avgCycleLength := referenceCycleLength(prediction, settings)
	var fertileWindow *FertileWindow
	if anchor, ok := ResolveAnchor(cycles, settings); ok {
		fertileWindow = CalculateFertileWindow(&anchor, avgCycleLength, today)
	}

	return CycleInsights{
		ReferenceDate:   today,
		Cycles:          cycles,
		Stats:           stats,
		Prediction:      prediction,
		LateStatus:      ClassifyLatePeriod(prediction, settings, today),
		Irregularity:    DetectIrregularity(cycles),
		SymptomPatterns: AnalyzeSymptomTiming(logs, cycles, options.MaxSymptomCycleDay),
		FertileWindow:   fertileWindow,
		Phase:           DetectCyclePhase(cycles, settings, avgCycleLength, today),
		Lifestyle:       SummarizeLifestyle(logs, addDays(today, -(options.LifestyleWindowDays-1)), today),
	}
}

func referenceCycleLength(prediction *Prediction, settings *models.CycleSettings) float64 {
	if prediction != nil && prediction.AvgCycleLength > 0 {
		return prediction.AvgCycleLength
	}
	if settings != nil && settings.AverageCycleLength > 0 {
		return float64(settings.AverageCycleLength)
	}
	return models.DefaultCycleLength
}
