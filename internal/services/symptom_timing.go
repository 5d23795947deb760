package services

import (
	"sort"
	"time"

	"github.com/terraincognita07/ovumcy-insights/internal/models"
)

const (
	minSymptomOccurrences = 2
	typicalDayBand        = 2.0
)

// SymptomPattern describes on which cycle days a symptom tends to recur.
type SymptomPattern struct {
	Symptom      models.SymptomID `json:"symptom"`
	Count        int              `json:"count"`
	AvgDay       float64          `json:"avg_day"`
	TypicalStart int              `json:"typical_start"`
	TypicalEnd   int              `json:"typical_end"`
	Spread       int              `json:"spread"`
	Days         []int            `json:"days"`
}

func AnalyzeSymptomTiming(logs []models.LogEntry, cycles []Cycle, maxCycleDay int) []SymptomPattern {
	if maxCycleDay <= 0 {
		maxCycleDay = DefaultMaxSymptomCycleDay
	}
	sorted := sortedCycles(cycles)
	if len(sorted) == 0 {
		return []SymptomPattern{}
	}

	occurrences := make(map[models.SymptomID][]int)
	for _, entry := range logs {
		if len(entry.Symptoms) == 0 || !entry.HasDate() {
			continue
		}
		cycle, ok := cycleContaining(sorted, entry.Date)
		if !ok {
			continue
		}
		cycleDay := daysBetween(cycle.Start, entry.Date) + 1
		if cycleDay < 1 || cycleDay > maxCycleDay {
			continue
		}
		for _, symptom := range entry.Symptoms {
			if symptom.ID == "" {
				continue
			}
			occurrences[symptom.ID] = append(occurrences[symptom.ID], cycleDay)
		}
	}

	patterns := make([]SymptomPattern, 0, len(occurrences))
	for symptom, days := range occurrences {
		if len(days) < minSymptomOccurrences {
			continue
		}
		patterns = append(patterns, buildSymptomPattern(symptom, days))
	}

	sort.SliceStable(patterns, func(i, j int) bool {
		if patterns[i].Count != patterns[j].Count {
			return patterns[i].Count > patterns[j].Count
		}
		return patterns[i].Symptom < patterns[j].Symptom
	})
	return patterns
}

func buildSymptomPattern(symptom models.SymptomID, days []int) SymptomPattern {
	sortedDays := append([]int{}, days...)
	sort.Ints(sortedDays)

	mean, _ := meanAndPopulationVariance(sortedDays)
	minDay, maxDay := minMaxInts(sortedDays)

	typical := make([]int, 0, len(sortedDays))
	for _, day := range sortedDays {
		if diff := float64(day) - mean; diff >= -typicalDayBand && diff <= typicalDayBand {
			typical = append(typical, day)
		}
	}
	typicalStart, typicalEnd := minDay, maxDay
	if len(typical) > 0 {
		typicalStart, typicalEnd = minMaxInts(typical)
	}

	return SymptomPattern{
		Symptom:      symptom,
		Count:        len(sortedDays),
		AvgDay:       roundToTenth(mean),
		TypicalStart: typicalStart,
		TypicalEnd:   typicalEnd,
		Spread:       maxDay - minDay,
		Days:         sortedDays,
	}
}

// cycleContaining expects cycles in chronological order. A day belongs to
// cycle i when it is on or after its start and before the next cycle starts.
func cycleContaining(cycles []Cycle, day time.Time) (Cycle, bool) {
	day = calendarDay(day)
	for index, cycle := range cycles {
		if day.Before(cycle.Start) {
			continue
		}
		if index+1 == len(cycles) || day.Before(cycles[index+1].Start) {
			return cycle, true
		}
	}
	return Cycle{}, false
}
