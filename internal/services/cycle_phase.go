package services

import (
	"math"
	"time"

	"github.com/terraincognita07/ovumcy-insights/internal/models"
)

const (
	PhaseMenstrual  = "menstrual"
	PhaseFollicular = "follicular"
	PhaseFertile    = "fertile"
	PhaseOvulation  = "ovulation"
	PhaseLuteal     = "luteal"
	PhaseUnknown    = "unknown"
)

type CyclePhase struct {
	CurrentCycleDay int       `json:"current_cycle_day"`
	Phase           string    `json:"phase"`
	Anchor          time.Time `json:"anchor"`
}

// ResolveAnchor prefers the declared last period start over the most recent
// logged cycle.
func ResolveAnchor(cycles []Cycle, settings *models.CycleSettings) (time.Time, bool) {
	if settings != nil && settings.LastPeriodStart != nil && !settings.LastPeriodStart.IsZero() {
		return calendarDay(*settings.LastPeriodStart), true
	}
	if last, ok := latestCycle(cycles); ok {
		return last.Start, true
	}
	return time.Time{}, false
}

func DetectCyclePhase(cycles []Cycle, settings *models.CycleSettings, avgCycleLength float64, today time.Time) CyclePhase {
	phase := CyclePhase{Phase: PhaseUnknown}
	anchor, ok := ResolveAnchor(cycles, settings)
	if !ok || calendarDay(today).Before(anchor) {
		return phase
	}
	phase.Anchor = anchor
	phase.CurrentCycleDay = daysBetween(anchor, today) + 1

	for _, cycle := range cycles {
		if betweenCalendarDaysInclusive(today, cycle.Start, cycle.End) {
			phase.Phase = PhaseMenstrual
			return phase
		}
	}

	periodLength := expectedPeriodLength(cycles, settings)
	if phase.CurrentCycleDay <= periodLength {
		phase.Phase = PhaseMenstrual
		return phase
	}

	window := CalculateFertileWindow(&anchor, avgCycleLength, today)
	switch {
	case sameCalendarDay(today, window.Ovulation):
		phase.Phase = PhaseOvulation
	case window.IsFertileToday:
		phase.Phase = PhaseFertile
	case calendarDay(today).Before(window.Ovulation):
		phase.Phase = PhaseFollicular
	default:
		phase.Phase = PhaseLuteal
	}
	return phase
}

func expectedPeriodLength(cycles []Cycle, settings *models.CycleSettings) int {
	if avg := averagePeriodLength(cycles); avg != nil {
		if length := int(math.Round(*avg)); length > 0 {
			return length
		}
	}
	if settings != nil && settings.AveragePeriodLength > 0 {
		return settings.AveragePeriodLength
	}
	return models.DefaultPeriodLength
}
