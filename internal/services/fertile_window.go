package services

import (
	"math"
	"time"

	"github.com/terraincognita07/ovumcy-insights/internal/models"
)

const fertileWindowHalfWidth = 2

type FertileWindow struct {
	Ovulation          time.Time `json:"ovulation"`
	FertileStart       time.Time `json:"fertile_start"`
	FertileEnd         time.Time `json:"fertile_end"`
	IsFertileToday     bool      `json:"is_fertile_today"`
	DaysUntilStart     int       `json:"days_until_start"`
	DaysUntilEnd       int       `json:"days_until_end"`
	DaysUntilOvulation int       `json:"days_until_ovulation"`
	OvulationCycleDay  int       `json:"ovulation_cycle_day"`
	AverageCycleLength float64   `json:"average_cycle_length"`
}

// CalculateFertileWindow estimates ovulation at round(cycle/2)-2 days after
// the anchor and spans two days either side of it.
func CalculateFertileWindow(anchor *time.Time, avgCycleLength float64, today time.Time) *FertileWindow {
	if anchor == nil || anchor.IsZero() {
		return nil
	}
	if avgCycleLength <= 0 {
		avgCycleLength = models.DefaultCycleLength
	}

	offset := int(math.Round(avgCycleLength/2)) - 2
	ovulation := addDays(*anchor, offset)
	fertileStart := addDays(ovulation, -fertileWindowHalfWidth)
	fertileEnd := addDays(ovulation, fertileWindowHalfWidth)

	return &FertileWindow{
		Ovulation:          ovulation,
		FertileStart:       fertileStart,
		FertileEnd:         fertileEnd,
		IsFertileToday:     betweenCalendarDaysInclusive(today, fertileStart, fertileEnd),
		DaysUntilStart:     daysBetween(today, fertileStart),
		DaysUntilEnd:       daysBetween(today, fertileEnd),
		DaysUntilOvulation: daysBetween(today, ovulation),
		OvulationCycleDay:  offset + 1,
		AverageCycleLength: avgCycleLength,
	}
}

func FertileWindowFromSettings(settings *models.CycleSettings, today time.Time) *FertileWindow {
	if settings == nil {
		return nil
	}
	return CalculateFertileWindow(settings.LastPeriodStart, float64(settings.AverageCycleLength), today)
}
