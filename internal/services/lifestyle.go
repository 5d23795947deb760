package services

import (
	"sort"
	"time"

	"github.com/terraincognita07/ovumcy-insights/internal/models"
)

type MoodCount struct {
	Mood  models.Mood `json:"mood"`
	Count int         `json:"count"`
}

type LifestyleSummary struct {
	DaysLogged      int         `json:"days_logged"`
	AvgStress       *float64    `json:"avg_stress"`
	AvgSleepQuality *float64    `json:"avg_sleep_quality"`
	AvgSleepHours   *float64    `json:"avg_sleep_hours"`
	AvgWaterIntake  *float64    `json:"avg_water_intake"`
	TopMoods        []MoodCount `json:"top_moods"`
}

type runningMean struct {
	total float64
	count int
}

func (mean *runningMean) add(value float64) {
	mean.total += value
	mean.count++
}

func (mean runningMean) value() *float64 {
	if mean.count == 0 {
		return nil
	}
	return floatPtr(roundToTenth(mean.total / float64(mean.count)))
}

// SummarizeLifestyle aggregates lifestyle metrics and moods logged between
// from and to, both inclusive.
func SummarizeLifestyle(logs []models.LogEntry, from time.Time, to time.Time) LifestyleSummary {
	var stress, sleepQuality, sleepHours, water runningMean
	days := make(map[time.Time]struct{})
	moods := make(map[models.Mood]int)

	for _, entry := range logs {
		if !entry.HasDate() || !betweenCalendarDaysInclusive(entry.Date, from, to) {
			continue
		}
		days[calendarDay(entry.Date)] = struct{}{}
		if entry.StressLevel != nil {
			stress.add(float64(*entry.StressLevel))
		}
		if entry.SleepQuality != nil {
			sleepQuality.add(float64(*entry.SleepQuality))
		}
		if entry.SleepHours != nil {
			sleepHours.add(*entry.SleepHours)
		}
		if entry.WaterIntake != nil {
			water.add(*entry.WaterIntake)
		}
		for _, mood := range entry.Moods {
			moods[mood]++
		}
	}

	topMoods := make([]MoodCount, 0, len(moods))
	for mood, count := range moods {
		topMoods = append(topMoods, MoodCount{Mood: mood, Count: count})
	}
	sort.Slice(topMoods, func(i, j int) bool {
		if topMoods[i].Count != topMoods[j].Count {
			return topMoods[i].Count > topMoods[j].Count
		}
		return topMoods[i].Mood < topMoods[j].Mood
	})

	return LifestyleSummary{
		DaysLogged:      len(days),
		AvgStress:       stress.value(),
		AvgSleepQuality: sleepQuality.value(),
		AvgSleepHours:   sleepHours.value(),
		AvgWaterIntake:  water.value(),
		TopMoods:        topMoods,
	}
}
