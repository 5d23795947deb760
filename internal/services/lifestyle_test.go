package services

import (
	"testing"

	"github.com/terraincognita07/ovumcy-insights/internal/models"
)

func intPtr(value int) *int {
	return &value
}

func TestSummarizeLifestyle(t *testing.T) {
	sleep := 7.5
	shortSleep := 6.0
	logs := []models.LogEntry{
		{Date: mustParseDay(t, "2024-01-02"), LogType: models.LogTypeMood, StressLevel: intPtr(2), Moods: []models.Mood{models.MoodCalm}, SleepHours: &sleep},
		{Date: mustParseDay(t, "2024-01-02"), LogType: models.LogTypeMood, StressLevel: intPtr(4), Moods: []models.Mood{models.MoodTired}},
		{Date: mustParseDay(t, "2024-01-03"), LogType: models.LogTypeMood, SleepQuality: intPtr(3), Moods: []models.Mood{models.MoodTired, models.MoodAnxious}, SleepHours: &shortSleep},
		{Date: mustParseDay(t, "2023-12-01"), LogType: models.LogTypeMood, StressLevel: intPtr(5)},
		{LogType: models.LogTypeMood, StressLevel: intPtr(5)},
	}

	summary := SummarizeLifestyle(logs, mustParseDay(t, "2024-01-01"), mustParseDay(t, "2024-01-31"))
	if summary.DaysLogged != 2 {
		t.Fatalf("expected 2 logged days, got %d", summary.DaysLogged)
	}
	if summary.AvgStress == nil || *summary.AvgStress != 3 {
		t.Fatalf("expected avg stress 3, got %v", summary.AvgStress)
	}
	if summary.AvgSleepQuality == nil || *summary.AvgSleepQuality != 3 {
		t.Fatalf("expected avg sleep quality 3, got %v", summary.AvgSleepQuality)
	}
	if summary.AvgSleepHours == nil || *summary.AvgSleepHours != 6.8 {
		t.Fatalf("expected avg sleep hours 6.8, got %v", summary.AvgSleepHours)
	}
	if summary.AvgWaterIntake != nil {
		t.Fatalf("expected no water average, got %v", *summary.AvgWaterIntake)
	}
	if len(summary.TopMoods) != 3 || summary.TopMoods[0].Mood != models.MoodTired || summary.TopMoods[0].Count != 2 {
		t.Fatalf("unexpected top moods: %#v", summary.TopMoods)
	}
	if summary.TopMoods[1].Mood != models.MoodAnxious {
		t.Fatalf("expected ties ordered by mood, got %#v", summary.TopMoods)
	}
}

func TestSummarizeLifestyleEmpty(t *testing.T) {
	summary := SummarizeLifestyle(nil, mustParseDay(t, "2024-01-01"), mustParseDay(t, "2024-01-31"))
	if summary.DaysLogged != 0 || summary.AvgStress != nil || summary.TopMoods == nil || len(summary.TopMoods) != 0 {
		t.Fatalf("unexpected empty summary: %#v", summary)
	}
}
