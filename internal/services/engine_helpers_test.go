package services

import (
	"testing"
	"time"

	"github.com/terraincognita07/ovumcy-insights/internal/models"
)

func mustParseDay(t *testing.T, raw string) time.Time {
	t.Helper()
	parsed, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
	if err != nil {
		t.Fatalf("parse day %q: %v", raw, err)
	}
	return parsed
}

func makePeriodLog(t *testing.T, date string, flow models.FlowIntensity) models.LogEntry {
	t.Helper()
	return models.LogEntry{
		Date:          mustParseDay(t, date),
		LogType:       models.LogTypePeriod,
		FlowIntensity: flow,
	}
}

func makePeriodLogs(t *testing.T, dates ...string) []models.LogEntry {
	t.Helper()
	logs := make([]models.LogEntry, 0, len(dates))
	for _, date := range dates {
		logs = append(logs, makePeriodLog(t, date, models.FlowMedium))
	}
	return logs
}

func makeSymptomLog(t *testing.T, date string, symptoms ...string) models.LogEntry {
	t.Helper()
	entry := models.LogEntry{
		Date:    mustParseDay(t, date),
		LogType: models.LogTypeSymptom,
	}
	for _, raw := range symptoms {
		symptom, ok := models.ParseSymptom(raw)
		if !ok {
			t.Fatalf("parse symptom %q", raw)
		}
		entry.Symptoms = append(entry.Symptoms, symptom)
	}
	return entry
}

func settingsWithStart(t *testing.T, start string) *models.CycleSettings {
	t.Helper()
	settings := models.DefaultCycleSettings(1)
	day := mustParseDay(t, start)
	settings.LastPeriodStart = &day
	return &settings
}

func assertDay(t *testing.T, label string, got time.Time, want string) {
	t.Helper()
	if formatted := got.Format("2006-01-02"); formatted != want {
		t.Fatalf("expected %s %s, got %s", label, want, formatted)
	}
}
