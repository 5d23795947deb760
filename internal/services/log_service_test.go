package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/terraincognita07/ovumcy-insights/internal/models"
)

func TestLogServiceCreatePeriodEntryRefreshesAnchor(t *testing.T) {
	logs := newLogEntryRepositoryStub()
	settings := newSettingsRepositoryStub()
	service := NewLogService(logs, settings, 0)
	ctx := context.Background()

	for _, day := range []string{"2024-01-01", "2024-01-02", "2024-01-29", "2024-01-30", "2024-01-31"} {
		if _, err := service.CreateEntry(ctx, 7, LogEntryInput{
			Date:          mustParseDay(t, day),
			LogType:       "period",
			FlowIntensity: "medium",
		}, time.UTC); err != nil {
			t.Fatalf("create %s: %v", day, err)
		}
	}

	row, ok := settings.rows[7]
	if !ok {
		t.Fatal("expected settings row to be created")
	}
	if row.LastPeriodStart == nil || row.LastPeriodEnd == nil {
		t.Fatalf("expected anchor to be set, got %#v", row)
	}
	assertDay(t, "last period start", *row.LastPeriodStart, "2024-01-29")
	assertDay(t, "last period end", *row.LastPeriodEnd, "2024-01-31")
	if row.AverageCycleLength != models.DefaultCycleLength {
		t.Fatalf("expected default priors on new row, got %d", row.AverageCycleLength)
	}
}

func TestLogServiceCreateNonPeriodEntrySkipsRefresh(t *testing.T) {
	logs := newLogEntryRepositoryStub()
	settings := newSettingsRepositoryStub()
	service := NewLogService(logs, settings, 0)

	entry, err := service.CreateEntry(context.Background(), 7, LogEntryInput{
		Date:          mustParseDay(t, "2024-01-05"),
		LogType:       "symptom",
		FlowIntensity: "heavy",
		Symptoms:      []string{"cramps:severe"},
	}, time.UTC)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if entry.ID == uuid.Nil {
		t.Fatal("expected generated id")
	}
	if entry.FlowIntensity != models.FlowNone {
		t.Fatalf("expected flow to be dropped on symptom entry, got %q", entry.FlowIntensity)
	}
	if settings.saves != 0 {
		t.Fatalf("expected no settings writes, got %d", settings.saves)
	}
}

func TestLogServiceCreateWrapsRepositoryError(t *testing.T) {
	logs := newLogEntryRepositoryStub()
	logs.createErr = errors.New("disk full")
	service := NewLogService(logs, newSettingsRepositoryStub(), 0)

	_, err := service.CreateEntry(context.Background(), 7, LogEntryInput{
		Date:    mustParseDay(t, "2024-01-05"),
		LogType: "note",
	}, time.UTC)
	if !errors.Is(err, ErrLogEntryCreateFailed) {
		t.Fatalf("expected ErrLogEntryCreateFailed, got %v", err)
	}
}

func TestLogServiceCreateRejectsInvalidInput(t *testing.T) {
	service := NewLogService(newLogEntryRepositoryStub(), newSettingsRepositoryStub(), 0)

	_, err := service.CreateEntry(context.Background(), 7, LogEntryInput{LogType: "period"}, time.UTC)
	if !errors.Is(err, ErrInvalidLogDate) {
		t.Fatalf("expected ErrInvalidLogDate, got %v", err)
	}
}

func TestLogServiceDeleteLastPeriodClearsAnchor(t *testing.T) {
	entry := makePeriodLog(t, "2024-01-01", models.FlowLight)
	entry.UserID = 7
	entry.ID = uuid.New()
	logs := newLogEntryRepositoryStub(entry)
	row := *settingsWithStart(t, "2024-01-01")
	row.UserID = 7
	settings := newSettingsRepositoryStub(row)
	service := NewLogService(logs, settings, 0)

	if err := service.DeleteEntry(context.Background(), 7, entry.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(logs.entries) != 0 {
		t.Fatalf("expected entry to be removed")
	}
	if updated := settings.rows[7]; updated.LastPeriodStart != nil || updated.LastPeriodEnd != nil {
		t.Fatalf("expected anchor to be cleared, got %#v", updated)
	}
}

func TestLogServiceBackfillKeepsNewerAnchor(t *testing.T) {
	row := *settingsWithStart(t, "2024-05-01")
	row.UserID = 7
	settings := newSettingsRepositoryStub(row)
	service := NewLogService(newLogEntryRepositoryStub(), settings, 0)
	ctx := context.Background()

	if _, err := service.CreateEntry(ctx, 7, LogEntryInput{
		Date:          mustParseDay(t, "2024-01-01"),
		LogType:       "period",
		FlowIntensity: "medium",
	}, time.UTC); err != nil {
		t.Fatalf("create: %v", err)
	}

	updated := settings.rows[7]
	if updated.LastPeriodStart == nil {
		t.Fatal("expected declared anchor to survive backfill")
	}
	assertDay(t, "last period start", *updated.LastPeriodStart, "2024-05-01")

	if _, err := service.CreateEntry(ctx, 7, LogEntryInput{
		Date:          mustParseDay(t, "2024-05-29"),
		LogType:       "period",
		FlowIntensity: "medium",
	}, time.UTC); err != nil {
		t.Fatalf("create: %v", err)
	}
	assertDay(t, "last period start", *settings.rows[7].LastPeriodStart, "2024-05-29")
}

func TestLogServiceDeleteOlderPeriodKeepsAnchor(t *testing.T) {
	older := makePeriodLog(t, "2024-01-01", models.FlowLight)
	older.UserID = 7
	older.ID = uuid.New()
	latest := makePeriodLog(t, "2024-01-29", models.FlowLight)
	latest.UserID = 7
	latest.ID = uuid.New()
	row := *settingsWithStart(t, "2024-01-29")
	row.UserID = 7
	settings := newSettingsRepositoryStub(row)
	service := NewLogService(newLogEntryRepositoryStub(older, latest), settings, 0)

	if err := service.DeleteEntry(context.Background(), 7, older.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if settings.saves != 0 {
		t.Fatalf("expected anchor untouched, got %d settings writes", settings.saves)
	}
	assertDay(t, "last period start", *settings.rows[7].LastPeriodStart, "2024-01-29")
}

func TestLogServiceDeleteErrors(t *testing.T) {
	entry := makePeriodLog(t, "2024-01-01", models.FlowLight)
	entry.UserID = 7
	entry.ID = uuid.New()
	ctx := context.Background()

	service := NewLogService(newLogEntryRepositoryStub(entry), newSettingsRepositoryStub(), 0)
	if err := service.DeleteEntry(ctx, 8, entry.ID); !errors.Is(err, ErrLogEntryNotFound) {
		t.Fatalf("expected ErrLogEntryNotFound for other user, got %v", err)
	}

	failingFind := newLogEntryRepositoryStub(entry)
	failingFind.findErr = errors.New("locked")
	service = NewLogService(failingFind, newSettingsRepositoryStub(), 0)
	if err := service.DeleteEntry(ctx, 7, entry.ID); !errors.Is(err, ErrLogEntryLoadFailed) {
		t.Fatalf("expected ErrLogEntryLoadFailed, got %v", err)
	}

	failingDelete := newLogEntryRepositoryStub(entry)
	failingDelete.deleteErr = errors.New("locked")
	service = NewLogService(failingDelete, newSettingsRepositoryStub(), 0)
	if err := service.DeleteEntry(ctx, 7, entry.ID); !errors.Is(err, ErrLogEntryDeleteFailed) {
		t.Fatalf("expected ErrLogEntryDeleteFailed, got %v", err)
	}

	failingSave := newSettingsRepositoryStub()
	failingSave.saveErr = errors.New("readonly")
	service = NewLogService(newLogEntryRepositoryStub(entry), failingSave, 0)
	if err := service.DeleteEntry(ctx, 7, entry.ID); !errors.Is(err, ErrSyncLastPeriodFailed) {
		t.Fatalf("expected ErrSyncLastPeriodFailed, got %v", err)
	}
}

func TestLogServiceListEntriesUsesDayBounds(t *testing.T) {
	first := makePeriodLog(t, "2024-01-01", models.FlowLight)
	second := makeSymptomLog(t, "2024-01-10", "acne")
	third := makeSymptomLog(t, "2024-01-20", "acne")
	for _, entry := range []*models.LogEntry{&first, &second, &third} {
		entry.UserID = 7
	}
	service := NewLogService(newLogEntryRepositoryStub(first, second, third), newSettingsRepositoryStub(), 0)

	from := mustParseDay(t, "2024-01-10")
	to := mustParseDay(t, "2024-01-10")
	entries, err := service.ListEntries(context.Background(), 7, &from, &to, time.UTC)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected a single entry on 2024-01-10, got %d", len(entries))
	}

	all, err := service.ListEntries(context.Background(), 7, nil, nil, time.UTC)
	if err != nil || len(all) != 3 {
		t.Fatalf("expected all 3 entries, got %d (%v)", len(all), err)
	}
}
