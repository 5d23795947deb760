package services

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/terraincognita07/ovumcy-insights/internal/models"
)

type logEntryRepositoryStub struct {
	entries   map[uuid.UUID]models.LogEntry
	listErr   error
	findErr   error
	createErr error
	deleteErr error
	lastLimit int
}

func newLogEntryRepositoryStub(entries ...models.LogEntry) *logEntryRepositoryStub {
	stub := &logEntryRepositoryStub{entries: make(map[uuid.UUID]models.LogEntry)}
	for _, entry := range entries {
		if entry.ID == uuid.Nil {
			entry.ID = uuid.New()
		}
		stub.entries[entry.ID] = entry
	}
	return stub
}

func (stub *logEntryRepositoryStub) sorted(userID uint, keep func(models.LogEntry) bool) []models.LogEntry {
	logs := make([]models.LogEntry, 0)
	for _, entry := range stub.entries {
		if entry.UserID == userID && keep(entry) {
			logs = append(logs, entry)
		}
	}
	sort.Slice(logs, func(i, j int) bool {
		return logs[i].Date.Before(logs[j].Date)
	})
	return logs
}

func (stub *logEntryRepositoryStub) ListByUserRange(_ context.Context, userID uint, fromStart *time.Time, toEnd *time.Time) ([]models.LogEntry, error) {
	if stub.listErr != nil {
		return nil, stub.listErr
	}
	return stub.sorted(userID, func(entry models.LogEntry) bool {
		if fromStart != nil && entry.Date.Before(*fromStart) {
			return false
		}
		return toEnd == nil || entry.Date.Before(*toEnd)
	}), nil
}

func (stub *logEntryRepositoryStub) ListRecentByUser(_ context.Context, userID uint, limit int) ([]models.LogEntry, error) {
	stub.lastLimit = limit
	if stub.listErr != nil {
		return nil, stub.listErr
	}
	logs := stub.sorted(userID, func(models.LogEntry) bool { return true })
	if limit > 0 && len(logs) > limit {
		logs = logs[len(logs)-limit:]
	}
	return logs, nil
}

func (stub *logEntryRepositoryStub) ListPeriodEntries(_ context.Context, userID uint) ([]models.LogEntry, error) {
	if stub.listErr != nil {
		return nil, stub.listErr
	}
	return stub.sorted(userID, models.LogEntry.IsPeriod), nil
}

func (stub *logEntryRepositoryStub) FindByID(_ context.Context, userID uint, id uuid.UUID) (models.LogEntry, bool, error) {
	if stub.findErr != nil {
		return models.LogEntry{}, false, stub.findErr
	}
	entry, ok := stub.entries[id]
	if !ok || entry.UserID != userID {
		return models.LogEntry{}, false, nil
	}
	return entry, true, nil
}

func (stub *logEntryRepositoryStub) Create(_ context.Context, entry *models.LogEntry) error {
	if stub.createErr != nil {
		return stub.createErr
	}
	stub.entries[entry.ID] = *entry
	return nil
}

func (stub *logEntryRepositoryStub) Delete(_ context.Context, userID uint, id uuid.UUID) error {
	if stub.deleteErr != nil {
		return stub.deleteErr
	}
	if entry, ok := stub.entries[id]; ok && entry.UserID == userID {
		delete(stub.entries, id)
	}
	return nil
}

type settingsRepositoryStub struct {
	rows    map[uint]models.CycleSettings
	findErr error
	saveErr error
	saves   int
}

func newSettingsRepositoryStub(rows ...models.CycleSettings) *settingsRepositoryStub {
	stub := &settingsRepositoryStub{rows: make(map[uint]models.CycleSettings)}
	for _, row := range rows {
		stub.rows[row.UserID] = row
	}
	return stub
}

func (stub *settingsRepositoryStub) FindByUser(_ context.Context, userID uint) (models.CycleSettings, bool, error) {
	if stub.findErr != nil {
		return models.CycleSettings{}, false, stub.findErr
	}
	row, ok := stub.rows[userID]
	return row, ok, nil
}

func (stub *settingsRepositoryStub) Save(_ context.Context, settings *models.CycleSettings) error {
	if stub.saveErr != nil {
		return stub.saveErr
	}
	stub.saves++
	stub.rows[settings.UserID] = *settings
	return nil
}
