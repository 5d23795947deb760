package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/terraincognita07/ovumcy-insights/internal/models"
)

var (
	ErrLogEntryNotFound     = errors.New("log entry not found")
	ErrLogEntryLoadFailed   = errors.New("load log entry failed")
	ErrLogEntryCreateFailed = errors.New("create log entry failed")
	ErrLogEntryDeleteFailed = errors.New("delete log entry failed")
	ErrSyncLastPeriodFailed = errors.New("sync last period failed")
)

type LogEntryRepository interface {
	ListByUserRange(ctx context.Context, userID uint, fromStart *time.Time, toEnd *time.Time) ([]models.LogEntry, error)
	ListRecentByUser(ctx context.Context, userID uint, limit int) ([]models.LogEntry, error)
	ListPeriodEntries(ctx context.Context, userID uint) ([]models.LogEntry, error)
	FindByID(ctx context.Context, userID uint, id uuid.UUID) (models.LogEntry, bool, error)
	Create(ctx context.Context, entry *models.LogEntry) error
	Delete(ctx context.Context, userID uint, id uuid.UUID) error
}

type LogService struct {
	logs         LogEntryRepository
	settings     SettingsRepository
	mergeGapDays int
}

func NewLogService(logs LogEntryRepository, settings SettingsRepository, mergeGapDays int) *LogService {
	return &LogService{
		logs:         logs,
		settings:     settings,
		mergeGapDays: mergeGapDays,
	}
}

func (service *LogService) ListEntries(ctx context.Context, userID uint, from *time.Time, to *time.Time, location *time.Location) ([]models.LogEntry, error) {
	var fromStart *time.Time
	var toEnd *time.Time
	if from != nil {
		start, _ := DayRange(*from, location)
		fromStart = &start
	}
	if to != nil {
		_, end := DayRange(*to, location)
		toEnd = &end
	}
	return service.logs.ListByUserRange(ctx, userID, fromStart, toEnd)
}

func (service *LogService) ListRecentEntries(ctx context.Context, userID uint, limit int) ([]models.LogEntry, error) {
	return service.logs.ListRecentByUser(ctx, userID, limit)
}

func (service *LogService) CreateEntry(ctx context.Context, userID uint, input LogEntryInput, location *time.Location) (models.LogEntry, error) {
	entry, err := NormalizeLogEntryInput(userID, input, location)
	if err != nil {
		return models.LogEntry{}, err
	}
	entry.ID = uuid.New()

	if err := service.logs.Create(ctx, &entry); err != nil {
		return models.LogEntry{}, fmt.Errorf("%w: %v", ErrLogEntryCreateFailed, err)
	}
	if entry.IsPeriod() {
		if err := service.syncLastPeriod(ctx, userID, entry.Date, false); err != nil {
			return entry, err
		}
	}
	return entry, nil
}

func (service *LogService) DeleteEntry(ctx context.Context, userID uint, id uuid.UUID) error {
	entry, found, err := service.logs.FindByID(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrLogEntryLoadFailed, err)
	}
	if !found {
		return ErrLogEntryNotFound
	}
	if err := service.logs.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("%w: %v", ErrLogEntryDeleteFailed, err)
	}
	if entry.IsPeriod() {
		return service.syncLastPeriod(ctx, userID, entry.Date, true)
	}
	return nil
}

// syncLastPeriod re-derives the settings anchor from the most recent logged
// bleeding run, clearing it when no period entries remain. An anchor newer
// than the touched entry is left alone, so backfilling or removing an older
// period never moves it backwards.
func (service *LogService) syncLastPeriod(ctx context.Context, userID uint, touched time.Time, deleted bool) error {
	periodEntries, err := service.logs.ListPeriodEntries(ctx, userID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSyncLastPeriodFailed, err)
	}

	settings, found, err := service.settings.FindByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSyncLastPeriodFailed, err)
	}
	if !found {
		settings = models.DefaultCycleSettings(userID)
	}

	cycles := BuildCycles(periodEntries, service.mergeGapDays)
	latest, hasLatest := latestCycle(cycles)
	if settings.LastPeriodStart != nil {
		anchor := calendarDay(*settings.LastPeriodStart)
		if deleted && calendarDay(touched).Before(anchor) {
			return nil
		}
		if !deleted && hasLatest && latest.End.Before(anchor) {
			return nil
		}
	}

	if hasLatest {
		start, end := latest.Start, latest.End
		settings.LastPeriodStart = &start
		settings.LastPeriodEnd = &end
	} else {
		settings.LastPeriodStart = nil
		settings.LastPeriodEnd = nil
	}

	if err := service.settings.Save(ctx, &settings); err != nil {
		return fmt.Errorf("%w: %v", ErrSyncLastPeriodFailed, err)
	}
	return nil
}
