package db

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/terraincognita07/ovumcy-insights/internal/models"
	"gorm.io/gorm"
)

type LogEntryRepository struct {
	database *gorm.DB
}

func NewLogEntryRepository(database *gorm.DB) *LogEntryRepository {
	return &LogEntryRepository{database: database}
}

func (repo *LogEntryRepository) ListByUserRange(ctx context.Context, userID uint, fromStart *time.Time, toEnd *time.Time) ([]models.LogEntry, error) {
	query := repo.database.WithContext(ctx).Model(&models.LogEntry{}).Where("user_id = ?", userID)
	if fromStart != nil {
		query = query.Where("date >= ?", *fromStart)
	}
	if toEnd != nil {
		query = query.Where("date < ?", *toEnd)
	}

	logs := make([]models.LogEntry, 0)
	if err := query.Order("date ASC, created_at ASC").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// ListRecentByUser returns at most limit entries, the newest ones, in
// chronological order.
func (repo *LogEntryRepository) ListRecentByUser(ctx context.Context, userID uint, limit int) ([]models.LogEntry, error) {
	logs := make([]models.LogEntry, 0)
	query := repo.database.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&logs).Error; err != nil {
		return nil, err
	}

	for left, right := 0, len(logs)-1; left < right; left, right = left+1, right-1 {
		logs[left], logs[right] = logs[right], logs[left]
	}
	return logs, nil
}

func (repo *LogEntryRepository) ListPeriodEntries(ctx context.Context, userID uint) ([]models.LogEntry, error) {
	logs := make([]models.LogEntry, 0)
	if err := repo.database.WithContext(ctx).
		Select("id", "user_id", "date", "log_type", "flow_intensity").
		Where("user_id = ? AND log_type = ?", userID, models.LogTypePeriod).
		Order("date ASC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *LogEntryRepository) FindByID(ctx context.Context, userID uint, id uuid.UUID) (models.LogEntry, bool, error) {
	entry := models.LogEntry{}
	result := repo.database.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.LogEntry{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.LogEntry{}, false, nil
	}
	return entry, true, nil
}

func (repo *LogEntryRepository) Create(ctx context.Context, entry *models.LogEntry) error {
	return repo.database.WithContext(ctx).Create(entry).Error
}

func (repo *LogEntryRepository) Delete(ctx context.Context, userID uint, id uuid.UUID) error {
	return repo.database.WithContext(ctx).Where("user_id = ? AND id = ?", userID, id).Delete(&models.LogEntry{}).Error
}
