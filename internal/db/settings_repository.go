package db

import (
	"context"

	"github.com/terraincognita07/ovumcy-insights/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingsRepository struct {
	database *gorm.DB
}

func NewSettingsRepository(database *gorm.DB) *SettingsRepository {
	return &SettingsRepository{database: database}
}

func (repo *SettingsRepository) FindByUser(ctx context.Context, userID uint) (models.CycleSettings, bool, error) {
	settings := models.CycleSettings{}
	result := repo.database.WithContext(ctx).Where("user_id = ?", userID).Limit(1).Find(&settings)
	if result.Error != nil {
		return models.CycleSettings{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.CycleSettings{}, false, nil
	}
	return settings, true, nil
}

// Save inserts the row or replaces every column of an existing one.
func (repo *SettingsRepository) Save(ctx context.Context, settings *models.CycleSettings) error {
	return repo.database.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(settings).Error
}
