package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/terraincognita07/ovumcy-insights/internal/models"
)

var (
	ErrSettingsLoadFailed = errors.New("load settings failed")
	ErrSettingsSaveFailed = errors.New("save settings failed")
)

type SettingsRepository interface {
	FindByUser(ctx context.Context, userID uint) (models.CycleSettings, bool, error)
	Save(ctx context.Context, settings *models.CycleSettings) error
}

type SettingsService struct {
	settings SettingsRepository
}

func NewSettingsService(settings SettingsRepository) *SettingsService {
	return &SettingsService{settings: settings}
}

// LoadSettings falls back to the default priors when the user has never saved
// settings.
func (service *SettingsService) LoadSettings(ctx context.Context, userID uint) (models.CycleSettings, error) {
	settings, found, err := service.settings.FindByUser(ctx, userID)
	if err != nil {
		return models.CycleSettings{}, fmt.Errorf("%w: %v", ErrSettingsLoadFailed, err)
	}
	if !found {
		return models.DefaultCycleSettings(userID), nil
	}
	return settings, nil
}

func (service *SettingsService) SaveCycleSettings(ctx context.Context, userID uint, update CycleSettingsUpdate) (models.CycleSettings, error) {
	settings, err := service.LoadSettings(ctx, userID)
	if err != nil {
		return models.CycleSettings{}, err
	}

	settings.AverageCycleLength = update.CycleLength
	settings.AveragePeriodLength = update.PeriodLength
	settings.LastPeriodStart = update.LastPeriodStart
	settings.LastPeriodEnd = update.LastPeriodEnd

	if err := service.settings.Save(ctx, &settings); err != nil {
		return models.CycleSettings{}, fmt.Errorf("%w: %v", ErrSettingsSaveFailed, err)
	}
	return settings, nil
}
