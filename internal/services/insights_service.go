package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/terraincognita07/ovumcy-insights/internal/models"
	"golang.org/x/sync/errgroup"
)

const DefaultLogFetchLimit = 1000

var (
	ErrLoadLogsFailed     = errors.New("load logs failed")
	ErrLoadSettingsFailed = errors.New("load settings failed")
)

type InsightsLogReader interface {
	ListRecentByUser(ctx context.Context, userID uint, limit int) ([]models.LogEntry, error)
}

type InsightsSettingsReader interface {
	FindByUser(ctx context.Context, userID uint) (models.CycleSettings, bool, error)
}

type InsightsService struct {
	logs       InsightsLogReader
	settings   InsightsSettingsReader
	options    InsightOptions
	fetchLimit int
}

func NewInsightsService(logs InsightsLogReader, settings InsightsSettingsReader, options InsightOptions, fetchLimit int) *InsightsService {
	if fetchLimit <= 0 {
		fetchLimit = DefaultLogFetchLimit
	}
	return &InsightsService{
		logs:       logs,
		settings:   settings,
		options:    options,
		fetchLimit: fetchLimit,
	}
}

// LoadSnapshot fetches the most recent logs and the settings row in parallel.
// A missing settings row yields nil settings, which the engine tolerates.
func (service *InsightsService) LoadSnapshot(ctx context.Context, userID uint) ([]models.LogEntry, *models.CycleSettings, error) {
	var logs []models.LogEntry
	var settings *models.CycleSettings

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		fetched, err := service.logs.ListRecentByUser(groupCtx, userID, service.fetchLimit)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrLoadLogsFailed, err)
		}
		logs = fetched
		return nil
	})
	group.Go(func() error {
		fetched, found, err := service.settings.FindByUser(groupCtx, userID)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrLoadSettingsFailed, err)
		}
		if found {
			settings = &fetched
		}
		return nil
	})
	if err := group.Wait(); err != nil {
		return nil, nil, err
	}
	return logs, settings, nil
}

func (service *InsightsService) BuildForUser(ctx context.Context, userID uint, today time.Time) (CycleInsights, error) {
	logs, settings, err := service.LoadSnapshot(ctx, userID)
	if err != nil {
		return CycleInsights{}, err
	}
	return BuildInsights(logs, settings, today, service.options), nil
}

func (service *InsightsService) BuildContextForUser(ctx context.Context, userID uint, today time.Time) (string, error) {
	insights, err := service.BuildForUser(ctx, userID, today)
	if err != nil {
		return "", err
	}
	return FormatInsightsContext(insights), nil
}

// CyclesForUser derives cycles and their statistics without the rest of the
// insight pipeline.
func (service *InsightsService) CyclesForUser(ctx context.Context, userID uint) ([]Cycle, CycleStats, error) {
	logs, err := service.logs.ListRecentByUser(ctx, userID, service.fetchLimit)
	if err != nil {
		return nil, CycleStats{}, fmt.Errorf("%w: %v", ErrLoadLogsFailed, err)
	}
	cycles := BuildCycles(logs, service.options.MergeGapDays)
	return cycles, CalculateCycleStats(cycles), nil
}
