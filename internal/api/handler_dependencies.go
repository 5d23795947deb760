package api

import (
	"github.com/terraincognita07/ovumcy-insights/internal/db"
	"github.com/terraincognita07/ovumcy-insights/internal/services"
)

// ServiceSet groups the services built over one set of repositories so the
// HTTP and assistant surfaces share them.
type ServiceSet struct {
	Logs     *services.LogService
	Settings *services.SettingsService
	Insights *services.InsightsService
}

func NewServiceSet(repositories *db.Repositories, options services.InsightOptions, fetchLimit int) ServiceSet {
	return ServiceSet{
		Logs:     services.NewLogService(repositories.LogEntries, repositories.Settings, options.MergeGapDays),
		Settings: services.NewSettingsService(repositories.Settings),
		Insights: services.NewInsightsService(repositories.LogEntries, repositories.Settings, options, fetchLimit),
	}
}
