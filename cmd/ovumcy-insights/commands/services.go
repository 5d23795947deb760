package commands

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/terraincognita07/ovumcy-insights/internal/api"
	"github.com/terraincognita07/ovumcy-insights/internal/db"
)

// openServiceSet opens the database and builds the shared services. The
// returned func closes the database.
func openServiceSet() (api.ServiceSet, func(), error) {
	database, err := db.OpenSQLite(cfg.DBPath, log.Logger)
	if err != nil {
		return api.ServiceSet{}, nil, fmt.Errorf("database init failed: %w", err)
	}

	closeDatabase := func() {
		sqlDB, err := database.DB()
		if err != nil {
			return
		}
		if err := sqlDB.Close(); err != nil {
			log.Warn().Err(err).Msg("database close failed")
		}
	}

	return api.NewServiceSet(db.NewRepositories(database), cfg.InsightOptions(), cfg.LogFetchLimit), closeDatabase, nil
}
