package db

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	embeddedmigrations "github.com/terraincognita07/ovumcy-insights/migrations"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// OpenSQLite opens (creating if needed) the database at dbPath and brings the
// schema up to date with the embedded migrations.
func OpenSQLite(dbPath string, logger zerolog.Logger) (*gorm.DB, error) {
	return openSQLite(dbPath, embeddedmigrations.Files, logger)
}

func openSQLite(dbPath string, migrations fs.FS, logger zerolog.Logger) (*gorm.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	dbLogger := logger.With().Str("component", "gorm").Logger()
	dsn := fmt.Sprintf("%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", dbPath)
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.New(
			&dbLogger,
			gormlogger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  gormlogger.Warn,
				IgnoreRecordNotFoundError: true,
			},
		),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	applied, err := newMigrator(database, migrations, logger).Run()
	if err != nil {
		return nil, fmt.Errorf("apply embedded migrations: %w", err)
	}
	logger.Debug().Str("path", dbPath).Int("migrations_applied", applied).Msg("sqlite ready")

	return database, nil
}
