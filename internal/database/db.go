package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/BahathJob/Bahath-Jobs-sub000/internal/config"
	"github.com/BahathJob/Bahath-Jobs-sub000/internal/models"
)

// Connect opens the Postgres connection and runs migrations.
// TranslateError is on so unique-constraint violations surface as
// gorm.ErrDuplicatedKey; the services depend on that for the
// duplicate-application and engagement-toggle races.
func Connect(cfg *config.Config, logger *zap.SugaredLogger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	logger.Info("database connection established")

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return db, nil
}

// Migrate creates/updates the schema. Shared with the test suites, which run
// it against an in-memory database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Company{},
		&models.Job{},
		&models.JobApplication{},
		&models.Engagement{},
		&models.Notification{},
		&models.BlogPost{},
		&models.OTP{},
	)
}
