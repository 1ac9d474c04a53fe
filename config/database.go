package config

import (
	"fmt"

	"github.com/Govind-619/TurboLeague/models"
	"github.com/Govind-619/TurboLeague/utils"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// activePaymentIndex keeps at most one non-failed payment per registration.
// Two concurrent initialize calls race on this index rather than on a read.
const activePaymentIndex = `CREATE UNIQUE INDEX IF NOT EXISTS idx_payments_active_registration
	ON payments (registration_id) WHERE status <> 'failed'`

// ConnectDatabase opens the Postgres connection described by cfg
func ConnectDatabase(cfg *Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{TranslateError: true}
	if cfg.IsProduction() {
		gormCfg.Logger = logger.Default.LogMode(logger.Error)
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	utils.LogInfo("Connected to database %s on %s:%s", cfg.DBName, cfg.DBHost, cfg.DBPort)
	return db, nil
}

// Migrate creates or updates every table and the indexes gorm tags cannot express
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	if err := db.Exec(activePaymentIndex).Error; err != nil {
		return fmt.Errorf("failed to create active payment index: %w", err)
	}
	utils.LogInfo("Database migration completed")
	return nil
}
