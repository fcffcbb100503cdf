package database

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/skyharboraero/flightline-backend/internal/config"
	"github.com/skyharboraero/flightline-backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func Connect(cfg *config.Config) error {
	var err error
	DB, err = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	slog.Info("database connected")
	return nil
}

// Migrate runs AutoMigrate for all models, plus the partial indexes
// AutoMigrate cannot express.
func Migrate() error {
	if err := DB.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Aircraft{},
		&models.Service{},
		&models.MembershipTier{},
		&models.Membership{},
		&models.ServiceCredit{},
		&models.ServiceRequest{},
		&models.ServiceTask{},
		&models.Invoice{},
		&models.SystemLog{},
	); err != nil {
		return err
	}

	// at most one active membership per owner
	return DB.Exec(
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_memberships_owner_active " +
			"ON memberships (owner_id) WHERE active AND deleted_at IS NULL",
	).Error
}

func Ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
