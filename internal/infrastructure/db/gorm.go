package db

import (
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"land-registry-backend/internal/domain/mortgage"
	"land-registry-backend/internal/domain/party"
	"land-registry-backend/internal/domain/survey"
)

func OpenGorm(dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	}
	db, err := gorm.Open(mysql.Open(dsn), cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(30)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	log.Println("gorm: connected")
	return db, nil
}

// Migrate creates or updates the registry schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&party.Party{},
		&party.Owner{},
		&party.Registrar{},
		&mortgage.Mortgage{},
		&mortgage.Payment{},
		&survey.Survey{},
	)
}
