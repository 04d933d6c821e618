package database

import (
	"timesheet/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func Init(dsn string) error {
	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return err
	}
	return Migrate(DB)
}

// Migrate creates or updates the schema for the six entities.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Engagement{},
		&models.WorkDay{},
		&models.Activity{},
		&models.ReportingPeriod{},
		&models.Invoice{},
		&models.AuditLog{},
	)
}

func GetDB() *gorm.DB {
	return DB
}

// Set replaces the global handle. Tests use it to point handlers at an
// in-memory database.
func Set(db *gorm.DB) {
	DB = db
}
