package database

import (
	"fmt"
	"log"

	"github.com/DavidK276/ojs-dashboard/config"
	"github.com/DavidK276/ojs-dashboard/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Connect() error {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		config.DBHost,
		config.DBUser,
		config.DBPassword,
		config.DBName,
		config.DBPort,
		config.DBSSLMode,
		config.DBTimeZone,
	)
	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return err
	}

	if err := DB.AutoMigrate(
		&models.Participant{},
		&models.UserSetting{},
		&models.GroupSetting{},
		&models.StageAssignment{},
		&models.ReviewAssignment{},
	); err != nil {
		return err
	}
	log.Println("database connection established, migrations applied")
	return nil
}

func Close() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Println("failed to get sqlDB:", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Fatalf("failed to close database: %v", err)
	}
	log.Println("database connection closed")
}
