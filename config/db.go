package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"learnsphere/domain"
	"learnsphere/utils"
)

func GetDatabaseURL() string {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_SSLMODE"),
	)
	return dsn
}

func BootDB() (*gorm.DB, error) {
	address := GetDatabaseURL()

	// Setup logger level (debug mode vs production)
	var gormLogger logger.Interface
	if os.Getenv("APP_ENV") == "development" {
		gormLogger = logger.Default.LogMode(logger.Info) // show all SQL
	} else {
		gormLogger = logger.Default.LogMode(logger.Silent)
	}

	db, err := gorm.Open(postgres.Open(address), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		log.Print("❌ Failed to connect to ", utils.ColorText("Database: ", utils.Red), err)
		return nil, err
	}

	// Setup connection pool
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(30 * time.Minute)

	err = db.AutoMigrate(
		&domain.Student{},
		&domain.Course{},
		&domain.Feedback{},
	)
	if err != nil {
		log.Print("❌ Failed to ", utils.ColorText("auto-migrate database schemas", utils.Red), " error: ", err)
		return nil, err
	}

	if err := seedCourses(db); err != nil {
		return nil, err
	}

	log.Print("✅ Connected to ", utils.ColorText("Database", utils.Green), " successfully")
	return db, nil
}

// seedCourses fills an empty catalog. Courses are managed out of band, so
// the seed is the only built-in way courses come into existence.
func seedCourses(db *gorm.DB) error {
	var count int64
	db.Model(&domain.Course{}).Count(&count)
	if count > 0 || os.Getenv("SEED_COURSES") != "true" {
		return nil
	}

	courses := []domain.Course{
		{Title: "Introduction to Programming", Price: 50.00},
		{Title: "Data Structures and Algorithms", Price: 75.00},
		{Title: "Database Systems", Price: 60.00},
		{Title: "Web Technologies", Price: 45.00},
	}

	if err := db.Create(&courses).Error; err != nil {
		log.Printf("❌ Failed to seed course catalog: %v", err)
		return err
	}

	log.Printf("✅ Seeded %d courses into the catalog", len(courses))
	return nil
}
