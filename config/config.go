package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/maverick001/EasyVocab/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// LedgerTZ is the fixed timezone used for all daily-ledger date boundaries.
// Kept independent of server-local time so debt numbers are stable across
// deployment environments. Defaults to UTC+10 (AEST).
var LedgerTZ *time.Location

// DailyQuota is the target number of distinct words to review per day.
var DailyQuota int

func InitDB() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	LoadLedgerSettings()

	driver := os.Getenv("DB_DRIVER")
	if driver == "" {
		driver = "postgres"
	}

	switch driver {
	case "sqlite":
		path := os.Getenv("SQLITE_PATH")
		if path == "" {
			path = "data/easyvocab.db"
		}
		DB, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	default:
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			os.Getenv("DB_HOST"),
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_NAME"),
			os.Getenv("DB_PORT"),
		)
		DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = DB.AutoMigrate(
		&models.Word{},
		&models.WordHistory{},
		&models.DailyStudyLog{},
		&models.DailyWordReview{},
		&models.QuizResult{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
}

// LoadLedgerSettings reads the ledger timezone and daily quota from the
// environment. Exported so tests can reset the package state.
func LoadLedgerSettings() {
	offset := 10
	if v := os.Getenv("LEDGER_TZ_OFFSET_HOURS"); v != "" {
		if h, err := strconv.Atoi(v); err == nil && h >= -12 && h <= 14 {
			offset = h
		}
	}
	LedgerTZ = time.FixedZone("LEDGER", offset*3600)

	DailyQuota = 100
	if v := os.Getenv("DAILY_QUOTA"); v != "" {
		if q, err := strconv.Atoi(v); err == nil && q > 0 {
			DailyQuota = q
		}
	}
}
