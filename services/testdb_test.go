package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/maverick001/EasyVocab/config"
	"github.com/maverick001/EasyVocab/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB points config.DB at a fresh in-memory sqlite database and
// pins the ledger settings the tests assume.
func setupTestDB(t *testing.T) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.Word{},
		&models.WordHistory{},
		&models.DailyStudyLog{},
		&models.DailyWordReview{},
		&models.QuizResult{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	config.DB = db
	config.LedgerTZ = time.FixedZone("LEDGER", 10*3600)
	config.DailyQuota = 100
}

func seedWord(t *testing.T, word, translation, category string, reviewCount int) models.Word {
	t.Helper()
	w := models.Word{
		Word:        word,
		Translation: translation,
		Category:    category,
		ReviewCount: reviewCount,
	}
	if err := config.DB.Create(&w).Error; err != nil {
		t.Fatalf("failed to seed word %q: %v", word, err)
	}
	return w
}

func seedDayLog(t *testing.T, date string, count int) {
	t.Helper()
	if err := config.DB.Create(&models.DailyStudyLog{Date: date, ReviewCount: count}).Error; err != nil {
		t.Fatalf("failed to seed day log %s: %v", date, err)
	}
}
