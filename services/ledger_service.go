// services/ledger_service.go
package services

import (
	"errors"
	"log"
	"time"

	"github.com/maverick001/EasyVocab/config"
	"github.com/maverick001/EasyVocab/models"

	"gorm.io/gorm"
)

// LedgerToday returns the current calendar date in the fixed ledger timezone.
func LedgerToday() string {
	return time.Now().In(config.LedgerTZ).Format("2006-01-02")
}

// RecordActivity counts wordID toward today's quota. Every qualifying UI
// action (create, edit, delete, review click, correct quiz answer) calls
// this; only the first call per word per ledger day increments the counter,
// the rest are no-ops. Returns true when the increment was applied.
//
// Persistence failures are logged and swallowed so the mutation that
// triggered the guard still completes.
func RecordActivity(wordID uint) bool {
	day := LedgerToday()
	counted := false

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.DailyWordReview
		err := tx.Where("word_id = ? AND review_date = ?", wordID, day).
			First(&existing).Error
		if err == nil {
			// Already counted today.
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := tx.Create(&models.DailyWordReview{WordID: wordID, ReviewDate: day}).Error; err != nil {
			return err
		}

		var dayLog models.DailyStudyLog
		if err := tx.FirstOrCreate(&dayLog, models.DailyStudyLog{Date: day}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.DailyStudyLog{}).
			Where("date = ?", day).
			UpdateColumn("review_count", gorm.Expr("review_count + 1")).Error; err != nil {
			return err
		}

		counted = true
		return nil
	})
	if err != nil {
		log.Printf("ledger: failed to record activity for word %d: %v", wordID, err)
		return false
	}

	if counted {
		if count, err := GetDailyCount(); err == nil {
			Counter.BroadcastCount(day, count)
		}
	}
	return counted
}

// GetDailyCount returns today's distinct-word review count, 0 when no record
// exists yet.
func GetDailyCount() (int, error) {
	var dayLog models.DailyStudyLog
	err := config.DB.Where("date = ?", LedgerToday()).First(&dayLog).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return dayLog.ReviewCount, nil
}
