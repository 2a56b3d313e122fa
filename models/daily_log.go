package models

import "time"

// DailyStudyLog holds one row per ledger day with the number of distinct
// words that counted toward the quota that day. Dates are YYYY-MM-DD in the
// fixed ledger timezone.
type DailyStudyLog struct {
	ID          uint   `gorm:"primaryKey"`
	Date        string `gorm:"size:10;uniqueIndex;not null"`
	ReviewCount int    `gorm:"default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DailyWordReview is the dedup set behind the daily counter: one row per
// (word, ledger day) pair, so a word counts at most once per day no matter
// how many actions touch it.
type DailyWordReview struct {
	WordID     uint   `gorm:"primaryKey;autoIncrement:false"`
	ReviewDate string `gorm:"primaryKey;size:10"`
	CreatedAt  time.Time
}
