package models

import (
	"time"

	"gorm.io/gorm"
)

// Word is one vocabulary entry. The same word text may appear in several
// categories as separate rows; translation, example sentence and image are
// kept in sync across those rows by the update path.
type Word struct {
	gorm.Model
	Word            string `gorm:"size:255;not null;uniqueIndex:idx_word_category"`
	Translation     string `gorm:"type:text;not null"`
	ExampleSentence string `gorm:"type:text"`
	Category        string `gorm:"size:100;not null;index;uniqueIndex:idx_word_category"`
	ImageFile       string `gorm:"size:500"`

	ReviewCount  int `gorm:"default:0;index"`
	LastReviewed *time.Time
	// Ledger day (YYYY-MM-DD) the example sentence last earned a review
	// increment, capping that bonus at once per day.
	LastSampleReviewDate string `gorm:"size:10"`

	// Spaced-repetition state (simplified SM-2).
	SRSInterval    int        `gorm:"default:0"`
	SRSRepetitions int        `gorm:"default:0"`
	SRSEaseFactor  float64    `gorm:"default:2.5"`
	NextReviewDate *time.Time `gorm:"index"`
}

// WordHistory keeps a snapshot per qualifying mutation so edits can be
// reviewed later. ModificationType is one of "created", "updated", "moved".
type WordHistory struct {
	gorm.Model
	WordID           uint   `gorm:"index;not null"`
	Word             string `gorm:"size:255"`
	Translation      string `gorm:"type:text"`
	ExampleSentence  string `gorm:"type:text"`
	Category         string `gorm:"size:100"`
	ModificationType string `gorm:"size:20;default:'updated'"`
}
