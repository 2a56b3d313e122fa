package models

import "gorm.io/gorm"

// Quiz answer modes.
const (
	QuizModeChoice    = "choice"    // multiple-choice session answer
	QuizModeFlashcard = "flashcard" // remember / not_remember card flip
)

// QuizResult records one graded answer, feeding the stats endpoint.
type QuizResult struct {
	gorm.Model
	WordID  uint   `gorm:"index"`
	Mode    string `gorm:"size:20;index"`
	Correct bool
}
