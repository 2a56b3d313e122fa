// services/srs_service.go
package services

import (
	"errors"
	"time"

	"github.com/maverick001/EasyVocab/config"
	"github.com/maverick001/EasyVocab/models"

	"gorm.io/gorm"
)

// ErrInvalidResult rejects flashcard submissions outside remember /
// not_remember.
var ErrInvalidResult = errors.New("invalid result value")

// Flashcard grading values.
const (
	ResultRemember    = "remember"
	ResultNotRemember = "not_remember"
)

const minEaseFactor = 1.3

// NextQuizWord picks the next flashcard: words already in rotation
// (review_count >= 1) that are due (overdue next_review_date, or never
// scheduled), most overdue first, never-scheduled last, oldest edit as
// tiebreak.
func NextQuizWord(category string) (*models.Word, error) {
	query := config.DB.Model(&models.Word{}).
		Where("review_count >= 1").
		Where("next_review_date <= ? OR next_review_date IS NULL", time.Now())
	if category != "" && category != "All" {
		query = query.Where("category = ?", category)
	}

	var word models.Word
	err := query.
		Order("CASE WHEN next_review_date IS NULL THEN 1 ELSE 0 END").
		Order("next_review_date ASC").
		Order("updated_at ASC").
		First(&word).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoWords
	}
	if err != nil {
		return nil, err
	}
	return &word, nil
}

// FlashcardOutcome reports the SRS state after grading a card.
type FlashcardOutcome struct {
	WordID      uint      `json:"word_id"`
	OldCount    int       `json:"old_count"`
	NewCount    int       `json:"new_count"`
	Interval    int       `json:"interval"`
	Repetitions int       `json:"repetitions"`
	NextReview  time.Time `json:"next_review"`
}

// ApplyFlashcardResult updates a word's spaced-repetition state from a
// remember / not_remember answer (simplified SM-2). Remembering grows the
// interval (1, 6, then interval * ease) and works off one unit of review
// debt; forgetting resets the schedule, hardens the ease factor and adds
// one unit back. A remembered word counts toward today's quota.
func ApplyFlashcardResult(wordID uint, result string) (*FlashcardOutcome, error) {
	if result != ResultRemember && result != ResultNotRemember {
		return nil, ErrInvalidResult
	}

	var word models.Word
	if err := config.DB.First(&word, wordID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWordNotFound
		}
		return nil, err
	}

	interval := word.SRSInterval
	repetitions := word.SRSRepetitions
	ease := word.SRSEaseFactor
	if ease == 0 {
		ease = 2.5
	}

	oldCount := word.ReviewCount
	newCount := oldCount
	if result == ResultRemember {
		switch repetitions {
		case 0:
			interval = 1
		case 1:
			interval = 6
		default:
			interval = int(float64(interval) * ease)
		}
		repetitions++
		if newCount > 0 {
			newCount--
		}
	} else {
		repetitions = 0
		interval = 0
		ease = ease - 0.15
		if ease < minEaseFactor {
			ease = minEaseFactor
		}
		newCount++
	}

	now := time.Now()
	nextReview := now
	if interval > 0 {
		nextReview = now.AddDate(0, 0, interval)
	}

	err := config.DB.Model(&word).Updates(map[string]interface{}{
		"review_count":     newCount,
		"last_reviewed":    now,
		"updated_at":       now,
		"srs_interval":     interval,
		"srs_repetitions":  repetitions,
		"srs_ease_factor":  ease,
		"next_review_date": nextReview,
	}).Error
	if err != nil {
		return nil, err
	}

	if err := config.DB.Create(&models.QuizResult{
		WordID:  wordID,
		Mode:    models.QuizModeFlashcard,
		Correct: result == ResultRemember,
	}).Error; err != nil {
		return nil, err
	}

	if result == ResultRemember {
		RecordActivity(wordID)
	}

	return &FlashcardOutcome{
		WordID:      wordID,
		OldCount:    oldCount,
		NewCount:    newCount,
		Interval:    interval,
		Repetitions: repetitions,
		NextReview:  nextReview,
	}, nil
}
