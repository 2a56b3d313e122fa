// services/word_service.go
package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/maverick001/EasyVocab/config"
	"github.com/maverick001/EasyVocab/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrWordNotFound marks lookups for a word id that no longer exists.
var ErrWordNotFound = errors.New("word not found")

// ErrNoWords marks an empty filtered view (rendered as the Empty UI state,
// not an error banner).
var ErrNoWords = errors.New("no words found")

// DuplicateError rejects inserts or moves that would collide with an
// existing (word, category) row.
type DuplicateError struct {
	Word             string
	ExistingID       uint
	ExistingCategory string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("word %q already exists in category %q", e.Word, e.ExistingCategory)
}

// CategoryStat is one row of the category listing.
type CategoryStat struct {
	Name        string     `json:"name"`
	WordCount   int        `json:"word_count"`
	LastUpdated *time.Time `json:"last_updated"`
}

// WordView is a word plus its position metadata in the active filter.
type WordView struct {
	models.Word
	TotalInCategory int `json:"total_in_category"`
	CurrentIndex    int `json:"current_index"`
}

// DeleteConfirmation is returned when a delete needs the user to pick a
// scope because the word also lives in other categories.
type DeleteConfirmation struct {
	Word            string   `json:"word"`
	CurrentCategory string   `json:"current_category"`
	OtherCategories []string `json:"other_categories"`
}

// The sqlite driver hands MAX(updated_at) back as a string, so the aggregate
// is scanned as text and parsed; database/sql formats postgres timestamps as
// RFC 3339 when the destination is a string.
var dbTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05-07:00",
	"2006-01-02 15:04:05",
}

func parseDBTime(s string) (time.Time, bool) {
	for _, layout := range dbTimeLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

func ListCategories() ([]CategoryStat, error) {
	var rows []struct {
		Name        string
		WordCount   int
		LastUpdated sql.NullString
	}
	err := config.DB.Model(&models.Word{}).
		Select("category AS name, COUNT(*) AS word_count, MAX(updated_at) AS last_updated").
		Group("category").
		Order("category").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	stats := make([]CategoryStat, 0, len(rows))
	for _, row := range rows {
		stat := CategoryStat{Name: row.Name, WordCount: row.WordCount}
		if row.LastUpdated.Valid {
			if ts, ok := parseDBTime(row.LastUpdated.String); ok {
				stat.LastUpdated = &ts
			}
		}
		stats = append(stats, stat)
	}
	return stats, nil
}

func CategoryCount(category string) (int64, error) {
	var count int64
	err := config.DB.Model(&models.Word{}).
		Where("category = ?", category).
		Count(&count).Error
	return count, err
}

func orderClause(sortBy string) string {
	switch sortBy {
	case "updated_at_asc":
		return "updated_at ASC, id ASC"
	case "review_count":
		return "review_count DESC, updated_at DESC, id DESC"
	default: // updated_at
		return "updated_at DESC, id DESC"
	}
}

// GetWordByIndex returns the word at position index within the category
// under the given sort order. "All" spans every category. The index is
// clamped into [0, total-1]; an empty category returns ErrNoWords.
func GetWordByIndex(category string, index int, sortBy string) (*WordView, error) {
	scoped := func() *gorm.DB {
		q := config.DB.Model(&models.Word{})
		if category != "All" {
			q = q.Where("category = ?", category)
		}
		return q
	}

	var total int64
	if err := scoped().Count(&total).Error; err != nil {
		return nil, err
	}
	if total == 0 {
		return nil, ErrNoWords
	}

	if index < 0 {
		index = 0
	} else if index >= int(total) {
		index = int(total) - 1
	}

	var word models.Word
	if err := scoped().Order(orderClause(sortBy)).
		Offset(index).Limit(1).
		Find(&word).Error; err != nil {
		return nil, err
	}
	if word.ID == 0 {
		return nil, ErrNoWords
	}

	return &WordView{Word: word, TotalInCategory: int(total), CurrentIndex: index}, nil
}

// SearchWords does a substring search across word and translation, ranking
// word-text matches first. Results are capped at 100.
func SearchWords(q string) ([]models.Word, error) {
	pattern := "%" + q + "%"
	var results []models.Word
	err := config.DB.
		Where("word LIKE ? OR translation LIKE ?", pattern, pattern).
		Clauses(clause.OrderBy{Expression: clause.Expr{
			SQL:                "CASE WHEN word LIKE ? THEN 1 ELSE 2 END, word ASC",
			Vars:               []interface{}{pattern},
			WithoutParentheses: true,
		}}).
		Limit(100).
		Find(&results).Error
	return results, err
}

// CreateWord inserts a new word after a global duplicate check (the same
// text may not be added twice even in another category; moves handle
// cross-category copies). New words start with a review count of 2.
func CreateWord(word, translation, exampleSentence, category string) (*models.Word, error) {
	var existing models.Word
	err := config.DB.Where("word = ?", word).First(&existing).Error
	if err == nil {
		return nil, &DuplicateError{Word: word, ExistingID: existing.ID, ExistingCategory: existing.Category}
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	newWord := models.Word{
		Word:            word,
		Translation:     translation,
		ExampleSentence: exampleSentence,
		Category:        category,
		ReviewCount:     2,
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&newWord).Error; err != nil {
			return err
		}
		return createHistoryRecord(tx, &newWord, "created")
	})
	if err != nil {
		return nil, err
	}

	RecordActivity(newWord.ID)
	return &newWord, nil
}

// WordUpdate carries the optional fields of a partial update. Nil means
// "leave untouched", a pointer to "" clears the field.
type WordUpdate struct {
	Word            *string
	Translation     *string
	ExampleSentence *string
	ImageFile       *string
}

// UpdateWord applies a partial update. Translation, example sentence and
// image are shared state: they update every row carrying the same word
// text. The word text itself changes only on the addressed row. A changed
// example sentence earns one review-count bump per ledger day.
func UpdateWord(id uint, update WordUpdate) error {
	var current models.Word
	if err := config.DB.First(&current, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrWordNotFound
		}
		return err
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		shared := map[string]interface{}{}

		if update.Translation != nil {
			shared["translation"] = *update.Translation
		}
		if update.ImageFile != nil {
			shared["image_file"] = strings.TrimSpace(*update.ImageFile)
		}
		if update.ExampleSentence != nil {
			shared["example_sentence"] = *update.ExampleSentence

			changed := strings.TrimSpace(*update.ExampleSentence) != strings.TrimSpace(current.ExampleSentence)
			if changed && current.LastSampleReviewDate != LedgerToday() {
				shared["review_count"] = gorm.Expr("review_count + 1")
				shared["last_reviewed"] = time.Now()
				shared["last_sample_review_date"] = LedgerToday()
			}
		}

		if len(shared) > 0 {
			if err := tx.Model(&models.Word{}).
				Where("word = ?", current.Word).
				Updates(shared).Error; err != nil {
				return err
			}
		}

		if update.Word != nil {
			if err := tx.Model(&models.Word{}).
				Where("id = ?", id).
				Update("word", *update.Word).Error; err != nil {
				return err
			}
		}

		var updated models.Word
		if err := tx.First(&updated, id).Error; err != nil {
			return err
		}
		return createHistoryRecord(tx, &updated, "updated")
	})
	if err != nil {
		return err
	}

	RecordActivity(id)
	return nil
}

// MoveWordCategory moves a word to another category, preserving its id and
// ledger state. Rejected when the target already holds the same text.
func MoveWordCategory(id uint, newCategory string) error {
	var current models.Word
	if err := config.DB.First(&current, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrWordNotFound
		}
		return err
	}

	var existing models.Word
	err := config.DB.Where("word = ? AND category = ?", current.Word, newCategory).
		First(&existing).Error
	if err == nil {
		return &DuplicateError{Word: current.Word, ExistingID: existing.ID, ExistingCategory: newCategory}
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Word{}).
			Where("id = ?", id).
			Update("category", newCategory).Error; err != nil {
			return err
		}
		current.Category = newCategory
		return createHistoryRecord(tx, &current, "moved")
	})
	if err != nil {
		return err
	}

	RecordActivity(id)
	return nil
}

// DeleteWord removes a word. On the first call without a scope, if the same
// text exists in other categories, a DeleteConfirmation is returned instead
// of deleting so the user can choose between scopes. Scope "all_categories"
// removes every row of the text; anything else removes just the addressed
// row.
func DeleteWord(id uint, scope string) (*DeleteConfirmation, error) {
	var current models.Word
	if err := config.DB.First(&current, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWordNotFound
		}
		return nil, err
	}

	var others []models.Word
	if err := config.DB.Where("word = ? AND id != ?", current.Word, id).
		Find(&others).Error; err != nil {
		return nil, err
	}

	if len(others) > 0 && scope == "" {
		confirmation := &DeleteConfirmation{
			Word:            current.Word,
			CurrentCategory: current.Category,
		}
		for _, w := range others {
			confirmation.OtherCategories = append(confirmation.OtherCategories, w.Category)
		}
		return confirmation, nil
	}

	var err error
	if scope == "all_categories" {
		err = config.DB.Where("word = ?", current.Word).Delete(&models.Word{}).Error
	} else {
		err = config.DB.Delete(&models.Word{}, id).Error
	}
	if err != nil {
		return nil, err
	}

	RecordActivity(id)
	return nil, nil
}

// IncrementReview bumps the review counter from an explicit review click and
// returns the new count.
func IncrementReview(id uint) (*models.Word, error) {
	var word models.Word
	if err := config.DB.First(&word, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWordNotFound
		}
		return nil, err
	}

	now := time.Now()
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&word).Updates(map[string]interface{}{
			"review_count":  gorm.Expr("review_count + 1"),
			"last_reviewed": now,
			"updated_at":    now,
		}).Error; err != nil {
			return err
		}
		if err := tx.First(&word, id).Error; err != nil {
			return err
		}
		return createHistoryRecord(tx, &word, "updated")
	})
	if err != nil {
		return nil, err
	}

	RecordActivity(id)
	return &word, nil
}

func GetWordDetail(id uint) (*models.Word, error) {
	var word models.Word
	if err := config.DB.First(&word, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWordNotFound
		}
		return nil, err
	}
	return &word, nil
}

// GetWordHistory returns the newest history snapshot per calendar day,
// newest day first.
func GetWordHistory(id uint) ([]models.WordHistory, error) {
	var records []models.WordHistory
	err := config.DB.
		Where("word_id = ?", id).
		Where("id IN (?)", config.DB.Model(&models.WordHistory{}).
			Select("MAX(id)").
			Where("word_id = ?", id).
			Group("DATE(created_at)")).
		Order("created_at DESC").
		Find(&records).Error
	return records, err
}

// GetWordPosition returns the word's index inside its own category under
// the given sort order, for re-syncing the browse view after a search jump.
func GetWordPosition(id uint, sortBy string) (index int, total int, category string, err error) {
	var word models.Word
	if err = config.DB.First(&word, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = ErrWordNotFound
		}
		return
	}
	category = word.Category

	var ids []uint
	if err = config.DB.Model(&models.Word{}).
		Where("category = ?", category).
		Order(orderClause(sortBy)).
		Pluck("id", &ids).Error; err != nil {
		return
	}

	total = len(ids)
	index = -1
	for i, wid := range ids {
		if wid == id {
			index = i
			break
		}
	}
	if index == -1 {
		err = ErrWordNotFound
	}
	return
}

func createHistoryRecord(tx *gorm.DB, word *models.Word, modificationType string) error {
	return tx.Create(&models.WordHistory{
		WordID:           word.ID,
		Word:             word.Word,
		Translation:      word.Translation,
		ExampleSentence:  word.ExampleSentence,
		Category:         word.Category,
		ModificationType: modificationType,
	}).Error
}
