// services/import_service.go
package services

import (
	"errors"

	"github.com/maverick001/EasyVocab/config"
	"github.com/maverick001/EasyVocab/models"
	"github.com/maverick001/EasyVocab/utils"

	"gorm.io/gorm"
)

// ImportStats summarizes one upload.
type ImportStats struct {
	TotalProcessed    int `json:"total_processed"`
	Added             int `json:"added"`
	SkippedDuplicates int `json:"skipped_duplicates"`
	Errors            int `json:"errors"`
}

// ImportEntries inserts parsed entries, skipping (word, category) pairs
// that already exist. Stats cover only the valid items the parser produced;
// rows the parser dropped never show up here. One bad insert does not abort
// the rest of the batch.
func ImportEntries(entries []utils.WordbookEntry) (*ImportStats, error) {
	stats := &ImportStats{TotalProcessed: len(entries)}

	for _, entry := range entries {
		var existing models.Word
		err := config.DB.Where("word = ? AND category = ?", entry.Word, entry.Category).
			First(&existing).Error
		if err == nil {
			stats.SkippedDuplicates++
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			stats.Errors++
			continue
		}

		// Bulk-imported words enter the rotation gently, unlike manual
		// additions which start at 2.
		word := models.Word{
			Word:        entry.Word,
			Translation: entry.Translation,
			Category:    entry.Category,
			ReviewCount: 1,
		}
		if err := config.DB.Create(&word).Error; err != nil {
			stats.Errors++
			continue
		}
		stats.Added++
	}

	return stats, nil
}
