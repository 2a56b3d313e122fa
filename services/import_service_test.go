package services

import (
	"testing"

	"github.com/maverick001/EasyVocab/config"
	"github.com/maverick001/EasyVocab/models"
	"github.com/maverick001/EasyVocab/utils"
)

func TestImportEntries(t *testing.T) {
	setupTestDB(t)

	seedWord(t, "apple", "苹果", "Fruit", 2)

	entries := []utils.WordbookEntry{
		{Word: "apple", Translation: "苹果", Category: "Fruit"},  // duplicate
		{Word: "apple", Translation: "苹果公司", Category: "Tech"}, // same text, new category
		{Word: "banana", Translation: "香蕉", Category: "Fruit"},
	}

	stats, err := ImportEntries(entries)
	if err != nil {
		t.Fatalf("ImportEntries: %v", err)
	}
	// Stats reflect only the valid items handed to the importer.
	if stats.TotalProcessed != 3 {
		t.Fatalf("total processed = %d, want 3", stats.TotalProcessed)
	}
	if stats.Added != 2 || stats.SkippedDuplicates != 1 || stats.Errors != 0 {
		t.Fatalf("stats = %+v", stats)
	}

	var imported models.Word
	if err := config.DB.Where("word = ? AND category = ?", "banana", "Fruit").
		First(&imported).Error; err != nil {
		t.Fatalf("imported word missing: %v", err)
	}
	if imported.ReviewCount != 1 {
		t.Fatalf("imported review count = %d, want 1", imported.ReviewCount)
	}

	var total int64
	config.DB.Model(&models.Word{}).Count(&total)
	if total != 3 {
		t.Fatalf("word rows = %d, want 3", total)
	}
}

func TestImportEntriesEmpty(t *testing.T) {
	setupTestDB(t)

	stats, err := ImportEntries(nil)
	if err != nil {
		t.Fatalf("ImportEntries: %v", err)
	}
	if stats.TotalProcessed != 0 || stats.Added != 0 || stats.Errors != 0 {
		t.Fatalf("stats = %+v", stats)
	}
}
