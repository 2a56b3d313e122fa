package services

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/maverick001/EasyVocab/config"
	"github.com/maverick001/EasyVocab/models"
)

func TestApplyFlashcardRememberProgression(t *testing.T) {
	setupTestDB(t)

	word := seedWord(t, "apple", "苹果", "Fruit", 3)

	// First remember: interval 1, one unit of debt worked off.
	out, err := ApplyFlashcardResult(word.ID, ResultRemember)
	if err != nil {
		t.Fatalf("ApplyFlashcardResult: %v", err)
	}
	if out.Interval != 1 || out.Repetitions != 1 {
		t.Fatalf("first remember: interval=%d reps=%d, want 1/1", out.Interval, out.Repetitions)
	}
	if out.OldCount != 3 || out.NewCount != 2 {
		t.Fatalf("counts = %d -> %d, want 3 -> 2", out.OldCount, out.NewCount)
	}

	// Second remember: interval jumps to 6.
	out, err = ApplyFlashcardResult(word.ID, ResultRemember)
	if err != nil {
		t.Fatalf("ApplyFlashcardResult: %v", err)
	}
	if out.Interval != 6 || out.Repetitions != 2 {
		t.Fatalf("second remember: interval=%d reps=%d, want 6/2", out.Interval, out.Repetitions)
	}

	// Third remember: interval * ease factor (6 * 2.5 = 15).
	out, err = ApplyFlashcardResult(word.ID, ResultRemember)
	if err != nil {
		t.Fatalf("ApplyFlashcardResult: %v", err)
	}
	if out.Interval != 15 || out.Repetitions != 3 {
		t.Fatalf("third remember: interval=%d reps=%d, want 15/3", out.Interval, out.Repetitions)
	}

	wantNext := time.Now().AddDate(0, 0, 15)
	if out.NextReview.Before(wantNext.Add(-time.Minute)) || out.NextReview.After(wantNext.Add(time.Minute)) {
		t.Fatalf("next review = %v, want roughly %v", out.NextReview, wantNext)
	}
}

func TestApplyFlashcardForgetResets(t *testing.T) {
	setupTestDB(t)

	word := seedWord(t, "apple", "苹果", "Fruit", 1)

	// Build up some schedule first.
	if _, err := ApplyFlashcardResult(word.ID, ResultRemember); err != nil {
		t.Fatalf("ApplyFlashcardResult: %v", err)
	}
	if _, err := ApplyFlashcardResult(word.ID, ResultRemember); err != nil {
		t.Fatalf("ApplyFlashcardResult: %v", err)
	}

	out, err := ApplyFlashcardResult(word.ID, ResultNotRemember)
	if err != nil {
		t.Fatalf("ApplyFlashcardResult: %v", err)
	}
	if out.Interval != 0 || out.Repetitions != 0 {
		t.Fatalf("forget must reset schedule, got interval=%d reps=%d", out.Interval, out.Repetitions)
	}
	if out.NewCount != out.OldCount+1 {
		t.Fatalf("forget must add review debt, got %d -> %d", out.OldCount, out.NewCount)
	}

	var updated models.Word
	if err := config.DB.First(&updated, word.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if math.Abs(updated.SRSEaseFactor-2.35) > 1e-9 {
		t.Fatalf("ease = %v, want 2.35", updated.SRSEaseFactor)
	}
}

func TestApplyFlashcardEaseFloor(t *testing.T) {
	setupTestDB(t)

	word := seedWord(t, "apple", "苹果", "Fruit", 1)

	for i := 0; i < 12; i++ {
		if _, err := ApplyFlashcardResult(word.ID, ResultNotRemember); err != nil {
			t.Fatalf("ApplyFlashcardResult: %v", err)
		}
	}

	var updated models.Word
	if err := config.DB.First(&updated, word.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if updated.SRSEaseFactor < minEaseFactor-1e-9 {
		t.Fatalf("ease = %v, must not drop below %v", updated.SRSEaseFactor, minEaseFactor)
	}
}

func TestApplyFlashcardRememberCountFloor(t *testing.T) {
	setupTestDB(t)

	word := seedWord(t, "apple", "苹果", "Fruit", 0)

	out, err := ApplyFlashcardResult(word.ID, ResultRemember)
	if err != nil {
		t.Fatalf("ApplyFlashcardResult: %v", err)
	}
	if out.NewCount != 0 {
		t.Fatalf("review count = %d, must not go negative", out.NewCount)
	}
}

func TestApplyFlashcardInvalidResult(t *testing.T) {
	setupTestDB(t)

	word := seedWord(t, "apple", "苹果", "Fruit", 1)

	if _, err := ApplyFlashcardResult(word.ID, "maybe"); !errors.Is(err, ErrInvalidResult) {
		t.Fatalf("err = %v, want ErrInvalidResult", err)
	}
	if _, err := ApplyFlashcardResult(word.ID+99, ResultRemember); !errors.Is(err, ErrWordNotFound) {
		t.Fatalf("err = %v, want ErrWordNotFound", err)
	}
}

func TestApplyFlashcardRememberFeedsLedger(t *testing.T) {
	setupTestDB(t)

	word := seedWord(t, "apple", "苹果", "Fruit", 1)

	if _, err := ApplyFlashcardResult(word.ID, ResultNotRemember); err != nil {
		t.Fatalf("ApplyFlashcardResult: %v", err)
	}
	count, err := GetDailyCount()
	if err != nil {
		t.Fatalf("GetDailyCount: %v", err)
	}
	if count != 0 {
		t.Fatalf("daily count = %d after a forget, want 0", count)
	}

	if _, err := ApplyFlashcardResult(word.ID, ResultRemember); err != nil {
		t.Fatalf("ApplyFlashcardResult: %v", err)
	}
	count, err = GetDailyCount()
	if err != nil {
		t.Fatalf("GetDailyCount: %v", err)
	}
	if count != 1 {
		t.Fatalf("daily count = %d after a remember, want 1", count)
	}
}

func TestNextQuizWordSelection(t *testing.T) {
	setupTestDB(t)

	// Not in rotation: zero review count.
	seedWord(t, "done", "完成", "Fruit", 0)
	// In rotation, never scheduled.
	fresh := seedWord(t, "fresh", "新鲜", "Fruit", 2)
	// In rotation, overdue.
	overdue := seedWord(t, "overdue", "逾期", "Fruit", 2)
	past := time.Now().AddDate(0, 0, -3)
	if err := config.DB.Model(&models.Word{}).Where("id = ?", overdue.ID).
		Update("next_review_date", past).Error; err != nil {
		t.Fatalf("set next review: %v", err)
	}
	// In rotation but not due yet.
	future := seedWord(t, "future", "将来", "Fruit", 2)
	if err := config.DB.Model(&models.Word{}).Where("id = ?", future.ID).
		Update("next_review_date", time.Now().AddDate(0, 0, 5)).Error; err != nil {
		t.Fatalf("set next review: %v", err)
	}

	// Overdue words come before never-scheduled ones.
	next, err := NextQuizWord("Fruit")
	if err != nil {
		t.Fatalf("NextQuizWord: %v", err)
	}
	if next.ID != overdue.ID {
		t.Fatalf("next word = %q, want the overdue one", next.Word)
	}

	if err := config.DB.Delete(&models.Word{}, overdue.ID).Error; err != nil {
		t.Fatalf("delete: %v", err)
	}
	next, err = NextQuizWord("Fruit")
	if err != nil {
		t.Fatalf("NextQuizWord: %v", err)
	}
	if next.ID != fresh.ID {
		t.Fatalf("next word = %q, want the unscheduled one", next.Word)
	}
}

func TestNextQuizWordNoneDue(t *testing.T) {
	setupTestDB(t)

	word := seedWord(t, "future", "将来", "Fruit", 2)
	if err := config.DB.Model(&models.Word{}).Where("id = ?", word.ID).
		Update("next_review_date", time.Now().AddDate(0, 0, 5)).Error; err != nil {
		t.Fatalf("set next review: %v", err)
	}

	if _, err := NextQuizWord("Fruit"); !errors.Is(err, ErrNoWords) {
		t.Fatalf("err = %v, want ErrNoWords", err)
	}
	if _, err := NextQuizWord("Vegetable"); !errors.Is(err, ErrNoWords) {
		t.Fatalf("err = %v, want ErrNoWords", err)
	}
}
