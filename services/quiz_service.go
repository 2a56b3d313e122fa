// services/quiz_service.go
package services

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/maverick001/EasyVocab/config"
	"github.com/maverick001/EasyVocab/models"

	"github.com/google/uuid"
)

// ErrSessionNotFound marks grading requests against an unknown or expired
// quiz session.
var ErrSessionNotFound = errors.New("quiz session not found")

const (
	defaultQuizSize = 10
	maxQuizSize     = 50
	distractorCount = 3
	sessionTTL      = 2 * time.Hour
)

// QuizQuestion is what the client sees: the translation as prompt and
// shuffled options. The correct index stays server-side in the session.
type QuizQuestion struct {
	WordID  uint     `json:"word_id"`
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
}

type sessionQuestion struct {
	WordID       uint
	CorrectIndex int
	CorrectText  string
	OptionCount  int
}

type quizSession struct {
	Questions []sessionQuestion
	CreatedAt time.Time
}

// QuestionResult is the graded outcome of one question.
type QuestionResult struct {
	WordID        uint   `json:"word_id"`
	Correct       bool   `json:"correct"`
	CorrectIndex  int    `json:"correct_index"`
	CorrectAnswer string `json:"correct_answer"`
	Selected      *int   `json:"selected"`
}

// QuizScore is the result of grading a whole session.
type QuizScore struct {
	CorrectCount int              `json:"correct_count"`
	Total        int              `json:"total"`
	Results      []QuestionResult `json:"results"`
}

var (
	quizMu       sync.Mutex
	quizSessions = map[string]*quizSession{}
)

// GenerateQuiz builds a multiple-choice quiz from the category's words,
// stores the answer key in an in-memory session and returns the questions
// with shuffled options. count is clamped to the available words.
func GenerateQuiz(category string, count int) (string, []QuizQuestion, error) {
	if count <= 0 {
		count = defaultQuizSize
	}
	if count > maxQuizSize {
		count = maxQuizSize
	}

	query := config.DB.Model(&models.Word{})
	if category != "" && category != "All" {
		query = query.Where("category = ?", category)
	}

	var words []models.Word
	if err := query.Find(&words).Error; err != nil {
		return "", nil, err
	}
	if len(words) == 0 {
		return "", nil, ErrNoWords
	}

	rand.Shuffle(len(words), func(i, j int) { words[i], words[j] = words[j], words[i] })
	if len(words) > count {
		words = words[:count]
	}

	questions, key := buildQuestions(words)

	sessionID := uuid.NewString()
	quizMu.Lock()
	pruneSessionsLocked()
	quizSessions[sessionID] = &quizSession{Questions: key, CreatedAt: time.Now()}
	quizMu.Unlock()

	return sessionID, questions, nil
}

// buildQuestions turns each word into a question whose prompt is the
// translation and whose options are the word text plus up to three
// distractors drawn from the other words. With fewer than three other
// words available the question simply carries fewer options.
func buildQuestions(words []models.Word) ([]QuizQuestion, []sessionQuestion) {
	questions := make([]QuizQuestion, 0, len(words))
	key := make([]sessionQuestion, 0, len(words))

	for _, w := range words {
		pool := make([]string, 0, len(words)-1)
		seen := map[string]bool{w.Word: true}
		for _, other := range words {
			if seen[other.Word] {
				continue
			}
			seen[other.Word] = true
			pool = append(pool, other.Word)
		}
		rand.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

		n := distractorCount
		if len(pool) < n {
			n = len(pool)
		}
		options := append([]string{w.Word}, pool[:n]...)
		rand.Shuffle(len(options), func(i, j int) { options[i], options[j] = options[j], options[i] })

		correct := 0
		for i, opt := range options {
			if opt == w.Word {
				correct = i
				break
			}
		}

		questions = append(questions, QuizQuestion{WordID: w.ID, Prompt: w.Translation, Options: options})
		key = append(key, sessionQuestion{
			WordID:       w.ID,
			CorrectIndex: correct,
			CorrectText:  w.Word,
			OptionCount:  len(options),
		})
	}
	return questions, key
}

// ScoreQuiz grades the submitted answers against the stored session key.
// Answers are matched by position; missing or out-of-range entries count as
// incorrect. A correct answer records ledger activity for the word. The
// session is consumed.
func ScoreQuiz(sessionID string, answers []*int) (*QuizScore, error) {
	quizMu.Lock()
	session, ok := quizSessions[sessionID]
	if ok {
		delete(quizSessions, sessionID)
	}
	quizMu.Unlock()
	if !ok {
		return nil, ErrSessionNotFound
	}

	score := &QuizScore{Total: len(session.Questions)}
	for i, q := range session.Questions {
		var selected *int
		if i < len(answers) {
			selected = answers[i]
		}

		correct := selected != nil && *selected == q.CorrectIndex && *selected < q.OptionCount

		result := QuestionResult{
			WordID:        q.WordID,
			Correct:       correct,
			CorrectIndex:  q.CorrectIndex,
			CorrectAnswer: q.CorrectText,
			Selected:      selected,
		}
		score.Results = append(score.Results, result)

		if correct {
			score.CorrectCount++
			RecordActivity(q.WordID)
		}
		if err := config.DB.Create(&models.QuizResult{
			WordID:  q.WordID,
			Mode:    models.QuizModeChoice,
			Correct: correct,
		}).Error; err != nil {
			return nil, err
		}
	}

	return score, nil
}

// QuizStats aggregates graded answers for the stats endpoint.
type QuizStats struct {
	Total        int64   `json:"total"`
	Correct      int64   `json:"correct"`
	Wrong        int64   `json:"wrong"`
	Accuracy     float64 `json:"accuracy"`
	TodayTotal   int64   `json:"today_total"`
	TodayCorrect int64   `json:"today_correct"`
	ChoiceTotal  int64   `json:"choice_total"`
	CardTotal    int64   `json:"flashcard_total"`
}

func GetQuizStats() (*QuizStats, error) {
	stats := &QuizStats{}
	db := config.DB.Model(&models.QuizResult{})

	if err := db.Count(&stats.Total).Error; err != nil {
		return nil, err
	}
	if err := config.DB.Model(&models.QuizResult{}).
		Where("correct = ?", true).Count(&stats.Correct).Error; err != nil {
		return nil, err
	}
	stats.Wrong = stats.Total - stats.Correct
	if stats.Total > 0 {
		stats.Accuracy = float64(stats.Correct) / float64(stats.Total)
	}

	// "Today" follows the ledger day, not server-local midnight.
	dayStart, _ := time.ParseInLocation("2006-01-02", LedgerToday(), config.LedgerTZ)
	if err := config.DB.Model(&models.QuizResult{}).
		Where("created_at >= ?", dayStart).Count(&stats.TodayTotal).Error; err != nil {
		return nil, err
	}
	if err := config.DB.Model(&models.QuizResult{}).
		Where("created_at >= ? AND correct = ?", dayStart, true).
		Count(&stats.TodayCorrect).Error; err != nil {
		return nil, err
	}

	if err := config.DB.Model(&models.QuizResult{}).
		Where("mode = ?", models.QuizModeChoice).Count(&stats.ChoiceTotal).Error; err != nil {
		return nil, err
	}
	if err := config.DB.Model(&models.QuizResult{}).
		Where("mode = ?", models.QuizModeFlashcard).Count(&stats.CardTotal).Error; err != nil {
		return nil, err
	}

	return stats, nil
}

// Caller holds quizMu.
func pruneSessionsLocked() {
	cutoff := time.Now().Add(-sessionTTL)
	for id, s := range quizSessions {
		if s.CreatedAt.Before(cutoff) {
			delete(quizSessions, id)
		}
	}
}
