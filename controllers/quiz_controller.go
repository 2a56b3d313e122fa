// controllers/quiz_controller.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/maverick001/EasyVocab/services"

	"github.com/gin-gonic/gin"
)

// POST /api/quiz/generate
func GenerateQuiz(c *gin.Context) {
	var req struct {
		Category string `json:"category"`
		Count    int    `json:"count"`
	}
	// Empty body means default category and size.
	_ = c.ShouldBindJSON(&req)

	sessionID, questions, err := services.GenerateQuiz(req.Category, req.Count)
	if errors.Is(err, services.ErrNoWords) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "No words available for a quiz"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "session_id": sessionID, "questions": questions})
}

// GET /api/quiz/next-word?category=
func GetNextQuizWord(c *gin.Context) {
	category := c.DefaultQuery("category", "All")

	word, err := services.NextQuizWord(category)
	if errors.Is(err, services.ErrNoWords) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "No words found for review in this category.", "word": nil})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "word": word})
}

// POST /api/quiz/result
//
// Two request shapes share this endpoint: a multiple-choice session
// submission {session_id, answers[]} graded against the stored answer key,
// and a flashcard flip {word_id, result} feeding the SRS schedule.
func SubmitQuizResult(c *gin.Context) {
	var req struct {
		SessionID string `json:"session_id"`
		Answers   []*int `json:"answers"`
		WordID    uint   `json:"word_id"`
		Result    string `json:"result"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "No data provided"})
		return
	}

	if req.SessionID != "" {
		score, err := services.ScoreQuiz(req.SessionID, req.Answers)
		if errors.Is(err, services.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Quiz session not found or expired"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "score": score})
		return
	}

	if req.WordID == 0 || req.Result == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Missing word_id or result"})
		return
	}

	outcome, err := services.ApplyFlashcardResult(req.WordID, req.Result)
	if errors.Is(err, services.ErrInvalidResult) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid result value"})
		return
	}
	if errors.Is(err, services.ErrWordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Word not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"word_id":   outcome.WordID,
		"old_count": outcome.OldCount,
		"new_count": outcome.NewCount,
		"srs": gin.H{
			"interval":    outcome.Interval,
			"repetitions": outcome.Repetitions,
			"next_review": outcome.NextReview,
		},
	})
}

// GET /api/quiz/stats
func GetQuizStats(c *gin.Context) {
	stats, err := services.GetQuizStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "stats": stats})
}
