// controllers/word_controller.go
package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/maverick001/EasyVocab/services"

	"github.com/gin-gonic/gin"
)

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid word id"})
		return 0, false
	}
	return uint(id), true
}

// GET /api/categories
func GetCategories(c *gin.Context) {
	categories, err := services.ListCategories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "categories": categories})
}

// GET /api/category/:category/count
func GetCategoryCount(c *gin.Context) {
	category := c.Param("category")
	count, err := services.CategoryCount(category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "category": category, "count": count})
}

// GET /api/words/:category?index=&sort_by=
func GetWordByCategory(c *gin.Context) {
	category := c.Param("category")

	index := 0
	if v := c.Query("index"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid index parameter"})
			return
		}
		index = parsed
	}

	sortBy := c.DefaultQuery("sort_by", "updated_at")

	word, err := services.GetWordByIndex(category, index, sortBy)
	if errors.Is(err, services.ErrNoWords) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "No words found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "word": word})
}

// GET /api/words/search?q=
func SearchWords(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Search query is required"})
		return
	}
	if len([]rune(query)) < 2 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Search query must be at least 2 characters"})
		return
	}

	results, err := services.SearchWords(query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "query": query, "count": len(results), "results": results})
}

// GET /api/word/:id
func GetWordDetail(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	word, err := services.GetWordDetail(id)
	if errors.Is(err, services.ErrWordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Word not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "word": word})
}

// GET /api/word/:id/history
func GetWordHistory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	history, err := services.GetWordHistory(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "word_id": id, "count": len(history), "history": history})
}

// GET /api/word/:id/position?sort_by=
func GetWordPosition(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	sortBy := c.DefaultQuery("sort_by", "updated_at")

	index, total, category, err := services.GetWordPosition(id, sortBy)
	if errors.Is(err, services.ErrWordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Word not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "index": index, "total_count": total, "category": category})
}

// POST /api/words
func CreateWord(c *gin.Context) {
	var req struct {
		Word            string `json:"word"`
		Translation     string `json:"translation"`
		ExampleSentence string `json:"example_sentence"`
		Category        string `json:"category"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "No data provided"})
		return
	}

	word := strings.TrimSpace(req.Word)
	translation := strings.TrimSpace(req.Translation)
	category := strings.TrimSpace(req.Category)
	example := strings.TrimSpace(req.ExampleSentence)

	if word == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Word is required"})
		return
	}
	if translation == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Translation is required"})
		return
	}
	if category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Category is required"})
		return
	}

	created, err := services.CreateWord(word, translation, example, category)
	var dup *services.DuplicateError
	if errors.As(err, &dup) {
		c.JSON(http.StatusConflict, gin.H{
			"success":           false,
			"error":             fmt.Sprintf("Word %q already exists in category %q", dup.Word, dup.ExistingCategory),
			"duplicate":         true,
			"existing_word_id":  dup.ExistingID,
			"existing_category": dup.ExistingCategory,
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Word %q added to category %q", word, category),
		"word_id": created.ID,
	})
}

// PUT /api/words/:id
func UpdateWord(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req struct {
		Word            *string `json:"word"`
		Translation     *string `json:"translation"`
		ExampleSentence *string `json:"example_sentence"`
		ImageFile       *string `json:"image_file"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "No data provided"})
		return
	}

	err := services.UpdateWord(id, services.WordUpdate{
		Word:            req.Word,
		Translation:     req.Translation,
		ExampleSentence: req.ExampleSentence,
		ImageFile:       req.ImageFile,
	})
	if errors.Is(err, services.ErrWordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Word not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Word updated successfully"})
}

// PUT /api/words/:id/category
func MoveWordCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req struct {
		NewCategory string `json:"new_category"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "new_category is required"})
		return
	}
	newCategory := strings.TrimSpace(req.NewCategory)
	if newCategory == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Category cannot be empty"})
		return
	}

	err := services.MoveWordCategory(id, newCategory)
	var dup *services.DuplicateError
	if errors.As(err, &dup) {
		c.JSON(http.StatusConflict, gin.H{
			"success":   false,
			"error":     fmt.Sprintf("Word %q already exists in category %q", dup.Word, newCategory),
			"duplicate": true,
		})
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
	c.JSON(http.StatusOK, gin.H{"success": true, "message": fmt.Sprintf("Word moved to category %q", newCategory)})
}

// DELETE /api/words/:id?scope=current_category|all_categories
func DeleteWord(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	scope := c.Query("scope")

	confirmation, err := services.DeleteWord(id, scope)
	if errors.Is(err, services.ErrWordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Word not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	if confirmation != nil {
		c.JSON(http.StatusOK, gin.H{
			"success":               false,
			"requires_confirmation": true,
			"word":                  confirmation.Word,
			"current_category":      confirmation.CurrentCategory,
			"other_categories":      confirmation.OtherCategories,
			"message":               fmt.Sprintf("Word %q also exists in %d other categories", confirmation.Word, len(confirmation.OtherCategories)),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Word deleted"})
}

// POST /api/words/:id/review
func ReviewWord(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	word, err := services.IncrementReview(id)
	if errors.Is(err, services.ErrWordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Word not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"review_count":  word.ReviewCount,
		"last_reviewed": word.LastReviewed,
	})
}
