// controllers/generate_controller.go
package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/maverick001/EasyVocab/services"

	"github.com/gin-gonic/gin"
)

// POST /api/generate-sample
func GenerateSample(c *gin.Context) {
	var req struct {
		Word  string `json:"word"`
		Model string `json:"model"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Word) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Word is required"})
		return
	}

	ai := services.NewAIService()
	sentence, err := ai.GenerateSample(c.Request.Context(), strings.TrimSpace(req.Word), req.Model)
	if errors.Is(err, services.ErrAINotConfigured) {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "AI API key not configured. Please set AI_API_KEY in .env file."})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "sentence": sentence})
}

// POST /api/generate-translation
func GenerateTranslation(c *gin.Context) {
	var req struct {
		Word  string `json:"word"`
		Model string `json:"model"`
		Mode  string `json:"mode"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Word) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Word/Text is required"})
		return
	}

	ai := services.NewAIService()
	translation, err := ai.GenerateTranslation(c.Request.Context(), strings.TrimSpace(req.Word), req.Model, req.Mode)
	if errors.Is(err, services.ErrAINotConfigured) {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "AI API key not configured. Please set AI_API_KEY in .env file."})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "translation": translation})
}
