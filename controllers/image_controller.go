// controllers/image_controller.go
package controllers

import (
	"fmt"
	"net/http"

	"github.com/maverick001/EasyVocab/services"
	"github.com/maverick001/EasyVocab/utils"

	"github.com/gin-gonic/gin"
)

// POST /api/words/:id/image  { "image_base64": "data:image/png;base64,..." }
func UploadWordImage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if !utils.S3Enabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "error": "Image storage is not configured"})
		return
	}

	if _, err := services.GetWordDetail(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Word not found"})
		return
	}

	var req struct {
		ImageBase64 string `json:"image_base64" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "image_base64 is required"})
		return
	}

	url, err := utils.UploadBase64ImageToS3(req.ImageBase64, fmt.Sprintf("word-%d", id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	if err := services.UpdateWord(id, services.WordUpdate{ImageFile: &url}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "image_url": url})
}

// GET /api/images
func ListImages(c *gin.Context) {
	images, err := utils.ListWordImages()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "images": images})
}
