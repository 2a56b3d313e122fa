// controllers/import_controller.go
package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/maverick001/EasyVocab/services"
	"github.com/maverick001/EasyVocab/utils"

	"github.com/gin-gonic/gin"
)

// POST /api/upload
//
// Multipart vocabulary import: .xml wordbook, .xlsx or .csv rows.
func UploadVocabulary(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "No file provided"})
		return
	}
	if fileHeader.Filename == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "No file selected"})
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if ext != ".xml" && ext != ".xlsx" && ext != ".csv" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid file type. Only XML, XLSX and CSV files are allowed."})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	defer file.Close()

	// Rows the parser drops are invisible to the stats; only valid items
	// count.
	var entries []utils.WordbookEntry
	if ext == ".xml" {
		entries, _, err = utils.ParseWordbook(file)
		if errors.Is(err, utils.ErrInvalidWordbook) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "XML parsing error: invalid wordbook file"})
			return
		}
	} else {
		entries, _, err = utils.ParseSpreadsheet(file, fileHeader.Filename)
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	stats, err := services.ImportEntries(entries)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	message := fmt.Sprintf("Import completed: %d words added", stats.Added)
	if stats.SkippedDuplicates > 0 {
		message += fmt.Sprintf(", %d duplicates skipped", stats.SkippedDuplicates)
	}
	if stats.Errors > 0 {
		message += fmt.Sprintf(", %d errors encountered", stats.Errors)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "stats": stats, "message": message})
}
