// controllers/debt_controller.go
package controllers

import (
	"net/http"
	"time"

	"github.com/maverick001/EasyVocab/services"

	"github.com/gin-gonic/gin"
)

// GET /api/debt
func GetWordDebt(c *gin.Context) {
	total, breakdown, err := services.ComputeDebt(time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "total_debt": total, "breakdown": breakdown})
}

// GET /api/daily-count
func GetDailyCount(c *gin.Context) {
	count, err := services.GetDailyCount()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": count})
}
