// controllers/auth_controller.go
package controllers

import (
	"log"
	"net/http"
	"os"

	"github.com/maverick001/EasyVocab/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// The site password never sits in memory in the clear after startup.
var sitePasswordHash []byte

// InitAuth hashes the configured site password once at startup.
func InitAuth() {
	password := os.Getenv("SITE_PASSWORD")
	if password == "" {
		log.Println("SITE_PASSWORD not set, API runs without authentication")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash site password: %v", err)
	}
	sitePasswordHash = hash
}

// Login checks the site password and hands out a session token.
func Login(c *gin.Context) {
	if len(sitePasswordHash) == 0 {
		c.JSON(http.StatusOK, gin.H{"success": true, "token": "", "open_access": true})
		return
	}

	var req struct {
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "password is required"})
		return
	}

	if err := bcrypt.CompareHashAndPassword(sitePasswordHash, []byte(req.Password)); err != nil {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "Incorrect password. Please try again."})
		return
	}

	token, err := utils.GenerateJWT()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
}
