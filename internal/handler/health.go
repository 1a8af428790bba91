package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const apiVersion = "1.0.0"

// Health handles GET /api/health
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Navio Application is running",
	})
}

// Index handles GET /api/ with a map of the top-level resources.
func Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Navio Safety Platform API",
		"version": apiVersion,
		"endpoints": gin.H{
			"partners":  "/api/partners",
			"tips":      "/api/tips",
			"campaigns": "/api/campaigns",
			"sessions":  "/api/sessions",
			"questions": "/api/questions",
			"answers":   "/api/answers",
			"quiz":      "/api/quiz",
			"risk":      "/api/risk",
			"panic":     "/api/panic",
			"ai":        "/api/ai",
			"analytics": "/api/analytics",
		},
	})
}

// NotFound answers unknown /api paths.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "API endpoint not found"})
}
