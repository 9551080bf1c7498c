package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// helloBody is written byte for byte; clients compare it literally.
var helloBody = []byte(`{"message": "Hello World"}`)

// Hello handles GET /api/hello on the placeholder server
func Hello(c *gin.Context) {
	c.Data(http.StatusOK, gin.MIMEJSON, helloBody)
}

// Health handles GET /health
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Unix(),
	})
}
