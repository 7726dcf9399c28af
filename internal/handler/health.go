package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Ping is the health check endpoint.
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

// Root reports server liveness.
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "message board API is running",
	})
}
