package controllers

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
)

const serviceName = "fuel-distribution-api"

// Health is the uptime probe for the hosting platform.
func Health(c *gin.Context) {
	version := os.Getenv("APP_VERSION")
	if version == "" {
		version = "1.0.0"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   serviceName,
		"version":   version,
	})
}
