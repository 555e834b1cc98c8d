package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"fuel-distribution-api/config"
	"fuel-distribution-api/services"
)

// ListCreditApplications returns every stored application for the triage
// view, newest first.
func ListCreditApplications(c *gin.Context) {
	svc := services.NewCreditApplicationAdminService(config.DB)

	apps, err := svc.List()
	if err != nil {
		log.Printf("Failed to list credit applications: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load applications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "applications": apps})
}

type updateCreditApplicationRequest struct {
	ID            string  `json:"id"`
	Status        *string `json:"status"`
	InternalNotes *string `json:"internal_notes"`
}

// UpdateCreditApplication applies a partial status/notes update to one
// application.
func UpdateCreditApplication(c *gin.Context) {
	var req updateCreditApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}
	if req.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "id is required"})
		return
	}

	svc := services.NewCreditApplicationAdminService(config.DB)

	app, err := svc.Update(req.ID, req.Status, req.InternalNotes)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Application not found"})
		case errors.Is(err, services.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid status value"})
		default:
			log.Printf("Failed to update credit application %s: %v", req.ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update application"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "application": app})
}
