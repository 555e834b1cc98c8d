package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"fuel-distribution-api/services"
	"fuel-distribution-api/utils"
)

const maxMultipartMemory = 32 << 20 // 32 MB

// SubmitCreditApplication handles the multi-step credit application form:
// a multipart body carrying the JSON payload under "application" plus the
// optional document fields.
func SubmitCreditApplication(c *gin.Context) {
	if err := c.Request.ParseMultipartForm(maxMultipartMemory); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid multipart form"})
		return
	}

	// FormValue only yields text parts, so a file uploaded under
	// "application" comes back empty and is rejected here.
	rawPayload := c.Request.FormValue("application")
	if rawPayload == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Missing application payload"})
		return
	}

	submissionID, err := services.SubmitCreditApplication(
		rawPayload, c.Request.MultipartForm, utils.RequesterIP(c.Request))
	if err != nil {
		if errors.Is(err, services.ErrMalformedInput) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Application payload is not valid JSON"})
			return
		}

		var verr *services.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "Validation failed",
				"fields":  verr.Errors,
			})
			return
		}

		log.Printf("Credit application submission failed: %v", err)
		c.JSON(http.StatusInternalServerError, internalErrorResponse())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"submissionId": submissionID,
		"pdfUrl":       nil,
	})
}

// internalErrorResponse is the user-facing 500 body: an apology with the
// office fallback number so a failed web submission still becomes a lead.
func internalErrorResponse() gin.H {
	phone := os.Getenv("FALLBACK_PHONE")
	if phone == "" {
		phone = "(800) 555-0199"
	}
	return gin.H{
		"success": false,
		"error":   fmt.Sprintf("Something went wrong on our end. Please try again, or call us at %s.", phone),
	}
}
