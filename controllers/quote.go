package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"fuel-distribution-api/services"
)

// SubmitQuote handles the public quote form.
func SubmitQuote(c *gin.Context) {
	var req services.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}

	quoteID, err := services.SubmitQuote(&req)
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "Missing or invalid fields",
				"fields":  verr.Errors,
			})
			return
		}

		log.Printf("Quote submission failed: %v", err)
		c.JSON(http.StatusInternalServerError, internalErrorResponse())
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "quoteId": quoteID})
}
