package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"fuel-distribution-api/config"
	"fuel-distribution-api/models"
	"fuel-distribution-api/utils"
)

// QuoteRequest is the public quote form body.
type QuoteRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
	Company string `json:"company"`
	Service string `json:"service"`
}

type quoteRepository interface {
	Create(q *models.QuoteSubmission) error
}

type gormQuoteRepository struct{}

func (r *gormQuoteRepository) Create(q *models.QuoteSubmission) error {
	return config.DB.Create(q).Error
}

var (
	quoteRepo                     quoteRepository = &gormQuoteRepository{}
	sendQuoteAdminNoticeFunc                      = SendQuoteAdminNotice
	enqueueQuoteCustomerEmailFunc                 = EnqueueQuoteCustomerEmail
	quoteNow                                      = time.Now
	newQuoteID                                    = uuid.NewString
)

// SubmitQuote validates and persists one quote request, then notifies. The
// sales-inbox email is part of this flow's contract: its failure fails the
// request even though the row is already stored. The customer thank-you goes
// through the background queue.
func SubmitQuote(req *QuoteRequest) (string, error) {
	if verr := validateQuoteRequest(req); verr != nil {
		return "", verr
	}

	q := &models.QuoteSubmission{
		ID:       newQuoteID(),
		Name:     utils.SanitizeInput(req.Name),
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:    utils.SanitizeInput(req.Phone),
		Message:  utils.SanitizeInput(req.Message),
		Status:   models.QuoteStatusNew,
		CreateAt: quoteNow(),
	}
	if c := utils.SanitizeInput(req.Company); c != "" {
		q.Company = &c
	}
	if s := utils.SanitizeInput(req.Service); s != "" {
		q.Service = &s
	}

	if err := quoteRepo.Create(q); err != nil {
		return "", fmt.Errorf("failed to persist quote submission: %w", err)
	}

	if err := sendQuoteAdminNoticeFunc(q); err != nil {
		return "", fmt.Errorf("failed to send lead notification: %w", err)
	}

	enqueueQuoteCustomerEmailFunc(q)

	return q.ID, nil
}

func validateQuoteRequest(req *QuoteRequest) *ValidationError {
	list := &fieldErrorList{}

	list.requireText("name", req.Name, "Name is required")
	list.requireText("email", req.Email, "Email is required")
	list.requireText("phone", req.Phone, "Phone is required")
	list.requireText("message", req.Message, "Message is required")

	if strings.TrimSpace(req.Email) != "" && !utils.ValidateEmail(strings.TrimSpace(req.Email)) {
		list.add("email", "Email address is not valid")
	}

	if len(list.errors) == 0 {
		return nil
	}
	return &ValidationError{Errors: list.errors}
}
