package services

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"time"

	"github.com/google/uuid"

	"fuel-distribution-api/config"
	"fuel-distribution-api/models"
)

// ErrMalformedInput marks a request whose application payload was missing or
// not decodable JSON.
var ErrMalformedInput = errors.New("malformed application payload")

type creditApplicationRepository interface {
	Create(app *models.CreditApplication) error
}

type gormCreditApplicationRepository struct{}

func (r *gormCreditApplicationRepository) Create(app *models.CreditApplication) error {
	return config.DB.Create(app).Error
}

// Pipeline collaborators, swappable in tests.
var (
	creditApplicationRepo    creditApplicationRepository = &gormCreditApplicationRepository{}
	collectDocumentsFunc                                 = CollectApplicationDocuments
	sendAdminNoticeFunc                                  = SendCreditApplicationAdminNotice
	enqueueCustomerEmailFunc                             = EnqueueCreditApplicationCustomerEmail
	submissionNow                                        = time.Now
	newSubmissionID                                      = uuid.NewString
)

// SubmitCreditApplication runs the intake pipeline for one application:
// decode and validate the payload, upload whatever documents are attached,
// stamp the consent metadata, persist the row, then notify. Returns the
// generated submission identifier.
//
// Failure semantics: ErrMalformedInput and *ValidationError reject the
// request before any side effect; a persistence error aborts after uploads
// (uploaded objects are not cleaned up); notification failures never fail a
// persisted submission.
func SubmitCreditApplication(rawPayload string, form *multipart.Form, requesterIP string) (string, error) {
	var payload models.CreditApplicationPayload
	if err := json.Unmarshal([]byte(rawPayload), &payload); err != nil {
		return "", ErrMalformedInput
	}

	if verr := ValidateCreditApplication(&payload); verr != nil {
		return "", verr
	}

	now := submissionNow()
	files := collectDocumentsFunc(form, now)

	signedAt := now.UTC().Format(time.RFC3339)
	payload.Agreements.IPAddress = requesterIP
	payload.Agreements.SignedAt = signedAt
	payload.Agreements.IntegrityTag = integrityTag(&payload.Agreements, signedAt)

	dataJSON, err := json.Marshal(&payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode application payload: %w", err)
	}
	filesJSON, err := json.Marshal(files)
	if err != nil {
		return "", fmt.Errorf("failed to encode document paths: %w", err)
	}

	app := &models.CreditApplication{
		ID:                      newSubmissionID(),
		CompanyName:             payload.Company.LegalName,
		EstimatedMonthlyGallons: payload.Sales.EstimatedMonthlyGallons,
		Data:                    string(dataJSON),
		Files:                   string(filesJSON),
		Status:                  models.CreditApplicationStatusNew,
		SubmittedAt:             now,
		CreateAt:                now,
		UpdateAt:                now,
	}

	if err := creditApplicationRepo.Create(app); err != nil {
		return "", fmt.Errorf("failed to persist credit application: %w", err)
	}

	// The submission stands once the row exists; a failed admin notice is
	// logged, not surfaced.
	if err := sendAdminNoticeFunc(&payload, app.ID, files); err != nil {
		log.Printf("Failed to send admin notice for credit application %s: %v", app.ID, err)
	}

	enqueueCustomerEmailFunc(&payload, app.ID)

	return app.ID, nil
}

// integrityTag derives the tamper-evidence breadcrumb stamped onto the
// agreements block. It is a plain base64 encoding, not a signature.
func integrityTag(a *models.Agreements, signedAt string) string {
	seed := fmt.Sprintf("%t-%t-%s-%s", a.AgreedToTerms, a.AuthorizedCreditCheck, a.SignatureName, signedAt)
	return base64.StdEncoding.EncodeToString([]byte(seed))
}
