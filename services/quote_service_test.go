package services

import (
	"errors"
	"testing"

	"fuel-distribution-api/models"
)

type fakeQuoteRepo struct {
	created []*models.QuoteSubmission
	err     error
}

func (r *fakeQuoteRepo) Create(q *models.QuoteSubmission) error {
	if r.err != nil {
		return r.err
	}
	r.created = append(r.created, q)
	return nil
}

func stubQuoteFlow(t *testing.T, repoErr, adminErr error) (*fakeQuoteRepo, *[]string) {
	t.Helper()

	repo := &fakeQuoteRepo{err: repoErr}
	var thanked []string

	origRepo := quoteRepo
	origAdmin := sendQuoteAdminNoticeFunc
	origCustomer := enqueueQuoteCustomerEmailFunc
	t.Cleanup(func() {
		quoteRepo = origRepo
		sendQuoteAdminNoticeFunc = origAdmin
		enqueueQuoteCustomerEmailFunc = origCustomer
	})

	quoteRepo = repo
	sendQuoteAdminNoticeFunc = func(q *models.QuoteSubmission) error { return adminErr }
	enqueueQuoteCustomerEmailFunc = func(q *models.QuoteSubmission) { thanked = append(thanked, q.Email) }

	return repo, &thanked
}

func TestSubmitQuoteSuccessLowercasesEmail(t *testing.T) {
	repo, thanked := stubQuoteFlow(t, nil, nil)

	id, err := SubmitQuote(&QuoteRequest{
		Name:    "Jane",
		Email:   "JANE@X.com",
		Phone:   "4055551234",
		Message: "need diesel",
	})
	if err != nil {
		t.Fatalf("SubmitQuote returned error: %v", err)
	}
	if id == "" {
		t.Fatal("expected a non-empty quote id")
	}

	if len(repo.created) != 1 {
		t.Fatalf("expected 1 insert, got %d", len(repo.created))
	}
	row := repo.created[0]
	if row.ID != id {
		t.Fatalf("returned id %q does not match stored id %q", id, row.ID)
	}
	if row.Email != "jane@x.com" {
		t.Fatalf("email must be stored lower-cased, got %q", row.Email)
	}
	if row.Status != models.QuoteStatusNew {
		t.Fatalf("unexpected status: %q", row.Status)
	}
	if row.Company != nil || row.Service != nil {
		t.Fatalf("empty optional fields must stay NULL, got %+v", row)
	}

	if len(*thanked) != 1 || (*thanked)[0] != "jane@x.com" {
		t.Fatalf("expected thank-you queued for the requester, got %v", *thanked)
	}
}

func TestSubmitQuoteEnumeratesMissingFields(t *testing.T) {
	stubQuoteFlow(t, nil, nil)

	_, err := SubmitQuote(&QuoteRequest{Email: "not-an-email"})

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	fields := violatedFields(verr)
	for _, want := range []string{"name", "phone", "message", "email"} {
		if !fields[want] {
			t.Fatalf("expected violation on %s, got: %+v", want, verr.Errors)
		}
	}
}

func TestSubmitQuoteAdminEmailFailureIsFatal(t *testing.T) {
	repo, thanked := stubQuoteFlow(t, nil, errors.New("smtp down"))

	_, err := SubmitQuote(&QuoteRequest{
		Name:    "Jane",
		Email:   "jane@x.com",
		Phone:   "4055551234",
		Message: "need diesel",
	})
	if err == nil {
		t.Fatal("lead notification failure must fail the quote request")
	}

	// The row is already stored by the time the notification fails.
	if len(repo.created) != 1 {
		t.Fatalf("expected the lead row to be persisted, got %d", len(repo.created))
	}
	if len(*thanked) != 0 {
		t.Fatal("no thank-you may be queued when the flow fails")
	}
}

func TestSubmitQuotePersistenceFailure(t *testing.T) {
	_, thanked := stubQuoteFlow(t, errors.New("insert rejected"), nil)

	_, err := SubmitQuote(&QuoteRequest{
		Name:    "Jane",
		Email:   "jane@x.com",
		Phone:   "4055551234",
		Message: "need diesel",
	})
	if err == nil {
		t.Fatal("expected persistence failure to surface")
	}
	if len(*thanked) != 0 {
		t.Fatal("no thank-you may be queued when the insert fails")
	}
}

func TestSubmitQuoteKeepsOptionalFields(t *testing.T) {
	repo, _ := stubQuoteFlow(t, nil, nil)

	_, err := SubmitQuote(&QuoteRequest{
		Name:    "Jane",
		Email:   "jane@x.com",
		Phone:   "4055551234",
		Message: "need diesel",
		Company: "Acme Transport",
		Service: "bulk-delivery",
	})
	if err != nil {
		t.Fatalf("SubmitQuote returned error: %v", err)
	}

	row := repo.created[0]
	if row.Company == nil || *row.Company != "Acme Transport" {
		t.Fatalf("unexpected company: %v", row.Company)
	}
	if row.Service == nil || *row.Service != "bulk-delivery" {
		t.Fatalf("unexpected service: %v", row.Service)
	}
}
