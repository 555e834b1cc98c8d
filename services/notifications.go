package services

import (
	"fmt"
	"html"
	"os"
	"strings"

	"fuel-distribution-api/config"
	"fuel-distribution-api/models"
)

// escapeText makes caller-supplied free text safe for interpolation into an
// HTML email body. Escaping happens before the line-break pass so literal
// markup in the input cannot survive.
func escapeText(s string) string {
	return strings.ReplaceAll(html.EscapeString(s), "\n", "<br>")
}

func adminRecipients() ([]string, []string) {
	to := []string{}
	if addr := os.Getenv("ADMIN_EMAIL"); addr != "" {
		to = append(to, addr)
	}
	var cc []string
	if addr := os.Getenv("ADMIN_CC_EMAIL"); addr != "" {
		cc = append(cc, addr)
	}
	return to, cc
}

func siteURL() string {
	if u := os.Getenv("SITE_URL"); u != "" {
		return strings.TrimSuffix(u, "/")
	}
	return ""
}

// SendCreditApplicationAdminNotice emails the credit desk about a new
// application. The caller decides whether a failure here is fatal.
func SendCreditApplicationAdminNotice(app *models.CreditApplicationPayload, submissionID string, files models.DocumentPaths) error {
	to, cc := adminRecipients()
	subject, body := buildCreditApplicationAdminEmail(app, submissionID, files)
	return config.SendMail(to, cc, subject, body)
}

func buildCreditApplicationAdminEmail(app *models.CreditApplicationPayload, submissionID string, files models.DocumentPaths) (string, string) {
	subject := fmt.Sprintf("New credit application: %s", app.Company.LegalName)

	documents := "none"
	if !files.IsEmpty() {
		var names []string
		if files.W9 != nil {
			names = append(names, "W-9")
		}
		if files.TaxExemptionCert != nil {
			names = append(names, "tax exemption certificate")
		}
		if files.COI != nil {
			names = append(names, "certificate of insurance")
		}
		if n := len(files.OtherDocs); n > 0 {
			names = append(names, fmt.Sprintf("%d other document(s)", n))
		}
		documents = strings.Join(names, ", ")
	}

	var b strings.Builder
	b.WriteString("<h2>New Commercial Credit Application</h2>")
	b.WriteString(fmt.Sprintf("<p><strong>Submission ID:</strong> %s</p>", escapeText(submissionID)))
	b.WriteString(fmt.Sprintf("<p><strong>Company:</strong> %s", escapeText(app.Company.LegalName)))
	if app.Company.DBA != "" {
		b.WriteString(fmt.Sprintf(" (DBA %s)", escapeText(app.Company.DBA)))
	}
	b.WriteString("</p>")
	b.WriteString(fmt.Sprintf("<p><strong>Contact:</strong> %s / %s</p>",
		escapeText(app.Company.Email), escapeText(app.Company.Phone)))
	b.WriteString(fmt.Sprintf("<p><strong>Estimated monthly gallons:</strong> %.0f</p>",
		app.Sales.EstimatedMonthlyGallons))
	b.WriteString(fmt.Sprintf("<p><strong>Products:</strong> %s</p>",
		escapeText(strings.Join(app.Sales.Products, ", "))))
	b.WriteString(fmt.Sprintf("<p><strong>Signed by:</strong> %s, %s</p>",
		escapeText(app.Agreements.SignatureName), escapeText(app.Agreements.SignatureTitle)))
	b.WriteString(fmt.Sprintf("<p><strong>Documents:</strong> %s</p>", escapeText(documents)))
	if u := siteURL(); u != "" {
		b.WriteString(fmt.Sprintf(`<p><a href="%s/admin/credit-applications">Open the admin review page</a></p>`, u))
	}

	return subject, b.String()
}

// EnqueueCreditApplicationCustomerEmail dispatches the applicant's
// confirmation through the background mail queue. Outcome is not observable
// by the submitting request.
func EnqueueCreditApplicationCustomerEmail(app *models.CreditApplicationPayload, submissionID string) {
	subject, body := buildCreditApplicationCustomerEmail(app, submissionID)
	EnqueueMail([]string{app.Company.Email}, subject, body)
}

func buildCreditApplicationCustomerEmail(app *models.CreditApplicationPayload, submissionID string) (string, string) {
	subject := "We received your credit application"

	var b strings.Builder
	b.WriteString(fmt.Sprintf("<p>Hello %s,</p>", escapeText(app.Agreements.SignatureName)))
	b.WriteString(fmt.Sprintf(
		"<p>Thank you for applying for a commercial fuel account for %s. "+
			"Your application reference is <strong>%s</strong>.</p>",
		escapeText(app.Company.LegalName), escapeText(submissionID)))
	b.WriteString("<p>Our credit team reviews applications within 2&ndash;3 business days and will reach out with next steps.</p>")
	b.WriteString("<p>&mdash; The Credit Team</p>")

	return subject, b.String()
}

// SendQuoteAdminNotice emails the sales inbox about a new quote request.
func SendQuoteAdminNotice(q *models.QuoteSubmission) error {
	to, cc := adminRecipients()
	subject, body := buildQuoteAdminEmail(q)
	return config.SendMail(to, cc, subject, body)
}

func buildQuoteAdminEmail(q *models.QuoteSubmission) (string, string) {
	subject := fmt.Sprintf("New quote request from %s", q.Name)

	var b strings.Builder
	b.WriteString("<h2>New Quote Request</h2>")
	b.WriteString(fmt.Sprintf("<p><strong>Name:</strong> %s</p>", escapeText(q.Name)))
	if q.Company != nil && *q.Company != "" {
		b.WriteString(fmt.Sprintf("<p><strong>Company:</strong> %s</p>", escapeText(*q.Company)))
	}
	b.WriteString(fmt.Sprintf("<p><strong>Email:</strong> %s</p>", escapeText(q.Email)))
	b.WriteString(fmt.Sprintf("<p><strong>Phone:</strong> %s</p>", escapeText(q.Phone)))
	if q.Service != nil && *q.Service != "" {
		b.WriteString(fmt.Sprintf("<p><strong>Service:</strong> %s</p>", escapeText(*q.Service)))
	}
	b.WriteString(fmt.Sprintf("<p><strong>Message:</strong><br>%s</p>", escapeText(q.Message)))

	return subject, b.String()
}

// EnqueueQuoteCustomerEmail sends the requester a thank-you through the
// background mail queue.
func EnqueueQuoteCustomerEmail(q *models.QuoteSubmission) {
	subject, body := buildQuoteCustomerEmail(q)
	EnqueueMail([]string{q.Email}, subject, body)
}

func buildQuoteCustomerEmail(q *models.QuoteSubmission) (string, string) {
	subject := "We received your quote request"

	var b strings.Builder
	b.WriteString(fmt.Sprintf("<p>Hello %s,</p>", escapeText(q.Name)))
	b.WriteString("<p>Thanks for reaching out. A member of our sales team will contact you shortly with pricing for your area.</p>")
	b.WriteString("<p>&mdash; The Sales Team</p>")

	return subject, b.String()
}
