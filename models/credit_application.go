package models

import "time"

// Credit application triage statuses.
const (
	CreditApplicationStatusNew         = "new"
	CreditApplicationStatusUnderReview = "under_review"
	CreditApplicationStatusApproved    = "approved"
	CreditApplicationStatusDeclined    = "declined"
)

// IsValidCreditApplicationStatus reports whether s is a known triage status.
func IsValidCreditApplicationStatus(s string) bool {
	switch s {
	case CreditApplicationStatusNew,
		CreditApplicationStatusUnderReview,
		CreditApplicationStatusApproved,
		CreditApplicationStatusDeclined:
		return true
	}
	return false
}

// CreditApplication represents the credit_applications table. Data holds the
// full validated payload verbatim; Files holds the document path map. Both
// are JSON columns. Rows are created once by the intake pipeline and only
// status/internal_notes change afterwards.
type CreditApplication struct {
	ID                      string    `gorm:"primaryKey;column:id;size:36" json:"id"`
	CompanyName             string    `gorm:"column:company_name" json:"company_name"`
	EstimatedMonthlyGallons float64   `gorm:"column:estimated_monthly_gallons" json:"estimated_monthly_gallons"`
	Data                    string    `gorm:"column:data;type:json" json:"data"`
	Files                   string    `gorm:"column:files;type:json" json:"files"`
	Status                  string    `gorm:"column:status" json:"status"`
	InternalNotes           *string   `gorm:"column:internal_notes" json:"internal_notes,omitempty"`
	SubmittedAt             time.Time `gorm:"column:submitted_at" json:"submitted_at"`
	CreateAt                time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt                time.Time `gorm:"column:update_at" json:"update_at"`
}

func (CreditApplication) TableName() string {
	return "credit_applications"
}
