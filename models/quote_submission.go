package models

import "time"

// QuoteStatusNew is the status every freshly stored lead starts in.
const QuoteStatusNew = "new"

// QuoteSubmission represents the quote_submissions table (leads from the
// public quote form).
type QuoteSubmission struct {
	ID       string    `gorm:"primaryKey;column:id;size:36" json:"id"`
	Name     string    `gorm:"column:name" json:"name"`
	Email    string    `gorm:"column:email" json:"email"`
	Phone    string    `gorm:"column:phone" json:"phone"`
	Company  *string   `gorm:"column:company" json:"company,omitempty"`
	Message  string    `gorm:"column:message" json:"message"`
	Service  *string   `gorm:"column:service" json:"service,omitempty"`
	Status   string    `gorm:"column:status" json:"status"`
	CreateAt time.Time `gorm:"column:create_at" json:"create_at"`
}

func (QuoteSubmission) TableName() string {
	return "quote_submissions"
}
