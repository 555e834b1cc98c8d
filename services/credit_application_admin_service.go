package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"fuel-distribution-api/models"
)

// ErrInvalidStatus marks an admin update carrying an unknown status value.
var ErrInvalidStatus = errors.New("invalid status value")

// CreditApplicationAdminService backs the admin triage surface.
type CreditApplicationAdminService struct {
	db *gorm.DB
}

func NewCreditApplicationAdminService(db *gorm.DB) *CreditApplicationAdminService {
	return &CreditApplicationAdminService{db: db}
}

// List returns every stored application, newest submission first.
func (s *CreditApplicationAdminService) List() ([]models.CreditApplication, error) {
	var apps []models.CreditApplication
	err := s.db.Order("submitted_at DESC").Find(&apps).Error
	return apps, err
}

// Update applies the provided fields (status and/or internal notes) to one
// application and returns the refreshed row. Returns
// gorm.ErrRecordNotFound when no row matches id.
func (s *CreditApplicationAdminService) Update(id string, status, internalNotes *string) (*models.CreditApplication, error) {
	var app models.CreditApplication
	if err := s.db.Where("id = ?", id).First(&app).Error; err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if status != nil {
		if !models.IsValidCreditApplicationStatus(*status) {
			return nil, ErrInvalidStatus
		}
		updates["status"] = *status
	}
	if internalNotes != nil {
		updates["internal_notes"] = *internalNotes
	}
	if len(updates) == 0 {
		return &app, nil
	}
	updates["update_at"] = time.Now()

	if err := s.db.Model(&models.CreditApplication{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}

	if err := s.db.Where("id = ?", id).First(&app).Error; err != nil {
		return nil, err
	}
	return &app, nil
}
