// Package contact stores and reads the messages of the contact form.
package contact

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/db/models"
)

var (
	// ErrContactNotFound is returned when a contact message is not found.
	ErrContactNotFound = errors.New("contact not found")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Fields are the fields a visitor submits.
type Fields struct {
	Name    string `json:"name" validate:"required,max=255"`
	Email   string `json:"email" validate:"required,max=255"`
	Message string `json:"message" validate:"required"`
}

// Normalize trims surrounding whitespace of all fields.
func (f *Fields) Normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Message = strings.TrimSpace(f.Message)
}

// Create stores a new, unread message.
func Create(db *gorm.DB, fields *Fields) (*models.Contact, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	contact := &models.Contact{
		Name:    fields.Name,
		Email:   fields.Email,
		Message: fields.Message,
	}

	if err := db.Create(contact).Error; err != nil {
		return nil, err
	}

	return contact, nil
}

// List returns all messages, newest first.
func List(db *gorm.DB) ([]models.Contact, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	contacts := make([]models.Contact, 0)

	result := db.
		Order("created_at DESC").
		Order("id DESC").
		Find(&contacts)
	if result.Error != nil {
		return nil, result.Error
	}

	return contacts, nil
}

// MarkRead flags a message as read. Marking a read message again is a no-op.
func MarkRead(db *gorm.DB, id uint64) (*models.Contact, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var contact models.Contact

	result := db.First(&contact, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrContactNotFound
		}

		return nil, result.Error
	}

	// RowsAffected is not checked, MySQL reports 0 for unchanged rows
	if err := db.Model(&contact).Update("is_read", true).Error; err != nil {
		return nil, err
	}

	contact.IsRead = true

	return &contact, nil
}

// CountUnread returns the number of unread messages.
func CountUnread(db *gorm.DB) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	var count int64
	if err := db.Model(&models.Contact{}).Where("is_read = ?", false).Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}
