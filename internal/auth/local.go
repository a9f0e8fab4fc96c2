package auth

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/db/models"
)

// LocalProvider handles local database authentication.
type LocalProvider struct {
	db *gorm.DB
}

// NewLocalProvider creates a new local authentication provider.
func NewLocalProvider(db *gorm.DB) *LocalProvider {
	return &LocalProvider{
		db: db,
	}
}

// Authenticate authenticates a user against the local database.
func (p *LocalProvider) Authenticate(username, password string) (*models.User, error) {
	user, err := p.GetUserByUsername(username)
	if err != nil {
		return nil, err
	}

	if !user.VerifyPassword(password) {
		return nil, ErrInvalidPassword
	}

	return user, nil
}

// CreateUser creates a new local user.
func (p *LocalProvider) CreateUser(username, email, password string) (*models.User, error) {
	_, err := p.GetUserByUsername(username)
	if err == nil {
		return nil, ErrUserNameExists
	}

	if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	user := models.User{
		Username: username,
		Email:    email,
		Password: models.HashPassword(password),
	}

	if err = p.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

// GetUserByUsername retrieves a user by username.
func (p *LocalProvider) GetUserByUsername(username string) (*models.User, error) {
	// zero value struct conditions are dropped by gorm
	if username == "" {
		return nil, ErrUserNotFound
	}

	var user models.User

	err := p.db.Where(&models.User{Username: username}).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	return &user, nil
}

// CountUsers returns the number of stored users.
func (p *LocalProvider) CountUsers() (int64, error) {
	var count int64
	if err := p.db.Model(&models.User{}).Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}
