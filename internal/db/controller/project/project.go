// Package project provides CRUD operations for portfolio projects.
package project

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/db/models"
)

var (
	// ErrProjectNotFound is returned when a project is not found.
	ErrProjectNotFound = errors.New("project not found")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Fields are the writable fields of a project. Every write supplies all of them.
type Fields struct {
	Title       string           `json:"title" validate:"required,max=255"`
	Description string           `json:"description"`
	TechStack   models.TechStack `json:"tech_stack"`
	ImageURL    string           `json:"image_url" validate:"max=500"`
	GithubURL   string           `json:"github_url" validate:"max=500"`
	DemoURL     string           `json:"demo_url" validate:"max=500"`
	OrderIndex  int              `json:"order_index"`
	IsFeatured  bool             `json:"is_featured"`
}

// Normalize trims the title and the URLs.
func (f *Fields) Normalize() {
	f.Title = strings.TrimSpace(f.Title)
	f.ImageURL = strings.TrimSpace(f.ImageURL)
	f.GithubURL = strings.TrimSpace(f.GithubURL)
	f.DemoURL = strings.TrimSpace(f.DemoURL)
}

// apply copies the fields onto the project, empty URLs become NULL.
func (f *Fields) apply(p *models.Project) {
	p.Title = strings.TrimSpace(f.Title)
	p.Description = f.Description
	p.TechStack = models.NewTechStack(f.TechStack)
	p.ImageURL = optional(f.ImageURL)
	p.GithubURL = optional(f.GithubURL)
	p.DemoURL = optional(f.DemoURL)
	p.OrderIndex = f.OrderIndex
	p.IsFeatured = f.IsFeatured
}

func optional(s string) *string {
	if s = strings.TrimSpace(s); s == "" {
		return nil
	}

	return &s
}

// List returns all projects, highest order index first, then newest first.
func List(db *gorm.DB) ([]models.Project, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	projects := make([]models.Project, 0)

	result := db.
		Order("order_index DESC").
		Order("created_at DESC").
		Order("id DESC").
		Find(&projects)
	if result.Error != nil {
		return nil, result.Error
	}

	return projects, nil
}

// Get retrieves a project by its ID.
func Get(db *gorm.DB, id uint64) (*models.Project, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var project models.Project

	result := db.First(&project, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}

		return nil, result.Error
	}

	return &project, nil
}

// Create stores a new project.
func Create(db *gorm.DB, fields *Fields) (*models.Project, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	project := new(models.Project)
	fields.apply(project)

	if err := db.Create(project).Error; err != nil {
		return nil, err
	}

	return project, nil
}

// Update replaces all fields of an existing project.
func Update(db *gorm.DB, id uint64, fields *Fields) (*models.Project, error) {
	project, err := Get(db, id)
	if err != nil {
		return nil, err
	}

	fields.apply(project)

	if err = db.Save(project).Error; err != nil {
		return nil, err
	}

	return project, nil
}

// Delete removes a project permanently.
func Delete(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Delete(&models.Project{}, id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrProjectNotFound
	}

	return nil
}

// Count returns the number of stored projects.
func Count(db *gorm.DB) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	var count int64
	if err := db.Model(&models.Project{}).Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}
