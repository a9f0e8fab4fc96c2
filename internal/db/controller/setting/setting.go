// Package setting provides read and upsert operations for the site settings.
package setting

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/GoPortfolio-Admin/GoPortfolio-Admin/internal/db/models"
)

// Known setting keys.
const (
	KeyTagline  = "tagline"
	KeyBio      = "bio"
	KeyLocation = "location"
	KeyCompany  = "company"
	KeyTelegram = "telegram"
	KeyGithub   = "github"
	KeyLinkedIn = "linkedin"
)

var (
	// ErrSettingNotFound is returned when a setting is not found.
	ErrSettingNotFound = errors.New("setting not found")
	// ErrSettingKeyEmpty is returned when attempting to write a setting with an empty key.
	ErrSettingKeyEmpty = errors.New("setting key cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// PublicKeys are the settings readable without authentication.
var PublicKeys = []string{KeyTagline, KeyBio, KeyLocation, KeyCompany, KeyTelegram}

// Defaults are the values of the seeded site and the fallback of the public page.
var Defaults = map[string]string{
	KeyTagline: "Turning smart ideas into digital reality.",
	KeyBio: "I'm Jimcaale, a passionate AI developer and web creator from Somaliland. " +
		"I specialize in building intelligent digital systems that empower local businesses, " +
		"startups, and individuals. Founder of Sombuilder Online, I believe technology can " +
		"transform the future of Africa through innovation, creativity, and smart automation.",
	KeyLocation: "Arabsiyo, Somaliland",
	KeyCompany:  "Sombuilder Online",
	KeyTelegram: "@Jimmyabdurahman",
	KeyGithub:   "https://github.com/jimcaale",
	KeyLinkedIn: "https://linkedin.com/in/jimcaale",
}

// Get retrieves a setting by its key.
func Get(db *gorm.DB, key string) (*models.Setting, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if key == "" {
		return nil, ErrSettingKeyEmpty
	}

	var setting models.Setting

	result := db.Where(&models.Setting{Key: key}).First(&setting)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrSettingNotFound
		}

		return nil, result.Error
	}

	return &setting, nil
}

// GetAll retrieves all settings flattened into a key to value mapping.
func GetAll(db *gorm.DB) (map[string]string, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var settings []models.Setting
	if err := db.Find(&settings).Error; err != nil {
		return nil, err
	}

	return flatten(settings), nil
}

// GetPublic retrieves the stored public settings.
func GetPublic(db *gorm.DB) (map[string]string, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var settings []models.Setting

	// map condition keeps the reserved word "key" quoted by the dialect
	if err := db.Where(map[string]any{"key": PublicKeys}).Find(&settings).Error; err != nil {
		return nil, err
	}

	return flatten(settings), nil
}

// WithDefaults returns the public settings with Defaults filled in for missing or empty values.
func WithDefaults(values map[string]string) map[string]string {
	out := make(map[string]string, len(PublicKeys))

	for _, key := range PublicKeys {
		out[key] = Defaults[key]
		if v := values[key]; v != "" {
			out[key] = v
		}
	}

	return out
}

// Set creates or overwrites a setting (upsert on the unique key).
func Set(db *gorm.DB, key, value string) error {
	if db == nil {
		return ErrDBNil
	}

	if key == "" {
		return ErrSettingKeyEmpty
	}

	setting := models.Setting{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now(),
	}

	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&setting).Error
}

// SetAll upserts every given setting in one transaction. Either all keys are
// written or none is.
func SetAll(db *gorm.DB, values map[string]string) error {
	if db == nil {
		return ErrDBNil
	}

	for key := range values {
		if key == "" {
			return ErrSettingKeyEmpty
		}
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, key := range sortedKeys(values) {
			if err := Set(tx, key, values[key]); err != nil {
				return fmt.Errorf("failed to set %q: %w", key, err)
			}
		}

		return nil
	})
}

// SeedDefaults inserts the Defaults without overwriting existing values.
func SeedDefaults(db *gorm.DB) error {
	if db == nil {
		return ErrDBNil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, key := range sortedKeys(Defaults) {
			setting := models.Setting{
				Key:       key,
				Value:     Defaults[key],
				UpdatedAt: time.Now(),
			}

			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&setting).Error; err != nil {
				return fmt.Errorf("failed to seed %q: %w", key, err)
			}
		}

		return nil
	})
}

func flatten(settings []models.Setting) map[string]string {
	out := make(map[string]string, len(settings))
	for _, s := range settings {
		out[s.Key] = s.Value
	}

	return out
}

// sortedKeys returns the keys in a stable order.
func sortedKeys(values map[string]string) []string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
