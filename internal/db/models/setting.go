// Package models contains database model definitions.
package models

import "time"

// Setting represents a key/value site setting stored in the database.
type Setting struct {
	ID        uint64    `gorm:"primaryKey" json:"-"`
	Key       string    `gorm:"size:100;uniqueIndex;not null" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// All returns every model managed by the application, in migration order.
func All() []any {
	return []any{
		&User{},
		&Project{},
		&Contact{},
		&Setting{},
	}
}
