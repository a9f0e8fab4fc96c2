package models

import (
	"encoding/json"
	"strings"
	"time"
)

// TechStack is the ordered list of technology tags of a project.
// It is stored as a JSON array and accepts either an array or a
// comma-delimited string on input.
type TechStack []string

// ParseTechStack splits a comma-delimited list into tags.
// Tags are trimmed and empty ones are dropped.
func ParseTechStack(s string) TechStack {
	return NewTechStack(strings.Split(s, ","))
}

// NewTechStack normalizes the given tags.
func NewTechStack(tags []string) TechStack {
	out := make(TechStack, 0, len(tags))

	for _, tag := range tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			out = append(out, tag)
		}
	}

	return out
}

// String returns the tags joined by ", ".
func (t TechStack) String() string {
	return strings.Join(t, ", ")
}

// MarshalJSON always renders an array, never null.
func (t TechStack) MarshalJSON() ([]byte, error) {
	if t == nil {
		return []byte("[]"), nil
	}

	return json.Marshal([]string(t))
}

// UnmarshalJSON accepts a JSON array of strings, a comma-delimited string or null.
func (t *TechStack) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*t = TechStack{}
		return nil
	}

	var tags []string
	if err := json.Unmarshal(data, &tags); err == nil {
		*t = NewTechStack(tags)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	*t = ParseTechStack(s)

	return nil
}

// Project is a portfolio entry shown on the public page.
type Project struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	TechStack   TechStack `gorm:"type:text;serializer:json" json:"tech_stack"`
	ImageURL    *string   `gorm:"size:500" json:"image_url"`
	GithubURL   *string   `gorm:"size:500" json:"github_url"`
	DemoURL     *string   `gorm:"size:500" json:"demo_url"`
	// OrderIndex sorts projects, higher values first.
	OrderIndex int       `gorm:"not null;default:0" json:"order_index"`
	IsFeatured bool      `gorm:"not null;default:false" json:"is_featured"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
