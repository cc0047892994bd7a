package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Recognized project categories
const (
	CategoryWeb    = "web"
	CategoryMobile = "mobile"
	CategoryDesign = "design"
)

// ValidCategory reports whether category is one of the recognized values
func ValidCategory(category string) bool {
	switch category {
	case CategoryWeb, CategoryMobile, CategoryDesign:
		return true
	}
	return false
}

// Project represents a portfolio project with metadata
type Project struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Title       string    `json:"title" db:"title" gorm:"type:text;not null"`
	Description string    `json:"description" db:"description" gorm:"type:text;not null"`
	ImageURL    string    `json:"imageUrl" db:"image_url" gorm:"type:text;not null"`
	DemoURL     string    `json:"demoUrl" db:"demo_url" gorm:"type:text;not null;default:''"`
	RepoURL     string    `json:"repoUrl" db:"repo_url" gorm:"type:text;not null;default:''"`
	Category    string    `json:"category" db:"category" gorm:"type:text;not null"`
	Tags        string    `json:"tags" db:"tags" gorm:"type:text;not null"`
	Featured    bool      `json:"featured" db:"featured" gorm:"not null;default:false"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;autoCreateTime"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at" gorm:"type:timestamp;not null;autoUpdateTime"`
}

// BeforeCreate assigns the primary key before insert
func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TagList splits the comma-separated Tags column into trimmed values.
// Empty segments are dropped; no deduplication is performed.
func (p Project) TagList() []string {
	if p.Tags == "" {
		return nil
	}
	parts := strings.Split(p.Tags, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
