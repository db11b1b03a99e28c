package models

import (
	"time"

	"github.com/google/uuid"
)

type Job struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`

	Title       string  `gorm:"size:255;not null" json:"title"`
	Company     string  `gorm:"size:255;not null" json:"company"`
	Location    string  `gorm:"size:255" json:"location"`
	Description string  `gorm:"type:text" json:"description"`
	ApplyURL    *string `gorm:"size:255" json:"apply_url"`

	PostedAt  time.Time `json:"posted_at"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
