package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	ExpertPending  = "pending"
	ExpertApproved = "approved"
	ExpertRejected = "rejected"
)

type ExpertProfile struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID uuid.UUID `gorm:"not null;unique" json:"user_id"`

	// Comma-separated list of expertise areas.
	ExpertiseAreas  string  `gorm:"type:text" json:"expertise_areas"`
	YearsExperience int     `gorm:"default:0" json:"years_experience"`
	Company         *string `gorm:"size:255" json:"company"`

	Status   string `gorm:"size:20;not null;default:'pending'" json:"status"`
	Verified bool   `gorm:"default:false" json:"verified"`

	User User `gorm:"foreignkey:UserID" json:"user,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
