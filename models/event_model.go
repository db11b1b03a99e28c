package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventPending  = "pending"
	EventApproved = "approved"
	EventRejected = "rejected"
)

type Event struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	SubmitterID uuid.UUID `gorm:"not null" json:"submitter_id"`

	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Location    string    `gorm:"size:255" json:"location"`
	StartTime   time.Time `gorm:"not null" json:"start_time"`
	EndTime     time.Time `gorm:"not null" json:"end_time"`
	Status      string    `gorm:"size:20;not null;default:'pending'" json:"status"`

	Submitter User `gorm:"foreignkey:SubmitterID" json:"submitter,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
