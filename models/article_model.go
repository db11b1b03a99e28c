package models

import (
	"time"

	"github.com/google/uuid"
)

type Article struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	AuthorID uuid.UUID `gorm:"not null" json:"author_id"`

	Title   string `gorm:"size:255;not null" json:"title"`
	Slug    string `gorm:"size:255;not null;unique" json:"slug"`
	Content string `gorm:"type:text;not null" json:"content"`

	// Comma-separated topic tags.
	Tags      string `gorm:"type:text" json:"tags"`
	Published bool   `gorm:"default:false" json:"published"`
	Views     int64  `gorm:"default:0" json:"views"`

	Author User `gorm:"foreignkey:AuthorID" json:"author,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
