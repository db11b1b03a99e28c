package models

import (
	"time"

	"github.com/google/uuid"
)

type Question struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	AuthorID  uuid.UUID `gorm:"not null" json:"author_id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Views     int64     `gorm:"default:0" json:"views"`
	Upvotes   int64     `gorm:"default:0" json:"upvotes"`
	Downvotes int64     `gorm:"default:0" json:"downvotes"`
	Answers   int64     `gorm:"default:0" json:"answers"`

	Tags   []*Tag `gorm:"many2many:question_tags;" json:"tags,omitempty"`
	Author User   `gorm:"foreignkey:AuthorID" json:"author,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
