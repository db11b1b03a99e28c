package models

import (
	"time"

	"github.com/google/uuid"
)

type Answer struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	QuestionID uuid.UUID `gorm:"not null" json:"question_id"`
	AuthorID   uuid.UUID `gorm:"not null" json:"author_id"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	Upvotes    int64     `gorm:"default:0" json:"upvotes"`
	Downvotes  int64     `gorm:"default:0" json:"downvotes"`

	Question Question `gorm:"foreignkey:QuestionID" json:"question,omitempty"`
	Author   User     `gorm:"foreignkey:AuthorID" json:"author,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
