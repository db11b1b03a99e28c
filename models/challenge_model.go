package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

type CodeChallenge struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	AuthorID uuid.UUID `gorm:"not null" json:"author_id"`

	Title      string `gorm:"size:255;not null" json:"title"`
	Difficulty string `gorm:"size:10;not null" json:"difficulty"`
	Prompt     string `gorm:"type:text;not null" json:"prompt"`

	StarterCode *string `gorm:"type:text" json:"starter_code"`
	Solution    *string `gorm:"type:text" json:"solution,omitempty"`

	Author User `gorm:"foreignkey:AuthorID" json:"author,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
