package models

import (
	"time"

	"github.com/google/uuid"
)

type Mentor struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID uuid.UUID `gorm:"not null;unique" json:"user_id"`

	// Comma-separated list of specialization tags.
	Specializations string  `gorm:"type:text" json:"specializations"`
	Bio             *string `gorm:"type:text" json:"bio"`
	HourlyRate      float64 `gorm:"type:numeric(10,2);default:0.00" json:"hourly_rate"`

	Verified      bool    `gorm:"default:false" json:"verified"`
	AvgRating     float64 `gorm:"default:0" json:"avg_rating"`
	TotalSessions int64   `gorm:"default:0" json:"total_sessions"`
	Active        bool    `gorm:"default:true" json:"active"`

	Availability []AvailabilityWindow `gorm:"foreignkey:MentorID" json:"availability,omitempty"`
	User         User                 `gorm:"foreignkey:UserID" json:"user,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AvailabilityWindow struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	MentorID uuid.UUID `gorm:"not null" json:"-"`

	// Weekday is 0 (Sunday) through 6 (Saturday); times are "15:04" strings
	// in the mentor's timezone.
	Weekday   int    `gorm:"not null" json:"weekday"`
	StartTime string `gorm:"size:5;not null" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`
}

// ApplyCompletedSession folds one completed session into the mentor's
// aggregates. A session completed without a rating bumps the session count
// but leaves the average untouched.
func (m *Mentor) ApplyCompletedSession(rating *int) {
	if rating != nil {
		total := m.AvgRating*float64(m.TotalSessions) + float64(*rating)
		m.AvgRating = total / float64(m.TotalSessions+1)
	}
	m.TotalSessions++
}
