package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	SessionScheduled  = "scheduled"
	SessionInProgress = "in_progress"
	SessionCompleted  = "completed"
	SessionCancelled  = "cancelled"
)

// sessionTransitions is the exhaustive transition table for a session:
// forward-only with cancellation reachable from any non-terminal state.
var sessionTransitions = map[string][]string{
	SessionScheduled:  {SessionInProgress, SessionCancelled},
	SessionInProgress: {SessionCompleted, SessionCancelled},
}

type Session struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	RequestID uuid.UUID `gorm:"not null;unique" json:"request_id"`
	MentorID  uuid.UUID `gorm:"not null" json:"mentor_id"`
	MenteeID  uuid.UUID `gorm:"not null" json:"mentee_id"`

	StartTime time.Time `gorm:"not null" json:"start_time"`
	EndTime   time.Time `gorm:"not null" json:"end_time"`
	Status    string    `gorm:"size:20;not null;default:'scheduled'" json:"status"`

	MeetingLink *string `gorm:"size:255" json:"meeting_link"`
	Notes       *string `gorm:"type:text" json:"notes"`

	Rating   *int    `json:"rating"`
	Feedback *string `gorm:"type:text" json:"feedback"`

	Request MentorshipRequest `gorm:"foreignkey:RequestID" json:"request,omitempty"`
	Mentor  Mentor            `gorm:"foreignkey:MentorID" json:"mentor,omitempty"`
	Mentee  User              `gorm:"foreignkey:MenteeID" json:"mentee,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func SessionStatusTerminal(status string) bool {
	return status == SessionCompleted || status == SessionCancelled
}

// CanTransition reports whether the session may move to the given status.
func (s *Session) CanTransition(to string) bool {
	for _, next := range sessionTransitions[s.Status] {
		if next == to {
			return true
		}
	}
	return false
}
