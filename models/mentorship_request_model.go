package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	RequestPending   = "pending"
	RequestAccepted  = "accepted"
	RequestRejected  = "rejected"
	RequestCompleted = "completed"
	RequestCancelled = "cancelled"
)

// requestTransitions is the exhaustive transition table for a mentorship
// request. Terminal states have no outgoing edges.
var requestTransitions = map[string][]string{
	RequestPending:  {RequestAccepted, RequestRejected, RequestCancelled},
	RequestAccepted: {RequestCompleted, RequestCancelled},
}

type MentorshipRequest struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	MenteeID uuid.UUID `gorm:"not null" json:"mentee_id"`
	MentorID uuid.UUID `gorm:"not null" json:"mentor_id"`

	Topic       string `gorm:"size:255;not null" json:"topic"`
	Description string `gorm:"type:text" json:"description"`
	Status      string `gorm:"size:20;not null;default:'pending'" json:"status"`

	ProposedTimes   []ProposedTime `gorm:"foreignkey:RequestID" json:"proposed_times,omitempty"`
	SelectedTime    *time.Time     `json:"selected_time"`
	DurationMinutes int            `gorm:"not null;default:60" json:"duration_minutes"`

	Messages []RequestMessage `gorm:"foreignkey:RequestID" json:"messages,omitempty"`

	Mentee User   `gorm:"foreignkey:MenteeID" json:"mentee,omitempty"`
	Mentor Mentor `gorm:"foreignkey:MentorID" json:"mentor,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ProposedTime struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	RequestID uuid.UUID `gorm:"not null" json:"-"`
	At        time.Time `gorm:"not null" json:"at"`
}

// RequestMessage is one entry in a request's append-only message thread.
type RequestMessage struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	RequestID uuid.UUID `gorm:"not null" json:"request_id"`
	SenderID  uuid.UUID `gorm:"not null" json:"sender_id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func RequestStatusTerminal(status string) bool {
	switch status {
	case RequestRejected, RequestCompleted, RequestCancelled:
		return true
	}
	return false
}

// CanTransition reports whether the request may move to the given status.
func (r *MentorshipRequest) CanTransition(to string) bool {
	for _, next := range requestTransitions[r.Status] {
		if next == to {
			return true
		}
	}
	return false
}

// HasProposedTime reports whether t matches one of the mentee's proposed
// candidates. A selected time must always come from that list.
func (r *MentorshipRequest) HasProposedTime(t time.Time) bool {
	for _, p := range r.ProposedTimes {
		if p.At.Equal(t) {
			return true
		}
	}
	return false
}
