package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	VoteTargetQuestion = "question"
	VoteTargetAnswer   = "answer"

	Upvote   = 1
	Downvote = -1
)

type Vote struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID     uuid.UUID `gorm:"not null;index:idx_votes_user_target,unique" json:"user_id"`
	TargetType string    `gorm:"size:20;not null;index:idx_votes_user_target,unique" json:"target_type"`
	TargetID   uuid.UUID `gorm:"not null;index:idx_votes_user_target,unique" json:"target_id"`
	Value      int       `gorm:"not null" json:"value"`

	CreatedAt time.Time `json:"created_at"`
}

// ResolveVote decides the stored vote after a user casts `requested` while
// `existing` is their current vote (nil when none). Casting the same
// direction again removes the vote; the opposite direction flips it.
func ResolveVote(existing *int, requested int) *int {
	if existing != nil && *existing == requested {
		return nil
	}
	return &requested
}

// VoteDeltas returns the up/down counter adjustments when a stored vote
// changes from old to next.
func VoteDeltas(old, next *int) (up int64, down int64) {
	if old != nil {
		if *old == Upvote {
			up--
		} else {
			down--
		}
	}
	if next != nil {
		if *next == Upvote {
			up++
		} else {
			down++
		}
	}
	return up, down
}
