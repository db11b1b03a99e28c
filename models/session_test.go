package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		allowed bool
	}{
		{"scheduled to in progress", SessionScheduled, SessionInProgress, true},
		{"scheduled to cancelled", SessionScheduled, SessionCancelled, true},
		{"scheduled to completed skips in progress", SessionScheduled, SessionCompleted, false},
		{"in progress to completed", SessionInProgress, SessionCompleted, true},
		{"in progress to cancelled", SessionInProgress, SessionCancelled, true},
		{"in progress back to scheduled", SessionInProgress, SessionScheduled, false},
		{"completed is terminal", SessionCompleted, SessionInProgress, false},
		{"cancelled is terminal", SessionCancelled, SessionScheduled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Session{Status: tt.from}
			assert.Equal(t, tt.allowed, s.CanTransition(tt.to))
		})
	}
}

func TestApplyCompletedSessionWithRating(t *testing.T) {
	mentor := Mentor{AvgRating: 4.0, TotalSessions: 3}

	rating := 5
	mentor.ApplyCompletedSession(&rating)

	assert.Equal(t, int64(4), mentor.TotalSessions)
	assert.InDelta(t, 4.25, mentor.AvgRating, 1e-9)
}

// A completed session without a rating bumps the count but must not perturb
// the average.
func TestApplyCompletedSessionWithoutRating(t *testing.T) {
	mentor := Mentor{AvgRating: 4.0, TotalSessions: 3}

	mentor.ApplyCompletedSession(nil)

	assert.Equal(t, int64(4), mentor.TotalSessions)
	assert.InDelta(t, 4.0, mentor.AvgRating, 1e-9)
}

func TestApplyCompletedSessionFirstRating(t *testing.T) {
	mentor := Mentor{}

	rating := 3
	mentor.ApplyCompletedSession(&rating)

	assert.Equal(t, int64(1), mentor.TotalSessions)
	assert.InDelta(t, 3.0, mentor.AvgRating, 1e-9)
}

func TestSessionStatusTerminal(t *testing.T) {
	assert.True(t, SessionStatusTerminal(SessionCompleted))
	assert.True(t, SessionStatusTerminal(SessionCancelled))
	assert.False(t, SessionStatusTerminal(SessionScheduled))
	assert.False(t, SessionStatusTerminal(SessionInProgress))
}
