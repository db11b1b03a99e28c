package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRequestTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		allowed bool
	}{
		{"pending to accepted", RequestPending, RequestAccepted, true},
		{"pending to rejected", RequestPending, RequestRejected, true},
		{"pending to cancelled", RequestPending, RequestCancelled, true},
		{"pending to completed", RequestPending, RequestCompleted, false},
		{"accepted to completed", RequestAccepted, RequestCompleted, true},
		{"accepted to cancelled", RequestAccepted, RequestCancelled, true},
		{"accepted to rejected", RequestAccepted, RequestRejected, false},
		{"accepted to pending", RequestAccepted, RequestPending, false},
		{"rejected is terminal", RequestRejected, RequestAccepted, false},
		{"completed is terminal", RequestCompleted, RequestCancelled, false},
		{"cancelled is terminal", RequestCancelled, RequestPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := MentorshipRequest{Status: tt.from}
			assert.Equal(t, tt.allowed, r.CanTransition(tt.to))
		})
	}
}

// Once a request reaches a terminal state, no operation may move it again.
func TestTerminalStatesAreInvariant(t *testing.T) {
	terminals := []string{RequestRejected, RequestCompleted, RequestCancelled}
	targets := []string{
		RequestPending, RequestAccepted, RequestRejected,
		RequestCompleted, RequestCancelled,
	}

	for _, terminal := range terminals {
		assert.True(t, RequestStatusTerminal(terminal))
		r := MentorshipRequest{Status: terminal}
		for _, target := range targets {
			assert.False(t, r.CanTransition(target),
				"terminal state %s must not transition to %s", terminal, target)
		}
	}
}

func TestNonTerminalStates(t *testing.T) {
	assert.False(t, RequestStatusTerminal(RequestPending))
	assert.False(t, RequestStatusTerminal(RequestAccepted))
}

func TestHasProposedTime(t *testing.T) {
	t1 := time.Date(2026, 9, 10, 14, 0, 0, 0, time.UTC)
	t2 := time.Date(2026, 9, 11, 16, 0, 0, 0, time.UTC)

	r := MentorshipRequest{
		ProposedTimes: []ProposedTime{{At: t1}, {At: t2}},
	}

	assert.True(t, r.HasProposedTime(t1))
	assert.True(t, r.HasProposedTime(t2))
	assert.False(t, r.HasProposedTime(t1.Add(time.Hour)))

	// Same instant in a different zone still matches.
	loc := time.FixedZone("EAT", 3*3600)
	assert.True(t, r.HasProposedTime(t1.In(loc)))
}

func TestHasProposedTimeEmptyList(t *testing.T) {
	r := MentorshipRequest{}
	assert.False(t, r.HasProposedTime(time.Now()))
}
