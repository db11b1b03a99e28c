package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveVote(t *testing.T) {
	up := Upvote
	down := Downvote

	t.Run("first upvote is stored", func(t *testing.T) {
		next := ResolveVote(nil, Upvote)
		require.NotNil(t, next)
		assert.Equal(t, Upvote, *next)
	})

	t.Run("same direction removes the vote", func(t *testing.T) {
		assert.Nil(t, ResolveVote(&up, Upvote))
		assert.Nil(t, ResolveVote(&down, Downvote))
	})

	t.Run("opposite direction flips the vote", func(t *testing.T) {
		next := ResolveVote(&up, Downvote)
		require.NotNil(t, next)
		assert.Equal(t, Downvote, *next)
	})
}

func TestVoteDeltas(t *testing.T) {
	up := Upvote
	down := Downvote

	tests := []struct {
		name     string
		old, new *int
		up, down int64
	}{
		{"new upvote", nil, &up, 1, 0},
		{"new downvote", nil, &down, 0, 1},
		{"removed upvote", &up, nil, -1, 0},
		{"removed downvote", &down, nil, 0, -1},
		{"flip up to down", &up, &down, -1, 1},
		{"flip down to up", &down, &up, 1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotUp, gotDown := VoteDeltas(tt.old, tt.new)
			assert.Equal(t, tt.up, gotUp)
			assert.Equal(t, tt.down, gotDown)
		})
	}
}
