package handlers

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// For N matching records, page size P and 1-based page, has_next must hold
// exactly when N > page*P. Listings fetch P+1 rows and check the overflow.
func TestHasNextPageProperty(t *testing.T) {
	const pageSize = 20

	for _, total := range []int{0, 1, 19, 20, 21, 40, 41, 100} {
		for page := 1; page <= 6; page++ {
			offset := (page - 1) * pageSize

			remaining := total - offset
			if remaining < 0 {
				remaining = 0
			}
			fetched := remaining
			if fetched > pageSize+1 {
				fetched = pageSize + 1
			}

			want := total > page*pageSize
			got := hasNextPage(fetched, pageSize)

			assert.Equal(t, want, got,
				fmt.Sprintf("total=%d page=%d", total, page))
		}
	}
}

func TestHasNextPage(t *testing.T) {
	assert.False(t, hasNextPage(0, 20))
	assert.False(t, hasNextPage(20, 20))
	assert.True(t, hasNextPage(21, 20))
}
