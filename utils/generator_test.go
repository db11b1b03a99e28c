package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Understanding Go Interfaces", "understanding-go-interfaces"},
		{"  What's new in Go 1.24?  ", "what-s-new-in-go-1-24"},
		{"C++ vs Rust!!!", "c-vs-rust"},
		{"---", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in), tt.in)
	}
}
