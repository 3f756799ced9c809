package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLastFour(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"4242424242424242", "4242"},
		{"4242 4242 4242 4242", "4242"},
		{"4000-0566-5566-5556", "5556"},
		{"1234", "1234"},
		{"12", "12"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, lastFour(tt.in), "input %q", tt.in)
	}
}
