// internal/models/brand_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", "Nike", "nike"},
		{"spaces become hyphens", "New Balance", "new-balance"},
		{"multiple spaces collapse", "A   B", "a-b"},
		{"punctuation stripped", "L'Oréal & Co.", "lral-co"},
		{"already slug", "under-armour", "under-armour"},
		{"tabs and newlines", "a\tb\nc", "a-b-c"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.input))
		})
	}
}
