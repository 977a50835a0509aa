package cuid2_test

import (
	"strings"
	"testing"

	"github.com/stagely-dev/cuid2/pkg/cuid2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValid(t *testing.T) {
	// Given
	tests := []struct {
		name string
		id   string
		want bool
	}{
		{"typical id", "tz4a98xxat96iws9zmbrgj3a", true},
		{"minimum length", "ab", true},
		{"letter then digits", "a0123456789", true},
		{"maximum length", "z" + strings.Repeat("0", 31), true},
		{"empty string", "", false},
		{"single letter", "a", false},
		{"starts with digit", "1abc", false},
		{"contains hyphen", "abc-123", false},
		{"contains uppercase", "aBc123", false},
		{"contains space", "abc 123", false},
		{"non-ascii letters", "abçdef", false},
		{"too long", strings.Repeat("a", 33), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// When / Then
			assert.Equal(t, tt.want, cuid2.IsValid(tt.id, cuid2.MinLength, cuid2.MaxLength))
		})
	}
}

func TestIsValid_CustomBounds(t *testing.T) {
	// Given
	id, err := cuid2.GenerateWithLength(10)
	require.NoError(t, err)

	// Then
	assert.True(t, cuid2.IsValid(id, 10, 10), "exact bounds should accept a 10-character ID")
	assert.False(t, cuid2.IsValid(id, 11, 32), "minimum above the ID length should reject")
	assert.False(t, cuid2.IsValid(id, 2, 9), "maximum below the ID length should reject")
}
