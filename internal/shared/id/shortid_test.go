package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Length(t *testing.T) {
	tests := []struct {
		name     string
		length   int
		expected int
	}{
		{"default length for zero", 0, DefaultLength},
		{"default length for negative", -3, DefaultLength},
		{"explicit length", 16, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			generated, err := Generate(tt.length)
			require.NoError(t, err)
			assert.Len(t, generated, tt.expected)
		})
	}
}

func TestGenerate_Alphabet(t *testing.T) {
	generated, err := Generate(64)
	require.NoError(t, err)
	for _, r := range generated {
		assert.True(t, strings.ContainsRune(alphabet, r), "unexpected character %q", r)
	}
}

func TestGenerate_Uniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		generated, err := Generate(DefaultLength)
		require.NoError(t, err)
		assert.False(t, seen[generated], "duplicate ID generated: %s", generated)
		seen[generated] = true
	}
}

func TestNewProductID(t *testing.T) {
	productID, err := NewProductID()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(productID, "P-"))
	assert.True(t, IsProductID(productID))
	assert.False(t, IsTicketID(productID))
}

func TestNewTicketID(t *testing.T) {
	ticketID, err := NewTicketID()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ticketID, "T-"))
	assert.True(t, IsTicketID(ticketID))
	assert.False(t, IsProductID(ticketID))
}

func TestParsePrefixedID(t *testing.T) {
	prefix, shortID, err := ParsePrefixedID("P-3fK9mP2vL0")
	require.NoError(t, err)
	assert.Equal(t, "P", prefix)
	assert.Equal(t, "3fK9mP2vL0", shortID)

	_, _, err = ParsePrefixedID("noseparator")
	assert.Error(t, err)

	_, _, err = ParsePrefixedID("-missing")
	assert.Error(t, err)
}
