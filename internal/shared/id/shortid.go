package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const (
	// Base62 alphabet: 0-9, A-Z, a-z
	alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	// DefaultLength is the default length for generated short IDs
	DefaultLength = 10
)

// Prefixes for the two entity types. Prefixed IDs use a dash separator,
// e.g. "P-3fK9mP2vL0".
const (
	PrefixProduct = "P"
	PrefixTicket  = "T"
)

// Generate creates a random short ID with the specified length using Base62
// encoding. The generated ID is cryptographically random and URL-safe.
func Generate(length int) (string, error) {
	if length <= 0 {
		length = DefaultLength
	}

	result := make([]byte, length)
	alphabetLen := big.NewInt(int64(len(alphabet)))

	for i := 0; i < length; i++ {
		num, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		result[i] = alphabet[num.Int64()]
	}

	return string(result), nil
}

// GenerateWithPrefix creates a prefixed ID in the format "PREFIX-randomstring".
func GenerateWithPrefix(prefix string, length int) (string, error) {
	shortID, err := Generate(length)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%s", prefix, shortID), nil
}

// ParsePrefixedID extracts the prefix and short ID from a prefixed ID string.
// Example: ParsePrefixedID("P-3fK9mP2vL0") returns ("P", "3fK9mP2vL0", nil)
func ParsePrefixedID(prefixedID string) (prefix, shortID string, err error) {
	parts := strings.SplitN(prefixedID, "-", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid prefixed ID format: %s", prefixedID)
	}
	return parts[0], parts[1], nil
}

// ValidatePrefix checks if the prefixed ID has the expected prefix.
func ValidatePrefix(prefixedID, expectedPrefix string) error {
	prefix, _, err := ParsePrefixedID(prefixedID)
	if err != nil {
		return err
	}
	if prefix != expectedPrefix {
		return fmt.Errorf("invalid prefix: expected %s, got %s", expectedPrefix, prefix)
	}
	return nil
}

// NewProductID generates a new product ID ("P-" prefix).
func NewProductID() (string, error) {
	return GenerateWithPrefix(PrefixProduct, DefaultLength)
}

// NewTicketID generates a new ticket ID ("T-" prefix).
func NewTicketID() (string, error) {
	return GenerateWithPrefix(PrefixTicket, DefaultLength)
}

// IsProductID reports whether the given ID carries the product prefix.
func IsProductID(prefixedID string) bool {
	return ValidatePrefix(prefixedID, PrefixProduct) == nil
}

// IsTicketID reports whether the given ID carries the ticket prefix.
func IsTicketID(prefixedID string) bool {
	return ValidatePrefix(prefixedID, PrefixTicket) == nil
}
