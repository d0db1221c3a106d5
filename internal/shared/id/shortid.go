// Package id generates Stripe-style public identifiers such as "city_4fK2pQ9xLmZa".
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
	DefaultLength = 12
)

// Prefixes for the public IDs of each entity.
const (
	PrefixSubscriber = "sub"
	PrefixCity       = "city"
	PrefixCall       = "call"
	PrefixAdmin      = "adm"
)

var alphabetLen = big.NewInt(int64(len(alphabet)))

// Generate creates a cryptographically random Base62 string of the given length.
func Generate(length int) (string, error) {
	if length <= 0 {
		length = DefaultLength
	}

	result := make([]byte, length)
	for i := range result {
		num, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		result[i] = alphabet[num.Int64()]
	}

	return string(result), nil
}

// GenerateWithPrefix creates a prefixed ID in the format "prefix_randomstring".
func GenerateWithPrefix(prefix string) (string, error) {
	short, err := Generate(DefaultLength)
	if err != nil {
		return "", err
	}
	return prefix + "_" + short, nil
}

// ParsePrefixedID splits "city_xK9mP2vL3nQ" into ("city", "xK9mP2vL3nQ").
func ParsePrefixedID(prefixedID string) (prefix, shortID string, err error) {
	prefix, shortID, ok := strings.Cut(prefixedID, "_")
	if !ok || prefix == "" || shortID == "" {
		return "", "", fmt.Errorf("invalid prefixed ID format: %q", prefixedID)
	}
	return prefix, shortID, nil
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

func NewSubscriberID() (string, error) { return GenerateWithPrefix(PrefixSubscriber) }
func NewCityID() (string, error)       { return GenerateWithPrefix(PrefixCity) }
func NewCallID() (string, error)       { return GenerateWithPrefix(PrefixCall) }
func NewAdminID() (string, error)      { return GenerateWithPrefix(PrefixAdmin) }
