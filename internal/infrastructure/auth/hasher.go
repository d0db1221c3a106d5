package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// maxPasswordBytes is the longest input bcrypt accepts.
const maxPasswordBytes = 72

var (
	ErrPasswordMismatch = errors.New("password verification failed")
	ErrPasswordTooLong  = fmt.Errorf("password must not exceed %d bytes", maxPasswordBytes)
)

// BcryptPasswordHasher hashes admin passwords. A cost outside bcrypt's range
// falls back to bcrypt.DefaultCost.
type BcryptPasswordHasher struct {
	cost int
}

func NewBcryptPasswordHasher(cost int) *BcryptPasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return &BcryptPasswordHasher{cost: bcrypt.DefaultCost}
	}
	return &BcryptPasswordHasher{cost: cost}
}

func (h *BcryptPasswordHasher) Hash(password string) (string, error) {
	switch {
	case password == "":
		return "", errors.New("password is required")
	case len(password) > maxPasswordBytes:
		return "", ErrPasswordTooLong
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash admin password: %w", err)
	}
	return string(digest), nil
}

// Verify collapses every failure, including a malformed stored hash, into
// ErrPasswordMismatch.
func (h *BcryptPasswordHasher) Verify(password, hash string) error {
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return ErrPasswordMismatch
	}
	return nil
}
