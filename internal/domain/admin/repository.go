package admin

import "context"

type Repository interface {
	Create(ctx context.Context, admin *Admin) error

	// GetByEmail returns nil, nil when no admin matches
	GetByEmail(ctx context.Context, email string) (*Admin, error)
}

// PasswordHasher hashes and checks admin passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}
