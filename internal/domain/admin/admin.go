package admin

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/telebill/telebill/internal/shared/biztime"
	"github.com/telebill/telebill/internal/shared/id"
)

// Admin is an operator allowed to manage billing records.
type Admin struct {
	id           uint
	sid          string // adm_xxx
	email        string
	passwordHash string
	createdAt    time.Time
	updatedAt    time.Time
}

// NewAdmin creates an admin from an already hashed password.
func NewAdmin(email, passwordHash string) (*Admin, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("invalid email %q: %w", email, err)
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}

	sid, err := id.NewAdminID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate SID: %w", err)
	}

	now := biztime.NowUTC()
	return &Admin{
		sid:          sid,
		email:        email,
		passwordHash: passwordHash,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructAdmin reconstructs an Admin from persistence layer
func ReconstructAdmin(id uint, sid, email, passwordHash string, createdAt, updatedAt time.Time) *Admin {
	return &Admin{
		id:           id,
		sid:          sid,
		email:        email,
		passwordHash: passwordHash,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (a *Admin) ID() uint             { return a.id }
func (a *Admin) SID() string          { return a.sid }
func (a *Admin) Email() string        { return a.email }
func (a *Admin) PasswordHash() string { return a.passwordHash }
func (a *Admin) CreatedAt() time.Time { return a.createdAt }
func (a *Admin) UpdatedAt() time.Time { return a.updatedAt }

// SetID sets the admin ID (only for persistence layer use)
func (a *Admin) SetID(id uint) {
	a.id = id
}
