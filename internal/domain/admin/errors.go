package admin

import "errors"

var (
	// ErrAdminNotFound is returned when no admin has the given email
	ErrAdminNotFound = errors.New("admin not found")

	// ErrInvalidCredentials is returned when the password does not match
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAdminEmailExists is returned when creating an admin with a taken email
	ErrAdminEmailExists = errors.New("admin email already exists")
)
