package dto

import "github.com/telebill/telebill/internal/application/auth/usecases"

// LoginRequest represents HTTP request to log an admin in
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=5"`
}

func (r *LoginRequest) ToCommand() usecases.LoginCommand {
	return usecases.LoginCommand{Email: r.Email, Password: r.Password}
}
