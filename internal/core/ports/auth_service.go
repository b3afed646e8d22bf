package ports

import "context"

// RegisterResult is returned after a successful registration.
type RegisterResult struct {
	UserID string
}

// LoginResult is returned after successful credential verification. Name is
// empty when the account was registered without a display name.
type LoginResult struct {
	UserID string
	Name   string
}

// AuthService defines the use-case operations for accounts.
type AuthService interface {
	Register(ctx context.Context, email, password, name string) (*RegisterResult, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}
