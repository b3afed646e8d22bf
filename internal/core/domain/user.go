package domain

import "time"

// User is the external-facing identity of a registered account.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// UserRecord is what the user repository returns for authentication. The
// password hash never leaves the login use case.
type UserRecord struct {
	ID           string
	PasswordHash string
	Name         string
}
