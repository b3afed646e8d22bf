package security

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/JoanixX/high-concurrency-api/internal/core/domain"
)

// BcryptHasher implements the PasswordHasher port with bcrypt. The produced
// hash embeds its own salt and cost, so Verify needs nothing beyond the hash.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: bcrypt.DefaultCost}
}

func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", domain.Internalf("hash password: %v", err)
	}
	return string(hash), nil
}

// Verify reports whether plaintext matches hash. A plain mismatch is
// (false, nil); anything else means the stored hash is unusable.
func (h *BcryptHasher) Verify(plaintext, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, domain.Internalf("malformed password hash: %v", err)
	}
}
