package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/JoanixX/high-concurrency-api/internal/core/domain"
)

// TokenIssuer mints the HS256 session tokens handed out on login. Token
// issuance is a transport concern; the login use case itself only verifies
// credentials.
type TokenIssuer struct {
	secret   string
	tokenTTL time.Duration
}

func NewTokenIssuer(secret string, tokenTTL time.Duration) *TokenIssuer {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &TokenIssuer{secret: secret, tokenTTL: tokenTTL}
}

// Issue signs a token carrying the user id and display name.
func (t *TokenIssuer) Issue(userID, name string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  userID,
		"name": name,
		"exp":  time.Now().Add(t.tokenTTL).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(t.secret))
	if err != nil {
		return "", domain.Internalf("sign token: %v", err)
	}
	return token, nil
}
