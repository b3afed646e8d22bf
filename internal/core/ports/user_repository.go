package ports

import (
	"context"

	"github.com/JoanixX/high-concurrency-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
//
// FindByEmail returns (nil, nil) when no account exists for the email; the
// login use case owns the decision of what that absence means. Save must
// surface a uniqueness conflict on the email as KindDuplicate.
type UserRepository interface {
	Save(ctx context.Context, id, email, passwordHash, name string) error
	FindByEmail(ctx context.Context, email string) (*domain.UserRecord, error)
}
