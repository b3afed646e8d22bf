package ports

import (
	"context"

	"github.com/JoanixX/high-concurrency-api/internal/core/domain"
)

// BetRepository defines persistence operations for bets.
//
// Implementations translate storage faults into domain errors before
// returning: a uniqueness conflict becomes KindDuplicate and any other
// storage failure becomes KindInternal. An absent row is (nil, nil), never
// an error.
type BetRepository interface {
	Save(ctx context.Context, id string, ticket domain.BetTicket, status domain.BetStatus) error
	FindByID(ctx context.Context, id string) (*domain.BetTicket, error)
}
