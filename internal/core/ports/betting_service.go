package ports

import (
	"context"

	"github.com/JoanixX/high-concurrency-api/internal/core/domain"
)

// PlaceBetResult is returned by the service after a bet is accepted.
type PlaceBetResult struct {
	BetID  string
	Ticket domain.BetTicket
	Status domain.BetStatus
}

// BettingService defines the use-case operations for bets.
type BettingService interface {
	PlaceBet(ctx context.Context, ticket domain.BetTicket) (*PlaceBetResult, error)
	GetBet(ctx context.Context, betID string) (*domain.BetTicket, error)
}
