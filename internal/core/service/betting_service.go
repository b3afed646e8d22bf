package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/JoanixX/high-concurrency-api/internal/core/domain"
	"github.com/JoanixX/high-concurrency-api/internal/core/ports"
)

const lastBetTTL = 60 * time.Second

// BettingService orchestrates bet placement purely via ports.
type BettingService struct {
	repo   ports.BetRepository
	cache  ports.Cache
	logger zerolog.Logger
}

func NewBettingService(repo ports.BetRepository, cache ports.Cache, logger zerolog.Logger) *BettingService {
	return &BettingService{repo: repo, cache: cache, logger: logger}
}

// PlaceBet validates the ticket, persists it with a fresh id and status
// VALIDATED, then records the bet id in the cache best-effort. Persistence
// must succeed before the cache write is attempted; a cache failure is
// logged and swallowed, never rolled back into the result.
func (s *BettingService) PlaceBet(ctx context.Context, ticket domain.BetTicket) (*ports.PlaceBetResult, error) {
	if ticket.Amount <= 0 {
		return nil, domain.Validation("amount must be greater than 0")
	}
	if ticket.Odds <= 1.0 {
		return nil, domain.Validation("odds must be greater than 1.0")
	}

	betID := uuid.NewString()
	status := domain.BetStatusValidated

	if err := s.repo.Save(ctx, betID, ticket, status); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("bet_id", betID).
		Str("user_id", ticket.UserID).
		Msg("bet validated and persisted")

	if err := s.cache.Set(ctx, LastBetKey(ticket.UserID), betID, lastBetTTL); err != nil {
		s.logger.Warn().Err(err).Str("bet_id", betID).Msg("last-bet cache update failed")
	}

	return &ports.PlaceBetResult{
		BetID:  betID,
		Ticket: ticket,
		Status: status,
	}, nil
}

// GetBet looks a bet up by id. An absent bet is ErrNotFound.
func (s *BettingService) GetBet(ctx context.Context, betID string) (*domain.BetTicket, error) {
	if strings.TrimSpace(betID) == "" {
		return nil, domain.Validation("bet id is required")
	}

	ticket, err := s.repo.FindByID(ctx, betID)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, domain.ErrNotFound
	}
	return ticket, nil
}

// LastBetKey is the cache key holding a user's most recent bet id.
func LastBetKey(userID string) string {
	return "last_bet:" + userID
}
