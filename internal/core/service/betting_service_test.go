package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/JoanixX/high-concurrency-api/internal/core/domain"
)

type stubBetRepo struct {
	saveCalls int
	saveErr   error
	saved     map[string]savedBet
}

type savedBet struct {
	ticket domain.BetTicket
	status domain.BetStatus
}

func newStubBetRepo() *stubBetRepo {
	return &stubBetRepo{saved: make(map[string]savedBet)}
}

func (r *stubBetRepo) Save(_ context.Context, id string, ticket domain.BetTicket, status domain.BetStatus) error {
	r.saveCalls++
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saved[id] = savedBet{ticket: ticket, status: status}
	return nil
}

func (r *stubBetRepo) FindByID(_ context.Context, id string) (*domain.BetTicket, error) {
	b, ok := r.saved[id]
	if !ok {
		return nil, nil
	}
	ticket := b.ticket
	return &ticket, nil
}

type stubCache struct {
	setCalls int
	setErr   error
	values   map[string]string
}

func newStubCache() *stubCache {
	return &stubCache{values: make(map[string]string)}
}

func (c *stubCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	c.setCalls++
	if c.setErr != nil {
		return c.setErr
	}
	c.values[key] = value
	return nil
}

func (c *stubCache) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := c.values[key]
	return v, ok, nil
}

func validTicket() domain.BetTicket {
	return domain.BetTicket{
		UserID:  "7b0f9c1e-9a41-4a77-9f03-b7a2d4f0f111",
		MatchID: "3f8e2b5a-07c4-4d3e-8df1-62a9c0d4e222",
		Amount:  50.0,
		Odds:    1.8,
	}
}

func TestBettingService_PlaceBet_Success(t *testing.T) {
	repo := newStubBetRepo()
	cache := newStubCache()
	svc := NewBettingService(repo, cache, zerolog.Nop())

	ticket := validTicket()
	result, err := svc.PlaceBet(context.Background(), ticket)
	if err != nil {
		t.Fatalf("PlaceBet returned error: %v", err)
	}
	if result.BetID == "" {
		t.Fatalf("expected generated bet id")
	}
	if result.Status != domain.BetStatusValidated {
		t.Fatalf("expected status VALIDATED, got %s", result.Status)
	}
	if result.Ticket != ticket {
		t.Fatalf("ticket not echoed back: %+v", result.Ticket)
	}

	persisted, ok := repo.saved[result.BetID]
	if !ok {
		t.Fatalf("bet not persisted under returned id")
	}
	if persisted.ticket != ticket || persisted.status != domain.BetStatusValidated {
		t.Fatalf("persisted record mismatch: %+v", persisted)
	}

	if got := cache.values[LastBetKey(ticket.UserID)]; got != result.BetID {
		t.Fatalf("last-bet cache entry = %q, want %q", got, result.BetID)
	}
}

func TestBettingService_PlaceBet_RejectsInvalidTickets(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*domain.BetTicket)
	}{
		{"zero amount", func(tk *domain.BetTicket) { tk.Amount = 0 }},
		{"negative amount", func(tk *domain.BetTicket) { tk.Amount = -5 }},
		{"odds exactly one", func(tk *domain.BetTicket) { tk.Odds = 1.0 }},
		{"odds below one", func(tk *domain.BetTicket) { tk.Odds = 0.5 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newStubBetRepo()
			cache := newStubCache()
			svc := NewBettingService(repo, cache, zerolog.Nop())

			ticket := validTicket()
			tc.mutate(&ticket)

			_, err := svc.PlaceBet(context.Background(), ticket)
			if kind, ok := domain.KindOf(err); !ok || kind != domain.KindValidation {
				t.Fatalf("expected validation error, got %v", err)
			}
			if repo.saveCalls != 0 {
				t.Fatalf("repository called %d times for invalid ticket", repo.saveCalls)
			}
			if cache.setCalls != 0 {
				t.Fatalf("cache called %d times for invalid ticket", cache.setCalls)
			}
		})
	}
}

func TestBettingService_PlaceBet_GeneratesFreshIDs(t *testing.T) {
	repo := newStubBetRepo()
	svc := NewBettingService(repo, newStubCache(), zerolog.Nop())

	const n = 10000
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		result, err := svc.PlaceBet(context.Background(), validTicket())
		if err != nil {
			t.Fatalf("PlaceBet returned error on call %d: %v", i, err)
		}
		if _, dup := seen[result.BetID]; dup {
			t.Fatalf("bet id %s reused after %d calls", result.BetID, i)
		}
		seen[result.BetID] = struct{}{}
	}
}

func TestBettingService_PlaceBet_CacheFailureIsSwallowed(t *testing.T) {
	repo := newStubBetRepo()
	cache := newStubCache()
	cache.setErr = domain.Internal("connection refused")
	svc := NewBettingService(repo, cache, zerolog.Nop())

	result, err := svc.PlaceBet(context.Background(), validTicket())
	if err != nil {
		t.Fatalf("cache failure must not fail the use case: %v", err)
	}
	if result.Status != domain.BetStatusValidated {
		t.Fatalf("expected status VALIDATED, got %s", result.Status)
	}
	if cache.setCalls != 1 {
		t.Fatalf("expected one cache attempt, got %d", cache.setCalls)
	}
	if _, persisted := repo.saved[result.BetID]; !persisted {
		t.Fatalf("persistence must not be rolled back on cache failure")
	}
}

func TestBettingService_PlaceBet_RepositoryFailurePropagates(t *testing.T) {
	repo := newStubBetRepo()
	repo.saveErr = domain.Internal("connection reset")
	cache := newStubCache()
	svc := NewBettingService(repo, cache, zerolog.Nop())

	_, err := svc.PlaceBet(context.Background(), validTicket())
	if kind, ok := domain.KindOf(err); !ok || kind != domain.KindInternal {
		t.Fatalf("expected internal error, got %v", err)
	}
	if cache.setCalls != 0 {
		t.Fatalf("cache must not be written when persistence fails")
	}
}

func TestBettingService_GetBet(t *testing.T) {
	repo := newStubBetRepo()
	svc := NewBettingService(repo, newStubCache(), zerolog.Nop())

	placed, err := svc.PlaceBet(context.Background(), validTicket())
	if err != nil {
		t.Fatalf("PlaceBet returned error: %v", err)
	}

	ticket, err := svc.GetBet(context.Background(), placed.BetID)
	if err != nil {
		t.Fatalf("GetBet returned error: %v", err)
	}
	if *ticket != placed.Ticket {
		t.Fatalf("unexpected ticket: %+v", ticket)
	}

	if _, err := svc.GetBet(context.Background(), "b2c7b37e-9a3f-4e46-9d7b-000000000000"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if _, err := svc.GetBet(context.Background(), "  "); err == nil {
		t.Fatalf("expected validation error for blank id")
	}
}
