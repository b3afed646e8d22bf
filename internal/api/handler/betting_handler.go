package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/JoanixX/high-concurrency-api/internal/api/metrics"
	"github.com/JoanixX/high-concurrency-api/internal/core/domain"
	"github.com/JoanixX/high-concurrency-api/internal/core/ports"
)

type BettingHandler struct {
	bettingService ports.BettingService
}

func NewBettingHandler(bettingService ports.BettingService) *BettingHandler {
	return &BettingHandler{bettingService: bettingService}
}

type placeBetRequest struct {
	UserID  string  `json:"user_id" validate:"omitempty,uuid4"`
	MatchID string  `json:"match_id" validate:"required,uuid4"`
	Amount  float64 `json:"amount"`
	Odds    float64 `json:"odds"`
}

type betResponse struct {
	BetID   string  `json:"bet_id"`
	UserID  string  `json:"user_id"`
	MatchID string  `json:"match_id"`
	Amount  float64 `json:"amount"`
	Odds    float64 `json:"odds"`
	Status  string  `json:"status"`
}

// PlaceBet validates and persists a new bet for the authenticated user.
//
// @Summary      Place a bet
// @Tags         betting
// @Accept       json
// @Produce      json
// @Param        body  body      placeBetRequest  true  "Bet ticket"
// @Success      200   {object}  betResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /bets [post]
// @Security     BearerAuth
func (h *BettingHandler) PlaceBet(c echo.Context) error {
	var req placeBetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	authedUser, _ := c.Get("user_id").(string)
	if req.UserID == "" {
		req.UserID = authedUser
	}
	if req.UserID != authedUser {
		return echo.NewHTTPError(http.StatusForbidden, "cannot place bets for another user")
	}

	result, err := h.bettingService.PlaceBet(c.Request().Context(), domain.BetTicket{
		UserID:  req.UserID,
		MatchID: req.MatchID,
		Amount:  req.Amount,
		Odds:    req.Odds,
	})
	if err != nil {
		metrics.BetsRejectedTotal.WithLabelValues(rejectionLabel(err)).Inc()
		return err
	}
	metrics.BetsPlacedTotal.Inc()

	return c.JSON(http.StatusOK, betResponse{
		BetID:   result.BetID,
		UserID:  result.Ticket.UserID,
		MatchID: result.Ticket.MatchID,
		Amount:  result.Ticket.Amount,
		Odds:    result.Ticket.Odds,
		Status:  string(result.Status),
	})
}

// GetBet returns a previously placed bet by id.
//
// @Summary      Get a bet
// @Tags         betting
// @Produce      json
// @Param        id   path      string  true  "Bet id"
// @Success      200  {object}  betResponse
// @Failure      404  {object}  map[string]string
// @Router       /bets/{id} [get]
// @Security     BearerAuth
func (h *BettingHandler) GetBet(c echo.Context) error {
	betID := c.Param("id")

	ticket, err := h.bettingService.GetBet(c.Request().Context(), betID)
	if err != nil {
		return err
	}

	// Only validated bets are ever persisted by this core.
	return c.JSON(http.StatusOK, betResponse{
		BetID:   betID,
		UserID:  ticket.UserID,
		MatchID: ticket.MatchID,
		Amount:  ticket.Amount,
		Odds:    ticket.Odds,
		Status:  string(domain.BetStatusValidated),
	})
}

func rejectionLabel(err error) string {
	if kind, ok := domain.KindOf(err); ok && kind == domain.KindValidation {
		return "validation"
	}
	return "error"
}
