package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/JoanixX/high-concurrency-api/internal/api/metrics"
	"github.com/JoanixX/high-concurrency-api/internal/core/domain"
	"github.com/JoanixX/high-concurrency-api/internal/core/ports"
)

// TokenIssuer mints the session token returned on login.
type TokenIssuer interface {
	Issue(userID, name string) (string, error)
}

type AuthHandler struct {
	authService ports.AuthService
	issuer      TokenIssuer
}

func NewAuthHandler(authService ports.AuthService, issuer TokenIssuer) *AuthHandler {
	return &AuthHandler{authService: authService, issuer: issuer}
}

type registerRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name"`
}

type registerResponse struct {
	Status string `json:"status"`
	UserID string `json:"user_id"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Status string `json:"status"`
	UserID string `json:"user_id"`
	Name   string `json:"name,omitempty"`
	Token  string `json:"token"`
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.Register(c.Request().Context(), req.Email, req.Password, req.Name)
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues(outcomeLabel(err)).Inc()
		return err
	}
	metrics.RegistrationsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusCreated, registerResponse{
		Status: "Created",
		UserID: result.UserID,
	})
}

// Login authenticates a user and returns a session token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  map[string]string
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(outcomeLabel(err)).Inc()
		return err
	}

	token, err := h.issuer.Issue(result.UserID, result.Name)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, loginResponse{
		Status: "Authenticated",
		UserID: result.UserID,
		Name:   result.Name,
		Token:  token,
	})
}

// outcomeLabel buckets a domain error for metrics: caller mistakes are
// "rejected", everything else is "error".
func outcomeLabel(err error) string {
	kind, ok := domain.KindOf(err)
	if !ok {
		return "error"
	}
	switch kind {
	case domain.KindValidation, domain.KindDuplicate, domain.KindAuthenticationFailed:
		return "rejected"
	default:
		return "error"
	}
}
