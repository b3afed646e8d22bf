package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/JoanixX/high-concurrency-api/internal/core/domain"
)

// errorResponse is the canonical error envelope. Message is only present for
// kinds that carry a payload (validation, duplicate).
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that maps each domain
// error kind to a stable status code and envelope. Internal errors are
// logged with their real cause and rendered with a generic body; the cause
// must never reach the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := resolveError(err, log, c)
		_ = c.JSON(code, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorResponse) {
	// Echo's own errors (bind failures, 404 from router, auth middleware).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorResponse{Error: fmt.Sprintf("%v", he.Message)}
	}

	if kind, ok := domain.KindOf(err); ok {
		switch kind {
		case domain.KindValidation:
			return http.StatusBadRequest, errorResponse{Error: "validation error", Message: err.Error()}
		case domain.KindNotFound:
			return http.StatusNotFound, errorResponse{Error: "not found"}
		case domain.KindAuthenticationFailed:
			return http.StatusUnauthorized, errorResponse{Error: "invalid credentials"}
		case domain.KindDuplicate:
			return http.StatusConflict, errorResponse{Error: "duplicate entity", Message: err.Error()}
		case domain.KindInternal:
			log.Error().
				Str("cause", err.Error()).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Msg("internal error")
			return http.StatusInternalServerError, errorResponse{Error: "internal server error"}
		}
	}

	// Not a domain error: same privacy contract as KindInternal.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorResponse{Error: "internal server error"}
}
