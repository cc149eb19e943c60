package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	aierrors "github.com/rasalabs/rasa/internal/errors"
)

// errorStatus maps structured error codes to HTTP status codes.
func errorStatus(err error) int {
	switch aierrors.GetCodeFromError(err, aierrors.ErrCodeServiceUnavailable) {
	case aierrors.ErrCodeInvalidArgument:
		return http.StatusBadRequest
	case aierrors.ErrCodeEngineInitFailed, aierrors.ErrCodeServiceUnavailable:
		return http.StatusServiceUnavailable
	case aierrors.ErrCodeGenerationFailed:
		return http.StatusBadGateway
	case aierrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// errorResponse writes a structured error payload.
func errorResponse(c echo.Context, err error) error {
	code := aierrors.GetCodeFromError(err, aierrors.ErrCodeServiceUnavailable)
	return c.JSON(errorStatus(err), map[string]string{
		"code":  string(code),
		"error": err.Error(),
	})
}

// limitGeneration rejects requests that exceed the per-client generation
// budget before they reach the engine.
func (s *APIV1Service) limitGeneration(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !s.generationLimiter.Allow(c.RealIP()) {
			return c.JSON(http.StatusTooManyRequests, map[string]string{"error": "rate limit exceeded"})
		}
		return next(c)
	}
}
