package v1

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	aierrors "github.com/rasalabs/rasa/internal/errors"
	"github.com/rasalabs/rasa/server/internal/observability"
)

type TranslateRequest struct {
	Text   string `json:"text"`
	Target string `json:"target"` // "hi" | "en"
}

type TranslateResponse struct {
	Translated string `json:"translated"`
}

// Translate converts free text to the target language.
// POST /translate
func (s *APIV1Service) Translate(c echo.Context) error {
	var req TranslateRequest
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, aierrors.InvalidArgument("invalid request body"))
	}
	if strings.TrimSpace(req.Text) == "" {
		return errorResponse(c, aierrors.InvalidArgument("text is required"))
	}
	if req.Target == "" {
		req.Target = "hi"
	}

	logger := observability.NewRequestContext(slog.Default(), "translate", c.RealIP())

	translated, err := s.TranslationService.Translate(c.Request().Context(), req.Text, req.Target)
	if err != nil {
		logger.Error("translation failed", err)
		return errorResponse(c, err)
	}

	logger.Info("translation completed", slog.Int64(observability.LogFieldDuration, logger.DurationMs()))
	return c.JSON(http.StatusOK, TranslateResponse{Translated: translated})
}
