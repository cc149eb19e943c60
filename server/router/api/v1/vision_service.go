package v1

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	aierrors "github.com/rasalabs/rasa/internal/errors"
	"github.com/rasalabs/rasa/server/internal/observability"
)

// maxUploadBytes caps vision uploads before decoding.
const maxUploadBytes = 10 << 20

type VisionResponse struct {
	Result string `json:"result"`
}

// AnalyzeImage captions an uploaded image.
// POST /vision/analyze
func (s *APIV1Service) AnalyzeImage(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return errorResponse(c, aierrors.InvalidArgument("file is required"))
	}
	if fileHeader.Size > maxUploadBytes {
		return errorResponse(c, aierrors.InvalidArgument("image exceeds the 10MB upload limit"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errorResponse(c, aierrors.InvalidArgument("unable to read upload"))
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		return errorResponse(c, aierrors.InvalidArgument("unable to read upload"))
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	logger := observability.NewRequestContext(slog.Default(), "vision", c.RealIP())
	logger.Info("caption started", slog.Int("image_bytes", len(content)))

	result, err := s.VisionService.Analyze(c.Request().Context(), content, mimeType)
	if err != nil {
		logger.Error("caption failed", err)
		return errorResponse(c, err)
	}

	logger.Info("caption completed", slog.Int64(observability.LogFieldDuration, logger.DurationMs()))
	return c.JSON(http.StatusOK, VisionResponse{Result: result})
}
