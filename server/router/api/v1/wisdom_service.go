package v1

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	aierrors "github.com/rasalabs/rasa/internal/errors"
	"github.com/rasalabs/rasa/store"
)

type DailyTipResponse struct {
	Tip    string `json:"tip"`
	Lang   string `json:"lang"`
	Source string `json:"source,omitempty"`
}

type SeasonalWisdomResponse struct {
	Wisdom string `json:"wisdom"`
	Season string `json:"season"`
	Lang   string `json:"lang"`
}

type RecommendRequest struct {
	Query string `json:"query"`
}

type RecommendedRemedy struct {
	Name  string `json:"name"`
	Dosha string `json:"dosha"`
	Tip   string `json:"tip"`
}

type RecommendResponse struct {
	Tip      string              `json:"tip"`
	Remedies []RecommendedRemedy `json:"remedies"`
}

// GetDailyTip returns the tip of the day.
// GET /daily-tip
func (s *APIV1Service) GetDailyTip(c echo.Context) error {
	lang := c.QueryParam("lang")
	if lang == "" {
		lang = "en"
	}

	tip, err := s.Store.GetDailyTip(c.Request().Context(), lang)
	if err != nil {
		slog.Error("failed to load daily tip", slog.String("error", err.Error()))
		return errorResponse(c, aierrors.ServiceUnavailable("daily tip unavailable"))
	}

	return c.JSON(http.StatusOK, DailyTipResponse{Tip: tip.Content, Lang: tip.Lang, Source: tip.Source})
}

// GetSeasonalWisdom returns guidance for a season.
// GET /seasonal-wisdom
func (s *APIV1Service) GetSeasonalWisdom(c echo.Context) error {
	season := c.QueryParam("season")
	if season == "" {
		return errorResponse(c, aierrors.InvalidArgument("season is required"))
	}
	lang := c.QueryParam("lang")
	if lang == "" {
		lang = "en"
	}

	wisdom, err := s.Store.GetSeasonalWisdom(c.Request().Context(), season, lang)
	if err != nil {
		slog.Warn("no wisdom for season", slog.String("season", season), slog.String("error", err.Error()))
		return errorResponse(c, aierrors.InvalidArgument("unknown season"))
	}

	return c.JSON(http.StatusOK, SeasonalWisdomResponse{Wisdom: wisdom.Content, Season: wisdom.Season, Lang: wisdom.Lang})
}

// Recommend looks up matching knowledge-base remedies for a query.
// POST /recommend
func (s *APIV1Service) Recommend(c echo.Context) error {
	var req RecommendRequest
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, aierrors.InvalidArgument("invalid request body"))
	}
	if strings.TrimSpace(req.Query) == "" {
		return errorResponse(c, aierrors.InvalidArgument("query is required"))
	}

	limit := 3
	remedies, err := s.Store.ListRemedies(c.Request().Context(), &store.FindRemedy{Query: &req.Query, Limit: &limit})
	if err != nil {
		slog.Error("failed to list remedies", slog.String("error", err.Error()))
		return errorResponse(c, aierrors.ServiceUnavailable("recommendations unavailable"))
	}

	resp := RecommendResponse{Remedies: make([]RecommendedRemedy, 0, len(remedies))}
	for _, r := range remedies {
		resp.Remedies = append(resp.Remedies, RecommendedRemedy{Name: r.Name, Dosha: r.Dosha, Tip: r.Content})
	}
	if len(remedies) > 0 {
		resp.Tip = remedies[0].Content
	} else {
		resp.Tip = "No matching guidance found. Try describing how you feel instead."
	}
	return c.JSON(http.StatusOK, resp)
}
