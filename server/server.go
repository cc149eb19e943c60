package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/lithammer/shortuuid/v4"
	"github.com/pkg/errors"

	"github.com/rasalabs/rasa/internal/profile"
	"github.com/rasalabs/rasa/plugin/ai"
	apiv1 "github.com/rasalabs/rasa/server/router/api/v1"
	"github.com/rasalabs/rasa/store"
)

type Server struct {
	Secret  string
	Profile *profile.Profile
	Store   *store.Store

	echoServer *echo.Echo
	apiV1      *apiv1.APIV1Service
}

func NewServer(ctx context.Context, profile *profile.Profile, store *store.Store) (*Server, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{
		Secret:     profile.Secret,
		Profile:    profile,
		Store:      store,
		echoServer: e,
	}

	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: shortuuid.New,
	}))
	e.Use(echomw.RecoverWithConfig(echomw.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			slog.Error("panic recovered",
				slog.String("path", c.Path()),
				slog.String("error", err.Error()))
			return err
		},
	}))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
	}))
	e.Use(requestLogger())

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": profile.Version,
		})
	})

	aiConfig := ai.NewConfigFromProfile(profile)
	if err := aiConfig.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid ai configuration")
	}

	s.apiV1 = apiv1.NewAPIV1Service(s.Secret, profile, store, aiConfig)
	s.apiV1.Register(e)

	return s, nil
}

func (s *Server) Start(ctx context.Context) error {
	address := s.Profile.Address()
	slog.Info("server listening", slog.String("address", address), slog.String("mode", s.Profile.Mode))
	if err := s.echoServer.Start(address); err != nil && err != http.ErrServerClosed {
		return errors.Wrap(err, "failed to start echo server")
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := s.echoServer.Shutdown(ctx); err != nil {
		slog.Error("failed to shut down server", slog.String("error", err.Error()))
	}
	if err := s.Store.Close(); err != nil {
		slog.Error("failed to close store", slog.String("error", err.Error()))
	}
	slog.Info("server stopped")
}

// requestLogger emits one structured line per request. Streaming
// responses log on completion, after the last chunk is flushed.
func requestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			slog.Info("request",
				slog.String("method", c.Request().Method),
				slog.String("path", c.Request().URL.Path),
				slog.Int("status", c.Response().Status),
				slog.String(echo.HeaderXRequestID, c.Response().Header().Get(echo.HeaderXRequestID)),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()),
			)
			return err
		}
	}
}
