package v1

import (
	"github.com/labstack/echo/v4"

	"github.com/rasalabs/rasa/internal/profile"
	"github.com/rasalabs/rasa/plugin/ai"
	"github.com/rasalabs/rasa/server/middleware"
	"github.com/rasalabs/rasa/store"
)

type APIV1Service struct {
	Secret  string
	Profile *profile.Profile
	Store   *store.Store

	ChatService        ai.ChatService
	TranslationService ai.TranslationService
	VisionService      ai.VisionService

	auth *authService

	// generationLimiter throttles the endpoints that invoke the engine.
	generationLimiter *middleware.RateLimiter
}

func NewAPIV1Service(secret string, profile *profile.Profile, store *store.Store, aiConfig *ai.Config) *APIV1Service {
	return &APIV1Service{
		Secret:             secret,
		Profile:            profile,
		Store:              store,
		ChatService:        ai.NewChatService(&aiConfig.Chat),
		TranslationService: ai.NewTranslationService(&aiConfig.Translation),
		VisionService:      ai.NewVisionService(&aiConfig.Vision),
		auth:               newAuthService(secret),
		generationLimiter:  middleware.NewRateLimiter(middleware.RateLimiterConfig{}),
	}
}

// Register attaches all routes to the given Echo instance.
func (s *APIV1Service) Register(e *echo.Echo) {
	chat := e.Group("/chat")
	chat.POST("", s.Chat, s.limitGeneration)
	chat.POST("/stream", s.StreamChat, s.limitGeneration)
	chat.GET("/history/:userId", s.GetChatHistory)
	chat.POST("/message", s.SaveMessage)
	chat.POST("/message/complete", s.CompleteMessage)

	e.POST("/translate", s.Translate, s.limitGeneration)
	e.POST("/vision/analyze", s.AnalyzeImage, s.limitGeneration)

	e.GET("/daily-tip", s.GetDailyTip)
	e.GET("/seasonal-wisdom", s.GetSeasonalWisdom)
	e.POST("/recommend", s.Recommend)

	auth := e.Group("/auth")
	auth.POST("/login", s.Login)
	auth.POST("/signup", s.Signup)
	auth.POST("/consultant/signup", s.ConsultantSignup)

	users := e.Group("/users")
	users.PUT("/:id/profile", s.UpdateUserProfile)
	users.PUT("/:id/consultant-profile", s.UpdateConsultantProfile)
}
