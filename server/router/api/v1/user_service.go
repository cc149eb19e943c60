package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	aierrors "github.com/rasalabs/rasa/internal/errors"
)

type UserProfileRequest struct {
	Name      string `json:"name"`
	Age       int    `json:"age,omitempty"`
	Dosha     string `json:"dosha,omitempty"`
	Goals     string `json:"goals,omitempty"`
	Specialty string `json:"specialty,omitempty"`
}

type UserProfileResponse struct {
	ID      string             `json:"id"`
	Profile UserProfileRequest `json:"profile"`
	Status  string             `json:"status"`
}

// UpdateUserProfile accepts profile fields for a user. Profiles are
// acknowledged but not persisted; the assistant is stateless per user
// beyond the conversation log.
// PUT /users/:id/profile
func (s *APIV1Service) UpdateUserProfile(c echo.Context) error {
	return s.updateProfile(c)
}

// UpdateConsultantProfile accepts consultant profile fields.
// PUT /users/:id/consultant-profile
func (s *APIV1Service) UpdateConsultantProfile(c echo.Context) error {
	return s.updateProfile(c)
}

func (s *APIV1Service) updateProfile(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return errorResponse(c, aierrors.InvalidArgument("user id is required"))
	}

	var req UserProfileRequest
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, aierrors.InvalidArgument("invalid request body"))
	}

	return c.JSON(http.StatusOK, UserProfileResponse{ID: id, Profile: req, Status: "updated"})
}
