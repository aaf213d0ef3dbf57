package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/quickmom/quickmom/internal/adapter/dto/common"
	"github.com/quickmom/quickmom/internal/adapter/presenter"
	"github.com/quickmom/quickmom/internal/usecase/user"
)

// User handles user lookup and seeding HTTP requests
type User struct {
	userService *user.Service
	logger      *zap.Logger
}

// NewUser creates a new user handler
func NewUser(userService *user.Service, logger *zap.Logger) *User {
	return &User{
		userService: userService,
		logger:      logger,
	}
}

// Search finds users by username substring
// GET /api/users/search?q=
func (h *User) Search(c echo.Context) error {
	users, err := h.userService.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return c.JSON(http.StatusOK, presenter.ToUserResponses(users))
}

// Seed populates the fixture accounts
// POST /api/seed
func (h *User) Seed(c echo.Context) error {
	message, err := h.userService.Seed(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return c.JSON(http.StatusOK, common.MessageResponse{Message: message})
}
