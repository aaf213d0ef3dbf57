package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	authDTO "github.com/quickmom/quickmom/internal/adapter/dto/auth"
	"github.com/quickmom/quickmom/internal/adapter/dto/common"
	"github.com/quickmom/quickmom/internal/adapter/presenter"
	"github.com/quickmom/quickmom/internal/domain/entities"
	"github.com/quickmom/quickmom/internal/infrastructure/http/middleware"
	"github.com/quickmom/quickmom/internal/usecase/auth"
	"github.com/quickmom/quickmom/pkg/config"
)

// Auth handles authentication HTTP requests
type Auth struct {
	authService *auth.Service
	cfg         config.SessionConfig
	logger      *zap.Logger
}

// NewAuth creates a new auth handler
func NewAuth(authService *auth.Service, cfg config.SessionConfig, logger *zap.Logger) *Auth {
	return &Auth{
		authService: authService,
		cfg:         cfg,
		logger:      logger,
	}
}

// Register creates an account and logs the user in
// POST /api/auth/register
func (h *Auth) Register(c echo.Context) error {
	ctx := c.Request().Context()

	var req authDTO.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, err)
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, err)
	}

	user, session, err := h.authService.Register(ctx, auth.RegisterInput{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		IPAddress: c.RealIP(),
		UserAgent: c.Request().UserAgent(),
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	SetSessionCookie(c, h.cfg.CookieName, session.Token, int(h.authService.SessionTTL().Seconds()), h.cfg.SecureCookie)
	return c.JSON(http.StatusCreated, authDTO.AuthResponse{
		Message: "Registered successfully",
		User:    presenter.ToUserResponse(user),
	})
}

// Login authenticates with email and password
// POST /api/auth/login
func (h *Auth) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req authDTO.LoginRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, err)
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, err)
	}

	user, session, err := h.authService.Login(ctx, auth.LoginInput{
		Email:     req.Email,
		Password:  req.Password,
		IPAddress: c.RealIP(),
		UserAgent: c.Request().UserAgent(),
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	SetSessionCookie(c, h.cfg.CookieName, session.Token, int(h.authService.SessionTTL().Seconds()), h.cfg.SecureCookie)
	return c.JSON(http.StatusOK, authDTO.AuthResponse{
		Message: "Logged in successfully",
		User:    presenter.ToUserResponse(user),
	})
}

// Logout revokes the current session
// POST /api/auth/logout
func (h *Auth) Logout(c echo.Context) error {
	ctx := c.Request().Context()

	token := SessionToken(c, h.cfg.CookieName)
	if err := h.authService.Logout(ctx, token); err != nil {
		return HandleError(h.logger, c, err)
	}

	ClearSessionCookie(c, h.cfg.CookieName, h.cfg.SecureCookie)
	return c.JSON(http.StatusOK, common.MessageResponse{Message: "Logged out successfully"})
}

// Me reports the current principal; user is null when the request
// carries no valid session.
// GET /api/auth/me
func (h *Auth) Me(c echo.Context) error {
	resp := authDTO.MeResponse{}
	if user, ok := c.Get(middleware.ContextKeyUser).(*entities.User); ok {
		resp.User = presenter.ToUserResponse(user)
	}
	return c.JSON(http.StatusOK, resp)
}
