package middleware

import (
	stdErrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/quickmom/quickmom/errors"
	"github.com/quickmom/quickmom/internal/usecase/auth"
)

// Context keys under which the resolved principal is stored.
const (
	ContextKeyUser   = "user"
	ContextKeyUserID = "user_id"
)

// SessionMiddleware resolves the session cookie into a principal and
// stores it on the request context.
type SessionMiddleware struct {
	authService *auth.Service
	cookieName  string
	logger      *zap.Logger
}

// NewSessionMiddleware creates a new session middleware
func NewSessionMiddleware(authService *auth.Service, cookieName string, logger *zap.Logger) *SessionMiddleware {
	return &SessionMiddleware{
		authService: authService,
		cookieName:  cookieName,
		logger:      logger,
	}
}

// RequireSession rejects requests without a valid session. On success
// the user entity is available under ContextKeyUser.
func (m *SessionMiddleware) RequireSession() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := m.authService.ValidateSession(c.Request().Context(), m.token(c))
			if err != nil {
				return m.reject(c, err)
			}
			c.Set(ContextKeyUser, user)
			c.Set(ContextKeyUserID, user.ID)
			return next(c)
		}
	}
}

// OptionalSession resolves the principal when a valid session cookie is
// present and passes the request through either way.
func (m *SessionMiddleware) OptionalSession() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if token := m.token(c); token != "" {
				if user, err := m.authService.ValidateSession(c.Request().Context(), token); err == nil {
					c.Set(ContextKeyUser, user)
					c.Set(ContextKeyUserID, user.ID)
				}
			}
			return next(c)
		}
	}
}

func (m *SessionMiddleware) token(c echo.Context) string {
	cookie, err := c.Cookie(m.cookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func (m *SessionMiddleware) reject(c echo.Context, err error) error {
	if m.logger != nil {
		m.logger.Warn("http.session.rejected",
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}

	var appErr apperrors.AppError
	if stdErrors.As(err, &appErr) {
		return c.JSON(appErr.HTTPCode, map[string]string{"error": appErr.Message})
	}
	return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authentication required"})
}
