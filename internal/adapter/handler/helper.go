package handler

import (
	stdErrors "errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/quickmom/quickmom/errors"
	"github.com/quickmom/quickmom/internal/adapter/dto/common"
)

// HandleError centralizes error handling and logging. AppError maps to
// its HTTP code with an {"error": message} body; anything else is a 500.
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	reqID := getRequestID(c)

	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		if logger != nil {
			logger.Error("http.response.error",
				zap.String("request_id", reqID),
				zap.String("path", c.Path()),
				zap.Any("app_code", appErr.Code),
				zap.Error(err),
			)
		}
		return c.JSON(appErr.HTTPCode, common.ErrorResponse{Error: appErr.Message})
	}

	if logger != nil {
		logger.Error("http.response.error",
			zap.String("request_id", reqID),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}
	return c.JSON(http.StatusInternalServerError, common.ErrorResponse{Error: "Internal server error"})
}

// getRequestID tries to read X-Request-ID from the request
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	return c.Request().Header.Get("X-Request-ID")
}

// SetSessionCookie attaches the session token to the response
func SetSessionCookie(c echo.Context, name, token string, maxAge int, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie expires the session cookie
func ClearSessionCookie(c echo.Context, name string, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// SessionToken reads the session token from the request cookie,
// returning "" when the cookie is absent.
func SessionToken(c echo.Context, name string) string {
	cookie, err := c.Cookie(name)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// parseIDParam parses a numeric path parameter
func parseIDParam(c echo.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, errors.ErrValidation(name + " must be a numeric id")
	}
	return uint(id), nil
}
