package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/quickmom/quickmom/internal/infrastructure/http/middleware"
	"github.com/quickmom/quickmom/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg            *config.Config
	authHandler    *Auth
	meetingHandler *Meeting
	userHandler    *User
	sessionMW      *middleware.SessionMiddleware
}

// NewRouter creates a new router with all handlers
func NewRouter(
	cfg *config.Config,
	authHandler *Auth,
	meetingHandler *Meeting,
	userHandler *User,
	sessionMW *middleware.SessionMiddleware,
) *Router {
	return &Router{
		cfg:            cfg,
		authHandler:    authHandler,
		meetingHandler: meetingHandler,
		userHandler:    userHandler,
		sessionMW:      sessionMW,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	e.GET("/health", rt.healthCheck)

	api := e.Group("/api")

	rt.setupAuthRoutes(api)
	rt.setupMeetingRoutes(api)
	rt.setupUserRoutes(api)
}

// setupAuthRoutes configures authentication routes
func (rt *Router) setupAuthRoutes(g *echo.Group) {
	authGroup := g.Group("/auth")

	authGroup.POST("/register", rt.authHandler.Register)
	authGroup.POST("/login", rt.authHandler.Login)
	authGroup.POST("/logout", rt.authHandler.Logout, rt.sessionMW.RequireSession())
	authGroup.GET("/me", rt.authHandler.Me, rt.sessionMW.OptionalSession())
}

// setupMeetingRoutes configures the meeting aggregate routes; all of
// them require a session.
func (rt *Router) setupMeetingRoutes(g *echo.Group) {
	meetings := g.Group("/meetings", rt.sessionMW.RequireSession())

	meetings.GET("", rt.meetingHandler.List)
	meetings.POST("", rt.meetingHandler.Create)
	meetings.GET("/:meeting_id", rt.meetingHandler.Get)
	meetings.DELETE("/:meeting_id", rt.meetingHandler.Delete)
	meetings.POST("/:meeting_id/topics", rt.meetingHandler.CreateTopic)
	meetings.DELETE("/:meeting_id/topics/:topic_id", rt.meetingHandler.DeleteTopic)
	meetings.POST("/:meeting_id/topics/:topic_id/points", rt.meetingHandler.CreateDiscussionPoint)
	meetings.POST("/:meeting_id/action-items", rt.meetingHandler.CreateActionItem)
	meetings.POST("/:meeting_id/transcribe", rt.meetingHandler.Transcribe)

	g.PUT("/action-items/:item_id", rt.meetingHandler.UpdateActionItem, rt.sessionMW.RequireSession())
}

// setupUserRoutes configures user lookup and seeding routes. Both are
// deliberately open: seeding bootstraps the accounts needed to log in,
// and the attendee picker queries search before any meeting exists.
func (rt *Router) setupUserRoutes(g *echo.Group) {
	g.GET("/users/search", rt.userHandler.Search)
	g.POST("/seed", rt.userHandler.Seed)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
