package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/quickmom/quickmom/internal/adapter/repository/memory"
	"github.com/quickmom/quickmom/internal/infrastructure/cache"
	httpmw "github.com/quickmom/quickmom/internal/infrastructure/http/middleware"
	"github.com/quickmom/quickmom/internal/usecase/auth"
	"github.com/quickmom/quickmom/internal/usecase/meeting"
	"github.com/quickmom/quickmom/internal/usecase/user"
	"github.com/quickmom/quickmom/pkg/config"
	pkgvalidator "github.com/quickmom/quickmom/pkg/validator"
)

const testCookieName = "quickmom_session"

// newTestServer wires the full handler stack over in-memory
// repositories so requests go through routing, session middleware,
// validation and presenters exactly as in production.
func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	store := memory.NewStore()
	userRepo := memory.NewUserRepository(store)
	sessionRepo := memory.NewSessionRepository(store)
	meetingRepo := memory.NewMeetingRepository(store)
	topicRepo := memory.NewTopicRepository(store)
	pointRepo := memory.NewDiscussionPointRepository(store)
	itemRepo := memory.NewActionItemRepository(store)

	cfg := &config.Config{
		Server: config.ServerConfig{Environment: "test"},
		Session: config.SessionConfig{
			CookieName: testCookieName,
			TTL:        time.Hour,
		},
	}

	logger := zap.NewNop()
	authService := auth.NewService(userRepo, sessionRepo, cache.NewMemoryStore(), cfg.Session.TTL)
	meetingService := meeting.NewService(meetingRepo, topicRepo, pointRepo, itemRepo, userRepo)
	userService := user.NewService(userRepo)

	e := echo.New()
	e.Validator = pkgvalidator.New()

	sessionMW := httpmw.NewSessionMiddleware(authService, cfg.Session.CookieName, logger)
	router := NewRouter(
		cfg,
		NewAuth(authService, cfg.Session, logger),
		NewMeeting(meetingService, logger),
		NewUser(userService, logger),
		sessionMW,
	)
	router.Setup(e)

	return e
}

func doJSON(e *echo.Echo, method, path, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	res := rec.Result()
	for _, c := range res.Cookies() {
		if c.Name == testCookieName {
			return c
		}
	}
	t.Fatal("no session cookie in response")
	return nil
}

// registerUser registers an account and returns its session cookie.
func registerUser(t *testing.T, e *echo.Echo, username, email string) *http.Cookie {
	t.Helper()
	rec := doJSON(e, http.MethodPost, "/api/auth/register",
		`{"username":"`+username+`","email":"`+email+`","password":"password"}`, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("register returned %d: %s", rec.Code, rec.Body.String())
	}
	return sessionCookie(t, rec)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body %q: %v", rec.Body.String(), err)
	}
	return body
}
