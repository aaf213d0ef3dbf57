package auth

import (
	"context"
	"errors"
	"strconv"
	"time"

	apperrors "github.com/quickmom/quickmom/errors"
	"github.com/quickmom/quickmom/internal/domain/entities"
	"github.com/quickmom/quickmom/internal/domain/repositories"
	"github.com/quickmom/quickmom/internal/infrastructure/cache"
)

// sessionCacheTTL bounds how long a session may be served from cache
// after it is revoked elsewhere.
const sessionCacheTTL = 5 * time.Minute

// Service handles registration, login and session resolution. The
// authenticated principal is always resolved explicitly per request and
// passed into downstream services by parameter.
type Service struct {
	userRepo    repositories.UserRepository
	sessionRepo repositories.SessionRepository
	cache       cache.Store
	sessionTTL  time.Duration
}

// NewService creates a new auth service
func NewService(
	userRepo repositories.UserRepository,
	sessionRepo repositories.SessionRepository,
	cacheStore cache.Store,
	sessionTTL time.Duration,
) *Service {
	return &Service{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		cache:       cacheStore,
		sessionTTL:  sessionTTL,
	}
}

// RegisterInput carries the registration form plus client metadata for
// the session record.
type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	IPAddress string
	UserAgent string
}

// Register creates a user and establishes a session for it. Duplicate
// email or username fails before any write.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*entities.User, *entities.Session, error) {
	if input.Username == "" || input.Email == "" || input.Password == "" {
		return nil, nil, apperrors.ErrMissingFields()
	}

	if _, err := s.userRepo.FindByEmail(ctx, input.Email); err == nil {
		return nil, nil, apperrors.ErrEmailTaken()
	} else if !errors.Is(err, entities.ErrUserNotFound) {
		return nil, nil, apperrors.ErrDBQueryFailed(err)
	}

	if _, err := s.userRepo.FindByUsername(ctx, input.Username); err == nil {
		return nil, nil, apperrors.ErrUsernameTaken()
	} else if !errors.Is(err, entities.ErrUserNotFound) {
		return nil, nil, apperrors.ErrDBQueryFailed(err)
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		return nil, nil, apperrors.ErrInternal(err)
	}

	user := entities.NewUser(input.Username, input.Email, hash)
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, nil, apperrors.ErrDBQueryFailed(err)
	}

	session, err := s.establishSession(ctx, user.ID, input.IPAddress, input.UserAgent)
	if err != nil {
		return nil, nil, err
	}
	return user, session, nil
}

// LoginInput carries the login form plus client metadata.
type LoginInput struct {
	Email     string
	Password  string
	IPAddress string
	UserAgent string
}

// Login verifies the credentials and establishes a session. A missing
// user and a wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, input LoginInput) (*entities.User, *entities.Session, error) {
	user, err := s.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return nil, nil, apperrors.ErrInvalidCredentials()
		}
		return nil, nil, apperrors.ErrDBQueryFailed(err)
	}

	if !CheckPassword(user.PasswordHash, input.Password) {
		return nil, nil, apperrors.ErrInvalidCredentials()
	}

	session, err := s.establishSession(ctx, user.ID, input.IPAddress, input.UserAgent)
	if err != nil {
		return nil, nil, err
	}
	return user, session, nil
}

// Logout revokes the session bound to the token.
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return apperrors.ErrNoSession()
	}

	if err := s.sessionRepo.Revoke(ctx, token); err != nil {
		if errors.Is(err, entities.ErrSessionNotFound) {
			return apperrors.ErrNoSession()
		}
		return apperrors.ErrDBQueryFailed(err)
	}

	_ = s.cache.Delete(ctx, sessionCacheKey(token))
	return nil
}

// ValidateSession resolves the principal for a session token. The cache
// is consulted first; the database stays the source of truth.
func (s *Service) ValidateSession(ctx context.Context, token string) (*entities.User, error) {
	if token == "" {
		return nil, apperrors.ErrNoSession()
	}

	if cached, found, _ := s.cache.Get(ctx, sessionCacheKey(token)); found {
		if userID, err := strconv.ParseUint(cached, 10, 64); err == nil {
			user, err := s.userRepo.FindByID(ctx, uint(userID))
			if err == nil {
				return user, nil
			}
		}
	}

	session, err := s.sessionRepo.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, entities.ErrSessionNotFound) {
			return nil, apperrors.ErrNoSession()
		}
		return nil, apperrors.ErrDBQueryFailed(err)
	}

	if session.IsExpired() {
		return nil, apperrors.ErrSessionExpired()
	}

	user, err := s.userRepo.FindByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return nil, apperrors.ErrNoSession()
		}
		return nil, apperrors.ErrDBQueryFailed(err)
	}

	_ = s.cache.Set(ctx, sessionCacheKey(token), strconv.FormatUint(uint64(user.ID), 10), sessionCacheTTL)
	_ = s.sessionRepo.UpdateLastUsed(ctx, token)

	return user, nil
}

// SessionTTL returns the configured session lifetime, used for the
// cookie max age.
func (s *Service) SessionTTL() time.Duration {
	return s.sessionTTL
}

func (s *Service) establishSession(ctx context.Context, userID uint, ip, userAgent string) (*entities.Session, error) {
	session := entities.NewSession(userID, s.sessionTTL).WithDeviceInfo(ip, userAgent)
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, apperrors.ErrDBQueryFailed(err)
	}
	_ = s.cache.Set(ctx, sessionCacheKey(session.Token), strconv.FormatUint(uint64(userID), 10), sessionCacheTTL)
	return session, nil
}

func sessionCacheKey(token string) string {
	return "session:" + token
}
