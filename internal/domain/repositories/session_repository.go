package repositories

import (
	"context"

	"github.com/quickmom/quickmom/internal/domain/entities"
)

// SessionRepository defines the interface for session data access
type SessionRepository interface {
	// Create creates a new session
	Create(ctx context.Context, session *entities.Session) error

	// FindByToken finds a non-revoked session by its token
	FindByToken(ctx context.Context, token string) (*entities.Session, error)

	// Revoke marks the session with the given token as revoked
	Revoke(ctx context.Context, token string) error

	// UpdateLastUsed updates the last used timestamp
	UpdateLastUsed(ctx context.Context, token string) error
}
