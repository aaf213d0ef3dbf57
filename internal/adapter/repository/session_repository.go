package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/quickmom/quickmom/internal/domain/entities"
)

// SessionRepository implements the session repository interface using GORM
type SessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{
		db: db,
	}
}

// Create creates a new session
func (r *SessionRepository) Create(ctx context.Context, session *entities.Session) error {
	if err := r.db.WithContext(ctx).Create(session).Error; err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// FindByToken finds a non-revoked session by its token
func (r *SessionRepository) FindByToken(ctx context.Context, token string) (*entities.Session, error) {
	var session entities.Session
	if err := r.db.WithContext(ctx).
		Where("token = ? AND revoked_at IS NULL", token).
		First(&session).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, entities.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to find session by token: %w", err)
	}
	return &session, nil
}

// Revoke marks the session with the given token as revoked
func (r *SessionRepository) Revoke(ctx context.Context, token string) error {
	result := r.db.WithContext(ctx).
		Model(&entities.Session{}).
		Where("token = ? AND revoked_at IS NULL", token).
		Update("revoked_at", time.Now().UTC())
	if result.Error != nil {
		return fmt.Errorf("failed to revoke session: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return entities.ErrSessionNotFound
	}
	return nil
}

// UpdateLastUsed updates the last used timestamp
func (r *SessionRepository) UpdateLastUsed(ctx context.Context, token string) error {
	if err := r.db.WithContext(ctx).
		Model(&entities.Session{}).
		Where("token = ?", token).
		Update("last_used_at", time.Now().UTC()).Error; err != nil {
		return fmt.Errorf("failed to update session last used: %w", err)
	}
	return nil
}
