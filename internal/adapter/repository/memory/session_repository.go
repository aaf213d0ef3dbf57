package memory

import (
	"context"
	"time"

	"github.com/quickmom/quickmom/internal/domain/entities"
	"github.com/quickmom/quickmom/internal/domain/repositories"
)

// SessionRepository is the in-memory SessionRepository
type SessionRepository struct {
	store *Store
}

// NewSessionRepository creates an in-memory session repository
func NewSessionRepository(store *Store) repositories.SessionRepository {
	return &SessionRepository{store: store}
}

func (r *SessionRepository) Create(ctx context.Context, session *entities.Session) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextSessionID++
	session.ID = r.store.nextSessionID
	cp := *session
	r.store.sessions[session.Token] = &cp
	return nil
}

func (r *SessionRepository) FindByToken(ctx context.Context, token string) (*entities.Session, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	session, ok := r.store.sessions[token]
	if !ok || session.RevokedAt != nil {
		return nil, entities.ErrSessionNotFound
	}
	cp := *session
	return &cp, nil
}

func (r *SessionRepository) Revoke(ctx context.Context, token string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	session, ok := r.store.sessions[token]
	if !ok || session.RevokedAt != nil {
		return entities.ErrSessionNotFound
	}
	now := time.Now().UTC()
	session.RevokedAt = &now
	return nil
}

func (r *SessionRepository) UpdateLastUsed(ctx context.Context, token string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if session, ok := r.store.sessions[token]; ok {
		now := time.Now().UTC()
		session.LastUsedAt = &now
	}
	return nil
}
