package memory

import (
	"context"
	"strings"

	"github.com/quickmom/quickmom/internal/domain/entities"
	"github.com/quickmom/quickmom/internal/domain/repositories"
)

// UserRepository is the in-memory UserRepository
type UserRepository struct {
	store *Store
}

// NewUserRepository creates an in-memory user repository
func NewUserRepository(store *Store) repositories.UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextUserID++
	user.ID = r.store.nextUserID
	cp := *user
	r.store.users[user.ID] = &cp
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*entities.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	user, ok := r.store.users[id]
	if !ok {
		return nil, entities.ErrUserNotFound
	}
	cp := *user
	return &cp, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, id := range sortedKeys(r.store.users) {
		if r.store.users[id].Email == email {
			cp := *r.store.users[id]
			return &cp, nil
		}
	}
	return nil, entities.ErrUserNotFound
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, id := range sortedKeys(r.store.users) {
		if r.store.users[id].Username == username {
			cp := *r.store.users[id]
			return &cp, nil
		}
	}
	return nil, entities.ErrUserNotFound
}

func (r *UserRepository) FindByIDs(ctx context.Context, ids []uint) ([]*entities.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	seen := make(map[uint]struct{}, len(ids))
	var users []*entities.User
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if user, ok := r.store.users[id]; ok {
			cp := *user
			users = append(users, &cp)
		}
	}
	return users, nil
}

func (r *UserRepository) SearchByUsername(ctx context.Context, query string, limit int) ([]*entities.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	q := strings.ToLower(query)
	var users []*entities.User
	for _, id := range sortedKeys(r.store.users) {
		if len(users) >= limit {
			break
		}
		if strings.Contains(strings.ToLower(r.store.users[id].Username), q) {
			cp := *r.store.users[id]
			users = append(users, &cp)
		}
	}
	return users, nil
}

func (r *UserRepository) List(ctx context.Context, limit int) ([]*entities.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var users []*entities.User
	for _, id := range sortedKeys(r.store.users) {
		if len(users) >= limit {
			break
		}
		cp := *r.store.users[id]
		users = append(users, &cp)
	}
	return users, nil
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return int64(len(r.store.users)), nil
}
