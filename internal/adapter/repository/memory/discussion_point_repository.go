package memory

import (
	"context"

	"github.com/quickmom/quickmom/internal/domain/entities"
	"github.com/quickmom/quickmom/internal/domain/repositories"
)

// DiscussionPointRepository is the in-memory DiscussionPointRepository
type DiscussionPointRepository struct {
	store *Store
}

// NewDiscussionPointRepository creates an in-memory discussion point
// repository
func NewDiscussionPointRepository(store *Store) repositories.DiscussionPointRepository {
	return &DiscussionPointRepository{store: store}
}

func (r *DiscussionPointRepository) Create(ctx context.Context, point *entities.DiscussionPoint) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextPointID++
	point.ID = r.store.nextPointID
	cp := *point
	r.store.points[point.ID] = &cp
	return nil
}
