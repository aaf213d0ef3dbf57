package memory

import (
	"context"

	"github.com/quickmom/quickmom/internal/domain/entities"
	"github.com/quickmom/quickmom/internal/domain/repositories"
)

// ActionItemRepository is the in-memory ActionItemRepository
type ActionItemRepository struct {
	store *Store
}

// NewActionItemRepository creates an in-memory action item repository
func NewActionItemRepository(store *Store) repositories.ActionItemRepository {
	return &ActionItemRepository{store: store}
}

func (r *ActionItemRepository) Create(ctx context.Context, item *entities.ActionItem) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextItemID++
	item.ID = r.store.nextItemID
	cp := *item
	r.store.items[item.ID] = &cp
	return nil
}

func (r *ActionItemRepository) FindByID(ctx context.Context, id uint) (*entities.ActionItem, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	item, ok := r.store.items[id]
	if !ok {
		return nil, entities.ErrActionItemNotFound
	}
	cp := *item
	return &cp, nil
}

func (r *ActionItemRepository) Update(ctx context.Context, item *entities.ActionItem) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.items[item.ID]; !ok {
		return entities.ErrActionItemNotFound
	}
	cp := *item
	r.store.items[item.ID] = &cp
	return nil
}
