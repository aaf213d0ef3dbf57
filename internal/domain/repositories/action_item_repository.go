package repositories

import (
	"context"

	"github.com/quickmom/quickmom/internal/domain/entities"
)

// ActionItemRepository defines the interface for action item data access
type ActionItemRepository interface {
	// Create creates a new action item
	Create(ctx context.Context, item *entities.ActionItem) error

	// FindByID finds an action item by ID
	FindByID(ctx context.Context, id uint) (*entities.ActionItem, error)

	// Update updates an action item
	Update(ctx context.Context, item *entities.ActionItem) error
}
