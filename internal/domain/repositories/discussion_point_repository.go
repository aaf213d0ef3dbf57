package repositories

import (
	"context"

	"github.com/quickmom/quickmom/internal/domain/entities"
)

// DiscussionPointRepository defines the interface for discussion point
// data access
type DiscussionPointRepository interface {
	// Create creates a new discussion point
	Create(ctx context.Context, point *entities.DiscussionPoint) error
}
