package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/quickmom/quickmom/internal/domain/entities"
	"github.com/quickmom/quickmom/internal/domain/repositories"
)

// discussionPointRepository implements the DiscussionPointRepository
// interface
type discussionPointRepository struct {
	db *gorm.DB
}

// NewDiscussionPointRepository creates a new discussion point repository
func NewDiscussionPointRepository(db *gorm.DB) repositories.DiscussionPointRepository {
	return &discussionPointRepository{db: db}
}

// Create creates a new discussion point
func (r *discussionPointRepository) Create(ctx context.Context, point *entities.DiscussionPoint) error {
	if err := r.db.WithContext(ctx).Create(point).Error; err != nil {
		return fmt.Errorf("failed to create discussion point: %w", err)
	}
	return nil
}
