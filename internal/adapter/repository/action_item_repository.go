package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/quickmom/quickmom/internal/domain/entities"
	"github.com/quickmom/quickmom/internal/domain/repositories"
)

// actionItemRepository implements the ActionItemRepository interface
type actionItemRepository struct {
	db *gorm.DB
}

// NewActionItemRepository creates a new action item repository
func NewActionItemRepository(db *gorm.DB) repositories.ActionItemRepository {
	return &actionItemRepository{db: db}
}

// Create creates a new action item
func (r *actionItemRepository) Create(ctx context.Context, item *entities.ActionItem) error {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("failed to create action item: %w", err)
	}
	return nil
}

// FindByID finds an action item by ID
func (r *actionItemRepository) FindByID(ctx context.Context, id uint) (*entities.ActionItem, error) {
	var item entities.ActionItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, entities.ErrActionItemNotFound
		}
		return nil, fmt.Errorf("failed to find action item by ID: %w", err)
	}
	return &item, nil
}

// Update updates an action item
func (r *actionItemRepository) Update(ctx context.Context, item *entities.ActionItem) error {
	if err := r.db.WithContext(ctx).Save(item).Error; err != nil {
		return fmt.Errorf("failed to update action item: %w", err)
	}
	return nil
}
