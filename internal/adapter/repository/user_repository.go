package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/quickmom/quickmom/internal/domain/entities"
)

// UserRepository implements the user repository interface using GORM
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindByID finds a user by ID
func (r *UserRepository) FindByID(ctx context.Context, id uint) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user by ID: %w", err)
	}
	return &user, nil
}

// FindByEmail finds a user by email
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return &user, nil
}

// FindByUsername finds a user by username
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user by username: %w", err)
	}
	return &user, nil
}

// FindByIDs returns the users whose ids exist; unknown ids are skipped
func (r *UserRepository) FindByIDs(ctx context.Context, ids []uint) ([]*entities.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var users []*entities.User
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to find users by ids: %w", err)
	}
	return users, nil
}

// SearchByUsername returns users matching the query (case-insensitive
// substring), capped at limit
func (r *UserRepository) SearchByUsername(ctx context.Context, query string, limit int) ([]*entities.User, error) {
	var users []*entities.User
	pattern := fmt.Sprintf("%%%s%%", query)
	if err := r.db.WithContext(ctx).
		Where("username ILIKE ?", pattern).
		Order("id ASC").
		Limit(limit).
		Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}
	return users, nil
}

// List returns users in insertion order, capped at limit
func (r *UserRepository) List(ctx context.Context, limit int) ([]*entities.User, error) {
	var users []*entities.User
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Limit(limit).
		Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// Count returns the total number of users
func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.User{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}
