package repositories

import (
	"context"

	"github.com/quickmom/quickmom/internal/domain/entities"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *entities.User) error

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uint) (*entities.User, error)

	// FindByEmail finds a user by email
	FindByEmail(ctx context.Context, email string) (*entities.User, error)

	// FindByUsername finds a user by username
	FindByUsername(ctx context.Context, username string) (*entities.User, error)

	// FindByIDs returns the users whose ids exist; unknown ids are skipped
	FindByIDs(ctx context.Context, ids []uint) ([]*entities.User, error)

	// SearchByUsername returns users whose username contains the query
	// (case-insensitive), capped at limit
	SearchByUsername(ctx context.Context, query string, limit int) ([]*entities.User, error)

	// List returns users in insertion order, capped at limit
	List(ctx context.Context, limit int) ([]*entities.User, error)

	// Count returns the total number of users
	Count(ctx context.Context) (int64, error)
}
