package repositories

import (
	"context"

	"github.com/quickmom/quickmom/internal/domain/entities"
)

// TopicRepository defines the interface for topic data access
type TopicRepository interface {
	// Create creates a new topic
	Create(ctx context.Context, topic *entities.Topic) error

	// FindByID finds a topic by ID
	FindByID(ctx context.Context, id uint) (*entities.Topic, error)

	// Delete removes the topic and cascades over its discussion points
	// and action items in one transaction
	Delete(ctx context.Context, id uint) error
}
