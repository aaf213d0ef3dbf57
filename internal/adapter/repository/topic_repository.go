package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/quickmom/quickmom/internal/domain/entities"
	"github.com/quickmom/quickmom/internal/domain/repositories"
)

// topicRepository implements the TopicRepository interface
type topicRepository struct {
	db *gorm.DB
}

// NewTopicRepository creates a new topic repository
func NewTopicRepository(db *gorm.DB) repositories.TopicRepository {
	return &topicRepository{db: db}
}

// Create creates a new topic
func (r *topicRepository) Create(ctx context.Context, topic *entities.Topic) error {
	if err := r.db.WithContext(ctx).Create(topic).Error; err != nil {
		return fmt.Errorf("failed to create topic: %w", err)
	}
	return nil
}

// FindByID finds a topic by ID
func (r *topicRepository) FindByID(ctx context.Context, id uint) (*entities.Topic, error) {
	var topic entities.Topic
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&topic).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, entities.ErrTopicNotFound
		}
		return nil, fmt.Errorf("failed to find topic by ID: %w", err)
	}
	return &topic, nil
}

// Delete removes the topic and cascades over its discussion points and
// action items in one transaction
func (r *topicRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("topic_id = ?", id).
			Delete(&entities.DiscussionPoint{}).Error; err != nil {
			return err
		}
		if err := tx.Where("topic_id = ?", id).
			Delete(&entities.ActionItem{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&entities.Topic{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return entities.ErrTopicNotFound
		}
		return nil
	})
	if err != nil {
		if err == entities.ErrTopicNotFound {
			return err
		}
		return fmt.Errorf("failed to delete topic: %w", err)
	}
	return nil
}
