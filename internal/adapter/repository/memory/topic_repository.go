package memory

import (
	"context"

	"github.com/quickmom/quickmom/internal/domain/entities"
	"github.com/quickmom/quickmom/internal/domain/repositories"
)

// TopicRepository is the in-memory TopicRepository
type TopicRepository struct {
	store *Store
}

// NewTopicRepository creates an in-memory topic repository
func NewTopicRepository(store *Store) repositories.TopicRepository {
	return &TopicRepository{store: store}
}

func (r *TopicRepository) Create(ctx context.Context, topic *entities.Topic) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextTopicID++
	topic.ID = r.store.nextTopicID
	cp := *topic
	cp.DiscussionPoints = nil
	cp.ActionItems = nil
	r.store.topics[topic.ID] = &cp
	return nil
}

func (r *TopicRepository) FindByID(ctx context.Context, id uint) (*entities.Topic, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	topic, ok := r.store.topics[id]
	if !ok {
		return nil, entities.ErrTopicNotFound
	}
	cp := *topic
	return &cp, nil
}

func (r *TopicRepository) Delete(ctx context.Context, id uint) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.topics[id]; !ok {
		return entities.ErrTopicNotFound
	}
	for pointID, point := range r.store.points {
		if point.TopicID == id {
			delete(r.store.points, pointID)
		}
	}
	for itemID, item := range r.store.items {
		if item.TopicID != nil && *item.TopicID == id {
			delete(r.store.items, itemID)
		}
	}
	delete(r.store.topics, id)
	return nil
}
