// Package memory provides in-memory implementations of the repository
// interfaces. They back the service and handler tests, which exercise
// the same contracts the GORM repositories implement against Postgres.
package memory

import (
	"sort"
	"sync"

	"github.com/quickmom/quickmom/internal/domain/entities"
)

// Store holds all tables behind one mutex, mirroring the
// single-writer-per-request model of the real database.
type Store struct {
	mu sync.Mutex

	users     map[uint]*entities.User
	sessions  map[string]*entities.Session
	meetings  map[uint]*entities.Meeting
	attendees map[uint]map[uint]struct{} // meeting id -> set of user ids
	topics    map[uint]*entities.Topic
	points    map[uint]*entities.DiscussionPoint
	items     map[uint]*entities.ActionItem

	nextUserID    uint
	nextSessionID uint
	nextMeetingID uint
	nextTopicID   uint
	nextPointID   uint
	nextItemID    uint
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		users:     make(map[uint]*entities.User),
		sessions:  make(map[string]*entities.Session),
		meetings:  make(map[uint]*entities.Meeting),
		attendees: make(map[uint]map[uint]struct{}),
		topics:    make(map[uint]*entities.Topic),
		points:    make(map[uint]*entities.DiscussionPoint),
		items:     make(map[uint]*entities.ActionItem),
	}
}

func sortedKeys[V any](m map[uint]V) []uint {
	keys := make([]uint, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
