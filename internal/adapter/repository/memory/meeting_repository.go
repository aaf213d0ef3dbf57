package memory

import (
	"context"

	"github.com/quickmom/quickmom/internal/domain/entities"
	"github.com/quickmom/quickmom/internal/domain/repositories"
)

// MeetingRepository is the in-memory MeetingRepository
type MeetingRepository struct {
	store *Store
}

// NewMeetingRepository creates an in-memory meeting repository
func NewMeetingRepository(store *Store) repositories.MeetingRepository {
	return &MeetingRepository{store: store}
}

func (r *MeetingRepository) Create(ctx context.Context, meeting *entities.Meeting, attendeeIDs []uint) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextMeetingID++
	meeting.ID = r.store.nextMeetingID
	cp := *meeting
	cp.Topics = nil
	cp.ActionItems = nil
	cp.Attendees = nil
	r.store.meetings[meeting.ID] = &cp

	set := make(map[uint]struct{})
	for _, userID := range attendeeIDs {
		set[userID] = struct{}{}
	}
	r.store.attendees[meeting.ID] = set
	return nil
}

func (r *MeetingRepository) FindByID(ctx context.Context, id uint) (*entities.Meeting, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	meeting, ok := r.store.meetings[id]
	if !ok {
		return nil, entities.ErrMeetingNotFound
	}
	return r.assemble(meeting), nil
}

func (r *MeetingRepository) ListForUser(ctx context.Context, userID uint) ([]*entities.Meeting, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var meetings []*entities.Meeting
	for _, id := range sortedKeys(r.store.meetings) {
		meeting := r.store.meetings[id]
		_, attends := r.store.attendees[id][userID]
		if meeting.OwnerID == userID || attends {
			meetings = append(meetings, r.assemble(meeting))
		}
	}
	return meetings, nil
}

func (r *MeetingRepository) AddAttendee(ctx context.Context, meetingID, userID uint) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	set, ok := r.store.attendees[meetingID]
	if !ok {
		set = make(map[uint]struct{})
		r.store.attendees[meetingID] = set
	}
	set[userID] = struct{}{}
	return nil
}

func (r *MeetingRepository) UpdateTranscription(ctx context.Context, meetingID uint, transcription string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	meeting, ok := r.store.meetings[meetingID]
	if !ok {
		return entities.ErrMeetingNotFound
	}
	meeting.Transcription = &transcription
	return nil
}

func (r *MeetingRepository) Delete(ctx context.Context, id uint) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.meetings[id]; !ok {
		return entities.ErrMeetingNotFound
	}
	for topicID, topic := range r.store.topics {
		if topic.MeetingID != id {
			continue
		}
		for pointID, point := range r.store.points {
			if point.TopicID == topicID {
				delete(r.store.points, pointID)
			}
		}
		delete(r.store.topics, topicID)
	}
	for itemID, item := range r.store.items {
		if item.MeetingID == id {
			delete(r.store.items, itemID)
		}
	}
	delete(r.store.attendees, id)
	delete(r.store.meetings, id)
	return nil
}

// assemble builds a detached copy of the aggregate with nested entities
// in insertion order. Callers must hold the store lock.
func (r *MeetingRepository) assemble(meeting *entities.Meeting) *entities.Meeting {
	cp := *meeting

	cp.Attendees = nil
	for userID := range r.store.attendees[meeting.ID] {
		if user, ok := r.store.users[userID]; ok {
			cp.Attendees = append(cp.Attendees, *user)
		}
	}
	sortUsers(cp.Attendees)

	cp.Topics = nil
	for _, topicID := range sortedKeys(r.store.topics) {
		topic := r.store.topics[topicID]
		if topic.MeetingID != meeting.ID {
			continue
		}
		tc := *topic
		tc.DiscussionPoints = nil
		for _, pointID := range sortedKeys(r.store.points) {
			if r.store.points[pointID].TopicID == topicID {
				tc.DiscussionPoints = append(tc.DiscussionPoints, *r.store.points[pointID])
			}
		}
		tc.ActionItems = nil
		for _, itemID := range sortedKeys(r.store.items) {
			item := r.store.items[itemID]
			if item.TopicID != nil && *item.TopicID == topicID {
				tc.ActionItems = append(tc.ActionItems, *item)
			}
		}
		cp.Topics = append(cp.Topics, tc)
	}

	cp.ActionItems = nil
	for _, itemID := range sortedKeys(r.store.items) {
		if r.store.items[itemID].MeetingID == meeting.ID {
			cp.ActionItems = append(cp.ActionItems, *r.store.items[itemID])
		}
	}
	return &cp
}

func sortUsers(users []entities.User) {
	for i := 1; i < len(users); i++ {
		for j := i; j > 0 && users[j-1].ID > users[j].ID; j-- {
			users[j-1], users[j] = users[j], users[j-1]
		}
	}
}
