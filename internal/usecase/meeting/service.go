package meeting

import (
	"context"
	"errors"
	"strconv"
	"time"

	apperrors "github.com/quickmom/quickmom/errors"
	"github.com/quickmom/quickmom/internal/domain/entities"
	"github.com/quickmom/quickmom/internal/domain/repositories"
)

// topicIDGeneral is the sentinel clients send for action items that are
// not attached to any topic.
const topicIDGeneral = "general"

// Service handles the meeting aggregate: meetings with their topics,
// discussion points and action items. Every operation takes the
// authenticated principal and applies the owner-or-attendee policy
// before touching the aggregate.
type Service struct {
	meetingRepo repositories.MeetingRepository
	topicRepo   repositories.TopicRepository
	pointRepo   repositories.DiscussionPointRepository
	itemRepo    repositories.ActionItemRepository
	userRepo    repositories.UserRepository
}

// NewService creates a new meeting service
func NewService(
	meetingRepo repositories.MeetingRepository,
	topicRepo repositories.TopicRepository,
	pointRepo repositories.DiscussionPointRepository,
	itemRepo repositories.ActionItemRepository,
	userRepo repositories.UserRepository,
) *Service {
	return &Service{
		meetingRepo: meetingRepo,
		topicRepo:   topicRepo,
		pointRepo:   pointRepo,
		itemRepo:    itemRepo,
		userRepo:    userRepo,
	}
}

// List returns the meetings the user owns or attends.
func (s *Service) List(ctx context.Context, user *entities.User) ([]*entities.Meeting, error) {
	meetings, err := s.meetingRepo.ListForUser(ctx, user.ID)
	if err != nil {
		return nil, apperrors.ErrDBQueryFailed(err)
	}
	return meetings, nil
}

// CreateInput represents input for creating a meeting
type CreateInput struct {
	Title       string
	Description string
	Date        string // ISO-8601; empty or unparsable falls back to now
	AttendeeIDs []uint
}

// Create creates a meeting owned by the user. Attendee ids that do not
// resolve to existing users are silently dropped; the owner is not
// added as an attendee.
func (s *Service) Create(ctx context.Context, owner *entities.User, input CreateInput) (*entities.Meeting, error) {
	attendees, err := s.userRepo.FindByIDs(ctx, input.AttendeeIDs)
	if err != nil {
		return nil, apperrors.ErrDBQueryFailed(err)
	}
	attendeeIDs := make([]uint, 0, len(attendees))
	for _, a := range attendees {
		attendeeIDs = append(attendeeIDs, a.ID)
	}

	meeting := &entities.Meeting{
		Title:       input.Title,
		Description: input.Description,
		Date:        parseDateOrNow(input.Date),
		OwnerID:     owner.ID,
	}
	if err := s.meetingRepo.Create(ctx, meeting, attendeeIDs); err != nil {
		return nil, apperrors.ErrDBQueryFailed(err)
	}

	return s.reload(ctx, meeting.ID)
}

// Get returns the meeting with its nested entities, gated by the
// access policy.
func (s *Service) Get(ctx context.Context, user *entities.User, meetingID uint) (*entities.Meeting, error) {
	return s.authorize(ctx, user, meetingID)
}

// Delete removes the meeting and everything it owns. Only the owner may
// delete; attendees get ForbiddenError like any other non-owner.
func (s *Service) Delete(ctx context.Context, user *entities.User, meetingID uint) error {
	meeting, err := s.authorize(ctx, user, meetingID)
	if err != nil {
		return err
	}
	if !meeting.IsOwner(user.ID) {
		return apperrors.ErrForbidden()
	}
	if err := s.meetingRepo.Delete(ctx, meetingID); err != nil {
		return apperrors.ErrDBQueryFailed(err)
	}
	return nil
}

// CreateTopic appends a topic to the meeting.
func (s *Service) CreateTopic(ctx context.Context, user *entities.User, meetingID uint, title string) (*entities.Topic, error) {
	meeting, err := s.authorize(ctx, user, meetingID)
	if err != nil {
		return nil, err
	}

	topic := &entities.Topic{
		Title:     title,
		MeetingID: meeting.ID,
	}
	if err := s.topicRepo.Create(ctx, topic); err != nil {
		return nil, apperrors.ErrDBQueryFailed(err)
	}
	return topic, nil
}

// DeleteTopic removes the topic with its discussion points and action
// items. Unlike point creation, deletion verifies the topic belongs to
// the meeting in the URL.
func (s *Service) DeleteTopic(ctx context.Context, user *entities.User, meetingID, topicID uint) error {
	meeting, err := s.authorize(ctx, user, meetingID)
	if err != nil {
		return err
	}

	topic, err := s.topicRepo.FindByID(ctx, topicID)
	if err != nil {
		if errors.Is(err, entities.ErrTopicNotFound) {
			return apperrors.ErrNotFound("Topic")
		}
		return apperrors.ErrDBQueryFailed(err)
	}
	if topic.MeetingID != meeting.ID {
		return apperrors.ErrNotFound("Topic")
	}

	if err := s.topicRepo.Delete(ctx, topicID); err != nil {
		return apperrors.ErrDBQueryFailed(err)
	}
	return nil
}

// CreateDiscussionPoint records a point under a topic. The policy is
// applied to the meeting from the URL; the topic is checked for
// existence only, not for membership in that meeting.
func (s *Service) CreateDiscussionPoint(ctx context.Context, user *entities.User, meetingID, topicID uint, text string) (*entities.DiscussionPoint, error) {
	if _, err := s.authorize(ctx, user, meetingID); err != nil {
		return nil, err
	}

	if _, err := s.topicRepo.FindByID(ctx, topicID); err != nil {
		if errors.Is(err, entities.ErrTopicNotFound) {
			return nil, apperrors.ErrNotFound("Topic")
		}
		return nil, apperrors.ErrDBQueryFailed(err)
	}

	point := &entities.DiscussionPoint{
		Text:    text,
		TopicID: topicID,
	}
	if err := s.pointRepo.Create(ctx, point); err != nil {
		return nil, apperrors.ErrDBQueryFailed(err)
	}
	return point, nil
}

// CreateActionItemInput represents input for creating an action item.
// AssigneeID and TopicID arrive as strings from the wire: TopicID is
// either a numeric id or the "general" sentinel, AssigneeID is a raw
// user id that is carried without foreign-key validation.
type CreateActionItemInput struct {
	Task       string
	AssigneeID string
	DueDate    string // ISO-8601; empty or unparsable falls back to now
	TopicID    string
}

// CreateActionItem records an action item against the meeting.
func (s *Service) CreateActionItem(ctx context.Context, user *entities.User, meetingID uint, input CreateActionItemInput) (*entities.ActionItem, error) {
	meeting, err := s.authorize(ctx, user, meetingID)
	if err != nil {
		return nil, err
	}

	topicID, err := parseTopicID(input.TopicID)
	if err != nil {
		return nil, err
	}
	assigneeID, err := parseAssigneeID(input.AssigneeID)
	if err != nil {
		return nil, err
	}

	item := &entities.ActionItem{
		Task:       input.Task,
		AssigneeID: assigneeID,
		DueDate:    parseDateOrNow(input.DueDate),
		TopicID:    topicID,
		MeetingID:  meeting.ID,
	}
	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, apperrors.ErrDBQueryFailed(err)
	}
	return item, nil
}

// UpdateActionItem toggles the completed flag. Every other field is
// immutable through this operation.
func (s *Service) UpdateActionItem(ctx context.Context, user *entities.User, itemID uint, completed *bool) (*entities.ActionItem, error) {
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, entities.ErrActionItemNotFound) {
			return nil, apperrors.ErrNotFound("Action item")
		}
		return nil, apperrors.ErrDBQueryFailed(err)
	}

	if _, err := s.authorize(ctx, user, item.MeetingID); err != nil {
		return nil, err
	}

	if completed != nil && *completed != item.Completed {
		item.Completed = *completed
		if err := s.itemRepo.Update(ctx, item); err != nil {
			return nil, apperrors.ErrDBQueryFailed(err)
		}
	}
	return item, nil
}

// Transcribe replaces the meeting transcription with the simulated
// transcript and returns it.
func (s *Service) Transcribe(ctx context.Context, user *entities.User, meetingID uint) (string, error) {
	meeting, err := s.authorize(ctx, user, meetingID)
	if err != nil {
		return "", err
	}

	transcript := simulatedTranscript(time.Now().UTC())
	if err := s.meetingRepo.UpdateTranscription(ctx, meeting.ID, transcript); err != nil {
		return "", apperrors.ErrDBQueryFailed(err)
	}
	return transcript, nil
}

// authorize loads the meeting and applies the access policy. A missing
// meeting is NotFound; an existing meeting the user may not touch is
// Forbidden. The two are deliberately distinct.
func (s *Service) authorize(ctx context.Context, user *entities.User, meetingID uint) (*entities.Meeting, error) {
	meeting, err := s.reload(ctx, meetingID)
	if err != nil {
		return nil, err
	}
	if !meeting.CanAccess(user.ID) {
		return nil, apperrors.ErrForbidden()
	}
	return meeting, nil
}

func (s *Service) reload(ctx context.Context, meetingID uint) (*entities.Meeting, error) {
	meeting, err := s.meetingRepo.FindByID(ctx, meetingID)
	if err != nil {
		if errors.Is(err, entities.ErrMeetingNotFound) {
			return nil, apperrors.ErrNotFound("Meeting")
		}
		return nil, apperrors.ErrDBQueryFailed(err)
	}
	return meeting, nil
}

func parseTopicID(value string) (*uint, error) {
	if value == "" || value == topicIDGeneral {
		return nil, nil
	}
	id, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return nil, apperrors.ErrValidation("topicId must be a numeric id or \"general\"")
	}
	topicID := uint(id)
	return &topicID, nil
}

func parseAssigneeID(value string) (*uint, error) {
	if value == "" {
		return nil, nil
	}
	id, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return nil, apperrors.ErrValidation("assigneeId must be a numeric id")
	}
	assigneeID := uint(id)
	return &assigneeID, nil
}
