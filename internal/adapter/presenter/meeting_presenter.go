package presenter

import (
	"strconv"
	"time"

	meetingDTO "github.com/quickmom/quickmom/internal/adapter/dto/meeting"
	"github.com/quickmom/quickmom/internal/domain/entities"
)

// ToMeetingResponse converts a Meeting aggregate to its response DTO.
// Nested slices always encode as arrays, never null.
func ToMeetingResponse(m *entities.Meeting) *meetingDTO.MeetingResponse {
	if m == nil {
		return nil
	}

	topics := make([]*meetingDTO.TopicResponse, 0, len(m.Topics))
	for i := range m.Topics {
		topics = append(topics, ToTopicResponse(&m.Topics[i]))
	}

	items := make([]*meetingDTO.ActionItemResponse, 0, len(m.ActionItems))
	for i := range m.ActionItems {
		items = append(items, ToActionItemResponse(&m.ActionItems[i]))
	}

	attendees := make([]*entities.User, 0, len(m.Attendees))
	for i := range m.Attendees {
		attendees = append(attendees, &m.Attendees[i])
	}

	return &meetingDTO.MeetingResponse{
		ID:            m.ID,
		Title:         m.Title,
		Description:   m.Description,
		Date:          m.Date.Format(time.RFC3339),
		OwnerID:       m.OwnerID,
		Topics:        topics,
		Attendees:     ToUserResponses(attendees),
		ActionItems:   items,
		Transcription: m.Transcription,
	}
}

// ToMeetingResponses converts a slice of meetings
func ToMeetingResponses(meetings []*entities.Meeting) []*meetingDTO.MeetingResponse {
	out := make([]*meetingDTO.MeetingResponse, 0, len(meetings))
	for _, m := range meetings {
		out = append(out, ToMeetingResponse(m))
	}
	return out
}

// ToTopicResponse converts a Topic entity to its response DTO
func ToTopicResponse(t *entities.Topic) *meetingDTO.TopicResponse {
	if t == nil {
		return nil
	}

	points := make([]*meetingDTO.DiscussionPointResponse, 0, len(t.DiscussionPoints))
	for i := range t.DiscussionPoints {
		points = append(points, ToDiscussionPointResponse(&t.DiscussionPoints[i]))
	}

	items := make([]*meetingDTO.ActionItemResponse, 0, len(t.ActionItems))
	for i := range t.ActionItems {
		items = append(items, ToActionItemResponse(&t.ActionItems[i]))
	}

	return &meetingDTO.TopicResponse{
		ID:               t.ID,
		Title:            t.Title,
		MeetingID:        t.MeetingID,
		DiscussionPoints: points,
		ActionItems:      items,
	}
}

// ToDiscussionPointResponse converts a DiscussionPoint entity
func ToDiscussionPointResponse(p *entities.DiscussionPoint) *meetingDTO.DiscussionPointResponse {
	if p == nil {
		return nil
	}
	return &meetingDTO.DiscussionPointResponse{
		ID:      p.ID,
		Text:    p.Text,
		TopicID: p.TopicID,
	}
}

// ToActionItemResponse converts an ActionItem entity. The assignee id
// goes out as a string to match what clients send back.
func ToActionItemResponse(a *entities.ActionItem) *meetingDTO.ActionItemResponse {
	if a == nil {
		return nil
	}

	var assignee *string
	if a.AssigneeID != nil {
		s := strconv.FormatUint(uint64(*a.AssigneeID), 10)
		assignee = &s
	}

	var dueDate *string
	if !a.DueDate.IsZero() {
		s := a.DueDate.Format(time.RFC3339)
		dueDate = &s
	}

	return &meetingDTO.ActionItemResponse{
		ID:         a.ID,
		Task:       a.Task,
		AssigneeID: assignee,
		DueDate:    dueDate,
		Completed:  a.Completed,
		TopicID:    a.TopicID,
	}
}
