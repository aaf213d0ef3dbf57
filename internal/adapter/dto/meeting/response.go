package meeting

import authDTO "github.com/quickmom/quickmom/internal/adapter/dto/auth"

// MeetingResponse represents a meeting with its nested entities
type MeetingResponse struct {
	ID            uint                    `json:"id"`
	Title         string                  `json:"title"`
	Description   string                  `json:"description"`
	Date          string                  `json:"date"`
	OwnerID       uint                    `json:"owner_id"`
	Topics        []*TopicResponse        `json:"topics"`
	Attendees     []*authDTO.UserResponse `json:"attendees"`
	ActionItems   []*ActionItemResponse   `json:"actionItems"`
	Transcription *string                 `json:"transcription"`
}

// TopicResponse represents a topic with its nested entities
type TopicResponse struct {
	ID               uint                       `json:"id"`
	Title            string                     `json:"title"`
	MeetingID        uint                       `json:"meeting_id"`
	DiscussionPoints []*DiscussionPointResponse `json:"discussionPoints"`
	ActionItems      []*ActionItemResponse      `json:"actionItems"`
}

// DiscussionPointResponse represents a discussion point
type DiscussionPointResponse struct {
	ID      uint   `json:"id"`
	Text    string `json:"text"`
	TopicID uint   `json:"topic_id"`
}

// ActionItemResponse represents an action item. AssigneeID is the
// stringified user id, null when unassigned.
type ActionItemResponse struct {
	ID         uint    `json:"id"`
	Task       string  `json:"task"`
	AssigneeID *string `json:"assigneeId"`
	DueDate    *string `json:"dueDate"`
	Completed  bool    `json:"completed"`
	TopicID    *uint   `json:"topic_id"`
}

// TranscriptionResponse carries the generated transcript
type TranscriptionResponse struct {
	Transcription string `json:"transcription"`
}
