package meeting

// CreateMeetingRequest represents the request to create a meeting
type CreateMeetingRequest struct {
	Title       string `json:"title" validate:"required,max=100"`
	Description string `json:"description"`
	Date        string `json:"date"`
	AttendeeIDs []uint `json:"attendeeIds"`
}

// CreateTopicRequest represents the request to add a topic
type CreateTopicRequest struct {
	Title string `json:"title" validate:"required,max=100"`
}

// CreateDiscussionPointRequest represents the request to record a
// discussion point under a topic
type CreateDiscussionPointRequest struct {
	Text string `json:"text" validate:"required"`
}

// CreateActionItemRequest represents the request to record an action
// item. TopicID is a numeric id or the literal "general".
type CreateActionItemRequest struct {
	Task       string `json:"task" validate:"required,max=200"`
	AssigneeID string `json:"assigneeId"`
	DueDate    string `json:"dueDate"`
	TopicID    string `json:"topicId"`
}

// UpdateActionItemRequest represents the request to update an action
// item. Only the completed flag is mutable; a nil pointer means the
// field was absent and nothing changes.
type UpdateActionItemRequest struct {
	Completed *bool `json:"completed"`
}
