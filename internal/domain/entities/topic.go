package entities

import "time"

// Topic is an agenda item within a meeting. It owns its discussion
// points and may be referenced by action items of the same meeting.
type Topic struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	Title     string `json:"title" gorm:"type:varchar(100);not null"`
	MeetingID uint   `json:"meeting_id" gorm:"not null;index"`

	DiscussionPoints []DiscussionPoint `json:"discussion_points,omitempty" gorm:"foreignKey:TopicID"`
	ActionItems      []ActionItem      `json:"action_items,omitempty" gorm:"foreignKey:TopicID"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for Topic
func (Topic) TableName() string {
	return "topics"
}
