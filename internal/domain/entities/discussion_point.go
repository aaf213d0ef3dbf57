package entities

import "time"

// DiscussionPoint is a free-text note recorded under a topic.
type DiscussionPoint struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	Text    string `json:"text" gorm:"type:text;not null"`
	TopicID uint   `json:"topic_id" gorm:"not null;index"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for DiscussionPoint
func (DiscussionPoint) TableName() string {
	return "discussion_points"
}
