package entities

import "time"

// ActionItem is a task recorded against a meeting. TopicID is nil for
// "general" items that are not tied to a specific topic. AssigneeID is a
// raw user id carried as-is; it is not validated as a foreign key.
type ActionItem struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Task       string    `json:"task" gorm:"type:varchar(200);not null"`
	AssigneeID *uint     `json:"assignee_id,omitempty" gorm:"column:assignee_id"`
	DueDate    time.Time `json:"due_date" gorm:"not null"`
	Completed  bool      `json:"completed" gorm:"default:false;not null"`
	TopicID    *uint     `json:"topic_id,omitempty" gorm:"index"`
	MeetingID  uint      `json:"meeting_id" gorm:"not null;index"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for ActionItem
func (ActionItem) TableName() string {
	return "action_items"
}

// IsGeneral reports whether the item is not attached to any topic.
func (a *ActionItem) IsGeneral() bool {
	return a.TopicID == nil
}
