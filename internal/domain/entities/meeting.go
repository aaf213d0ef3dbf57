package entities

import (
	"time"
)

// Meeting is the aggregate root for topics, discussion points and action
// items. Access control operates at meeting granularity: the owner and
// every attendee may read and mutate the whole aggregate.
type Meeting struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	Title         string     `json:"title" gorm:"type:varchar(100);not null"`
	Description   string     `json:"description" gorm:"type:text"`
	Date          time.Time  `json:"date" gorm:"not null"`
	OwnerID       uint       `json:"owner_id" gorm:"not null;index"`
	Transcription *string    `json:"transcription,omitempty" gorm:"type:text"`

	Topics      []Topic      `json:"topics,omitempty" gorm:"foreignKey:MeetingID"`
	ActionItems []ActionItem `json:"action_items,omitempty" gorm:"foreignKey:MeetingID"`
	Attendees   []User       `json:"attendees,omitempty" gorm:"many2many:meeting_attendees"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for Meeting
func (Meeting) TableName() string {
	return "meetings"
}

// MeetingAttendee is the explicit join record granting a user attendee
// access to a meeting. Membership is idempotent: the composite primary
// key makes a second grant a no-op.
type MeetingAttendee struct {
	MeetingID uint `gorm:"primaryKey;autoIncrement:false"`
	UserID    uint `gorm:"primaryKey;autoIncrement:false"`
}

// TableName specifies the table name for MeetingAttendee
func (MeetingAttendee) TableName() string {
	return "meeting_attendees"
}

// CanAccess reports whether the user may read or mutate this meeting and
// its nested entities: true for the owner and for any attendee.
func (m *Meeting) CanAccess(userID uint) bool {
	if m.OwnerID == userID {
		return true
	}
	for _, a := range m.Attendees {
		if a.ID == userID {
			return true
		}
	}
	return false
}

// IsOwner reports whether the user owns this meeting.
func (m *Meeting) IsOwner(userID uint) bool {
	return m.OwnerID == userID
}
