package repositories

import (
	"context"

	"github.com/quickmom/quickmom/internal/domain/entities"
)

// MeetingRepository defines the interface for meeting aggregate data
// access. Reads return the meeting with its attendees, topics (with
// discussion points and action items) and action items loaded.
type MeetingRepository interface {
	// Create persists the meeting and its initial attendee set in one
	// transaction
	Create(ctx context.Context, meeting *entities.Meeting, attendeeIDs []uint) error

	// FindByID loads a meeting with all nested relations
	FindByID(ctx context.Context, id uint) (*entities.Meeting, error)

	// ListForUser returns meetings the user owns or attends, in
	// insertion order, with all nested relations
	ListForUser(ctx context.Context, userID uint) ([]*entities.Meeting, error)

	// AddAttendee grants a user attendee access; granting twice is a
	// no-op (join-table upsert)
	AddAttendee(ctx context.Context, meetingID, userID uint) error

	// UpdateTranscription replaces the meeting transcription text
	UpdateTranscription(ctx context.Context, meetingID uint, transcription string) error

	// Delete removes the meeting and cascades over its discussion
	// points, topics, action items and attendee rows in one transaction
	Delete(ctx context.Context, id uint) error
}
