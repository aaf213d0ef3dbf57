package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/quickmom/quickmom/internal/domain/entities"
	"github.com/quickmom/quickmom/internal/domain/repositories"
)

// meetingRepository implements the MeetingRepository interface
type meetingRepository struct {
	db *gorm.DB
}

// NewMeetingRepository creates a new meeting repository
func NewMeetingRepository(db *gorm.DB) repositories.MeetingRepository {
	return &meetingRepository{db: db}
}

// withRelations loads the full aggregate: attendees, topics with their
// discussion points and action items, and the meeting-level action items.
// Children are ordered by id so responses follow insertion order.
func withRelations(db *gorm.DB) *gorm.DB {
	byID := func(tx *gorm.DB) *gorm.DB { return tx.Order("id ASC") }
	return db.
		Preload("Attendees", byID).
		Preload("Topics", byID).
		Preload("Topics.DiscussionPoints", byID).
		Preload("Topics.ActionItems", byID).
		Preload("ActionItems", byID)
}

// Create persists the meeting and its initial attendee set in one
// transaction
func (r *meetingRepository) Create(ctx context.Context, meeting *entities.Meeting, attendeeIDs []uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Omit associations: attendee membership goes through the
		// explicit join-table upsert below.
		if err := tx.Omit(clause.Associations).Create(meeting).Error; err != nil {
			return err
		}
		for _, userID := range attendeeIDs {
			row := entities.MeetingAttendee{MeetingID: meeting.ID, UserID: userID}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to create meeting: %w", err)
	}
	return nil
}

// FindByID loads a meeting with all nested relations
func (r *meetingRepository) FindByID(ctx context.Context, id uint) (*entities.Meeting, error) {
	var meeting entities.Meeting
	if err := withRelations(r.db.WithContext(ctx)).
		Where("id = ?", id).
		First(&meeting).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, entities.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("failed to find meeting by ID: %w", err)
	}
	return &meeting, nil
}

// ListForUser returns meetings the user owns or attends, in insertion
// order, with all nested relations
func (r *meetingRepository) ListForUser(ctx context.Context, userID uint) ([]*entities.Meeting, error) {
	attending := r.db.Model(&entities.MeetingAttendee{}).
		Select("meeting_id").
		Where("user_id = ?", userID)

	var meetings []*entities.Meeting
	if err := withRelations(r.db.WithContext(ctx)).
		Where("owner_id = ? OR id IN (?)", userID, attending).
		Order("id ASC").
		Find(&meetings).Error; err != nil {
		return nil, fmt.Errorf("failed to list meetings for user: %w", err)
	}
	return meetings, nil
}

// AddAttendee grants a user attendee access; granting twice is a no-op
func (r *meetingRepository) AddAttendee(ctx context.Context, meetingID, userID uint) error {
	row := entities.MeetingAttendee{MeetingID: meetingID, UserID: userID}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&row).Error; err != nil {
		return fmt.Errorf("failed to add attendee: %w", err)
	}
	return nil
}

// UpdateTranscription replaces the meeting transcription text
func (r *meetingRepository) UpdateTranscription(ctx context.Context, meetingID uint, transcription string) error {
	result := r.db.WithContext(ctx).
		Model(&entities.Meeting{}).
		Where("id = ?", meetingID).
		Update("transcription", transcription)
	if result.Error != nil {
		return fmt.Errorf("failed to update transcription: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return entities.ErrMeetingNotFound
	}
	return nil
}

// Delete removes the meeting and cascades over its nested entities and
// attendee rows in one transaction
func (r *meetingRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		topicIDs := tx.Model(&entities.Topic{}).
			Select("id").
			Where("meeting_id = ?", id)

		if err := tx.Where("topic_id IN (?)", topicIDs).
			Delete(&entities.DiscussionPoint{}).Error; err != nil {
			return err
		}
		if err := tx.Where("meeting_id = ?", id).
			Delete(&entities.ActionItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("meeting_id = ?", id).
			Delete(&entities.Topic{}).Error; err != nil {
			return err
		}
		if err := tx.Where("meeting_id = ?", id).
			Delete(&entities.MeetingAttendee{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&entities.Meeting{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return entities.ErrMeetingNotFound
		}
		return nil
	})
	if err != nil {
		if err == entities.ErrMeetingNotFound {
			return err
		}
		return fmt.Errorf("failed to delete meeting: %w", err)
	}
	return nil
}
