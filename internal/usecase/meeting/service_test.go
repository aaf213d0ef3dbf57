package meeting

import (
	"context"
	stdErrors "errors"
	"net/http"
	"strconv"
	"strings"
	"testing"
	"time"

	apperrors "github.com/quickmom/quickmom/errors"
	"github.com/quickmom/quickmom/internal/adapter/repository/memory"
	"github.com/quickmom/quickmom/internal/domain/entities"
	"github.com/quickmom/quickmom/internal/domain/repositories"
)

type fixture struct {
	svc      *Service
	userRepo repositories.UserRepository
	owner    *entities.User
	attendee *entities.User
	stranger *entities.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	userRepo := memory.NewUserRepository(store)
	svc := NewService(
		memory.NewMeetingRepository(store),
		memory.NewTopicRepository(store),
		memory.NewDiscussionPointRepository(store),
		memory.NewActionItemRepository(store),
		userRepo,
	)

	f := &fixture{svc: svc, userRepo: userRepo}
	ctx := context.Background()
	f.owner = entities.NewUser("alice", "alice@example.com", "hash")
	f.attendee = entities.NewUser("bob", "bob@example.com", "hash")
	f.stranger = entities.NewUser("charlie", "charlie@example.com", "hash")
	for _, u := range []*entities.User{f.owner, f.attendee, f.stranger} {
		if err := userRepo.Create(ctx, u); err != nil {
			t.Fatalf("seed user: %v", err)
		}
	}
	return f
}

func (f *fixture) createMeeting(t *testing.T) *entities.Meeting {
	t.Helper()
	m, err := f.svc.Create(context.Background(), f.owner, CreateInput{
		Title:       "Sprint planning",
		Description: "Plan the sprint",
		Date:        "2026-08-27T10:00:00Z",
		AttendeeIDs: []uint{f.attendee.ID},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	return m
}

func wantHTTPCode(t *testing.T, err error, code int) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected an error with HTTP %d", code)
	}
	var appErr apperrors.AppError
	if !stdErrors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %T: %v", err, err)
	}
	if appErr.HTTPCode != code {
		t.Fatalf("HTTPCode = %d, want %d (err: %v)", appErr.HTTPCode, code, err)
	}
}

func TestCreateMeetingDropsUnknownAttendees(t *testing.T) {
	f := newFixture(t)

	m, err := f.svc.Create(context.Background(), f.owner, CreateInput{
		Title:       "Standup",
		AttendeeIDs: []uint{f.attendee.ID, 999, f.attendee.ID},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if len(m.Attendees) != 1 {
		t.Fatalf("got %d attendees, want 1", len(m.Attendees))
	}
	if m.Attendees[0].ID != f.attendee.ID {
		t.Fatalf("attendee id = %d, want %d", m.Attendees[0].ID, f.attendee.ID)
	}
	if m.OwnerID != f.owner.ID {
		t.Fatalf("owner id = %d, want %d", m.OwnerID, f.owner.ID)
	}
}

func TestGetMeetingPolicy(t *testing.T) {
	f := newFixture(t)
	m := f.createMeeting(t)
	ctx := context.Background()

	if _, err := f.svc.Get(ctx, f.owner, m.ID); err != nil {
		t.Fatalf("owner denied: %v", err)
	}
	if _, err := f.svc.Get(ctx, f.attendee, m.ID); err != nil {
		t.Fatalf("attendee denied: %v", err)
	}

	_, err := f.svc.Get(ctx, f.stranger, m.ID)
	wantHTTPCode(t, err, http.StatusForbidden)

	// Missing meetings are not found, even for strangers.
	_, err = f.svc.Get(ctx, f.stranger, 999)
	wantHTTPCode(t, err, http.StatusNotFound)
}

func TestListReturnsOwnedAndAttendedMeetings(t *testing.T) {
	f := newFixture(t)
	m := f.createMeeting(t)
	ctx := context.Background()

	for _, u := range []*entities.User{f.owner, f.attendee} {
		meetings, err := f.svc.List(ctx, u)
		if err != nil {
			t.Fatalf("List failed for %s: %v", u.Username, err)
		}
		if len(meetings) != 1 || meetings[0].ID != m.ID {
			t.Fatalf("%s sees %d meetings, want the one created", u.Username, len(meetings))
		}
	}

	meetings, err := f.svc.List(ctx, f.stranger)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(meetings) != 0 {
		t.Fatalf("stranger sees %d meetings, want 0", len(meetings))
	}
}

func TestCreateTopicAndDiscussionPoint(t *testing.T) {
	f := newFixture(t)
	m := f.createMeeting(t)
	ctx := context.Background()

	topic, err := f.svc.CreateTopic(ctx, f.attendee, m.ID, "Timeline")
	if err != nil {
		t.Fatalf("CreateTopic failed: %v", err)
	}
	if topic.MeetingID != m.ID {
		t.Fatalf("topic meeting id = %d, want %d", topic.MeetingID, m.ID)
	}

	point, err := f.svc.CreateDiscussionPoint(ctx, f.owner, m.ID, topic.ID, "Deadline slips")
	if err != nil {
		t.Fatalf("CreateDiscussionPoint failed: %v", err)
	}
	if point.TopicID != topic.ID {
		t.Fatalf("point topic id = %d, want %d", point.TopicID, topic.ID)
	}

	// Unknown topic is a 404 even when the meeting checks out.
	_, err = f.svc.CreateDiscussionPoint(ctx, f.owner, m.ID, 999, "text")
	wantHTTPCode(t, err, http.StatusNotFound)

	_, err = f.svc.CreateTopic(ctx, f.stranger, m.ID, "Sneaky")
	wantHTTPCode(t, err, http.StatusForbidden)
}

func TestDeleteTopicCascadesAndChecksMembership(t *testing.T) {
	f := newFixture(t)
	m := f.createMeeting(t)
	ctx := context.Background()

	topic, err := f.svc.CreateTopic(ctx, f.owner, m.ID, "Timeline")
	if err != nil {
		t.Fatalf("CreateTopic failed: %v", err)
	}
	if _, err := f.svc.CreateDiscussionPoint(ctx, f.owner, m.ID, topic.ID, "text"); err != nil {
		t.Fatalf("CreateDiscussionPoint failed: %v", err)
	}

	// A topic from another meeting is invisible through this URL.
	other, err := f.svc.Create(ctx, f.owner, CreateInput{Title: "Other"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	err = f.svc.DeleteTopic(ctx, f.owner, other.ID, topic.ID)
	wantHTTPCode(t, err, http.StatusNotFound)

	err = f.svc.DeleteTopic(ctx, f.stranger, m.ID, topic.ID)
	wantHTTPCode(t, err, http.StatusForbidden)

	if err := f.svc.DeleteTopic(ctx, f.attendee, m.ID, topic.ID); err != nil {
		t.Fatalf("DeleteTopic failed: %v", err)
	}

	reloaded, err := f.svc.Get(ctx, f.owner, m.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if len(reloaded.Topics) != 0 {
		t.Fatalf("meeting still has %d topics", len(reloaded.Topics))
	}

	err = f.svc.DeleteTopic(ctx, f.owner, m.ID, topic.ID)
	wantHTTPCode(t, err, http.StatusNotFound)
}

func TestCreateActionItemTopicHandling(t *testing.T) {
	f := newFixture(t)
	m := f.createMeeting(t)
	ctx := context.Background()

	topic, err := f.svc.CreateTopic(ctx, f.owner, m.ID, "Timeline")
	if err != nil {
		t.Fatalf("CreateTopic failed: %v", err)
	}

	general, err := f.svc.CreateActionItem(ctx, f.owner, m.ID, CreateActionItemInput{
		Task:    "Send notes",
		TopicID: "general",
	})
	if err != nil {
		t.Fatalf("CreateActionItem failed: %v", err)
	}
	if general.TopicID != nil {
		t.Fatalf("general item has topic id %v, want nil", *general.TopicID)
	}
	if !general.IsGeneral() {
		t.Fatal("item should be general")
	}

	scoped, err := f.svc.CreateActionItem(ctx, f.owner, m.ID, CreateActionItemInput{
		Task:       "Update chart",
		AssigneeID: "42",
		TopicID:    strconv.FormatUint(uint64(topic.ID), 10),
	})
	if err != nil {
		t.Fatalf("CreateActionItem failed: %v", err)
	}
	if scoped.TopicID == nil || *scoped.TopicID != topic.ID {
		t.Fatalf("item topic id = %v, want %d", scoped.TopicID, topic.ID)
	}
	if scoped.AssigneeID == nil || *scoped.AssigneeID != 42 {
		t.Fatalf("assignee id = %v, want 42", scoped.AssigneeID)
	}

	_, err = f.svc.CreateActionItem(ctx, f.owner, m.ID, CreateActionItemInput{
		Task:    "Broken",
		TopicID: "not-a-number",
	})
	wantHTTPCode(t, err, http.StatusBadRequest)

	_, err = f.svc.CreateActionItem(ctx, f.owner, m.ID, CreateActionItemInput{
		Task:       "Broken",
		AssigneeID: "bob",
	})
	wantHTTPCode(t, err, http.StatusBadRequest)
}

func TestCreateActionItemFallsBackToNowOnBadDueDate(t *testing.T) {
	f := newFixture(t)
	m := f.createMeeting(t)

	before := time.Now().UTC().Add(-time.Second)
	item, err := f.svc.CreateActionItem(context.Background(), f.owner, m.ID, CreateActionItemInput{
		Task:    "Follow up",
		DueDate: "next tuesday",
	})
	if err != nil {
		t.Fatalf("CreateActionItem failed: %v", err)
	}
	after := time.Now().UTC().Add(time.Second)

	if item.DueDate.Before(before) || item.DueDate.After(after) {
		t.Fatalf("due date %v not defaulted to now", item.DueDate)
	}
}

func TestUpdateActionItemTogglesOnlyCompleted(t *testing.T) {
	f := newFixture(t)
	m := f.createMeeting(t)
	ctx := context.Background()

	item, err := f.svc.CreateActionItem(ctx, f.owner, m.ID, CreateActionItemInput{Task: "Send notes"})
	if err != nil {
		t.Fatalf("CreateActionItem failed: %v", err)
	}
	if item.Completed {
		t.Fatal("new item should not be completed")
	}

	completed := true
	updated, err := f.svc.UpdateActionItem(ctx, f.attendee, item.ID, &completed)
	if err != nil {
		t.Fatalf("UpdateActionItem failed: %v", err)
	}
	if !updated.Completed {
		t.Fatal("completed flag not set")
	}
	if updated.Task != "Send notes" {
		t.Fatalf("task changed to %q", updated.Task)
	}

	// Absent flag leaves the item untouched.
	updated, err = f.svc.UpdateActionItem(ctx, f.owner, item.ID, nil)
	if err != nil {
		t.Fatalf("UpdateActionItem failed: %v", err)
	}
	if !updated.Completed {
		t.Fatal("nil completed should not reset the flag")
	}

	_, err = f.svc.UpdateActionItem(ctx, f.stranger, item.ID, &completed)
	wantHTTPCode(t, err, http.StatusForbidden)

	_, err = f.svc.UpdateActionItem(ctx, f.owner, 999, &completed)
	wantHTTPCode(t, err, http.StatusNotFound)
}

func TestTranscribeStoresSimulatedTranscript(t *testing.T) {
	f := newFixture(t)
	m := f.createMeeting(t)
	ctx := context.Background()

	transcript, err := f.svc.Transcribe(ctx, f.attendee, m.ID)
	if err != nil {
		t.Fatalf("Transcribe failed: %v", err)
	}
	if !strings.Contains(transcript, "Speaker 1: Let's start the meeting.") {
		t.Fatalf("unexpected transcript: %q", transcript)
	}
	if !strings.Contains(transcript, "[Transcribed at ") {
		t.Fatalf("transcript missing timestamp: %q", transcript)
	}

	reloaded, err := f.svc.Get(ctx, f.owner, m.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if reloaded.Transcription == nil || *reloaded.Transcription != transcript {
		t.Fatal("transcription not persisted on the meeting")
	}

	_, err = f.svc.Transcribe(ctx, f.stranger, m.ID)
	wantHTTPCode(t, err, http.StatusForbidden)
}

func TestDeleteMeetingIsOwnerOnly(t *testing.T) {
	f := newFixture(t)
	m := f.createMeeting(t)
	ctx := context.Background()

	err := f.svc.Delete(ctx, f.attendee, m.ID)
	wantHTTPCode(t, err, http.StatusForbidden)

	topic, err := f.svc.CreateTopic(ctx, f.owner, m.ID, "Timeline")
	if err != nil {
		t.Fatalf("CreateTopic failed: %v", err)
	}
	if _, err := f.svc.CreateDiscussionPoint(ctx, f.owner, m.ID, topic.ID, "text"); err != nil {
		t.Fatalf("CreateDiscussionPoint failed: %v", err)
	}
	if _, err := f.svc.CreateActionItem(ctx, f.owner, m.ID, CreateActionItemInput{Task: "Send notes"}); err != nil {
		t.Fatalf("CreateActionItem failed: %v", err)
	}

	if err := f.svc.Delete(ctx, f.owner, m.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	_, err = f.svc.Get(ctx, f.owner, m.ID)
	wantHTTPCode(t, err, http.StatusNotFound)

	err = f.svc.Delete(ctx, f.owner, m.ID)
	wantHTTPCode(t, err, http.StatusNotFound)
}
