package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
)

func TestMeetingLifecycle(t *testing.T) {
	e := newTestServer(t)
	ownerCookie := registerUser(t, e, "alice", "alice@example.com")
	attendeeCookie := registerUser(t, e, "bob", "bob@example.com")
	strangerCookie := registerUser(t, e, "charlie", "charlie@example.com")

	rec := doJSON(e, http.MethodPost, "/api/meetings",
		`{"title":"Sprint planning","description":"Plan it","date":"2026-08-27T10:00:00Z","attendeeIds":[2]}`,
		ownerCookie)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create returned %d: %s", rec.Code, rec.Body.String())
	}
	meetingBody := decodeBody(t, rec)

	meetingID := int(meetingBody["id"].(float64))
	if meetingBody["title"] != "Sprint planning" {
		t.Fatalf("title = %v", meetingBody["title"])
	}
	if meetingBody["owner_id"].(float64) != 1 {
		t.Fatalf("owner_id = %v", meetingBody["owner_id"])
	}
	attendees := meetingBody["attendees"].([]interface{})
	if len(attendees) != 1 {
		t.Fatalf("attendees = %v", attendees)
	}
	if meetingBody["transcription"] != nil {
		t.Fatalf("new meeting has transcription %v", meetingBody["transcription"])
	}

	path := fmt.Sprintf("/api/meetings/%d", meetingID)

	// Owner and attendee can read, stranger cannot.
	if rec := doJSON(e, http.MethodGet, path, "", attendeeCookie); rec.Code != http.StatusOK {
		t.Fatalf("attendee get returned %d", rec.Code)
	}
	rec = doJSON(e, http.MethodGet, path, "", strangerCookie)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("stranger get returned %d", rec.Code)
	}
	if decodeBody(t, rec)["error"] != "Unauthorized" {
		t.Fatalf("body: %s", rec.Body.String())
	}

	// Missing meetings are 404, not 403.
	if rec := doJSON(e, http.MethodGet, "/api/meetings/999", "", ownerCookie); rec.Code != http.StatusNotFound {
		t.Fatalf("missing meeting returned %d", rec.Code)
	}

	// Attendee adds a topic and a discussion point.
	rec = doJSON(e, http.MethodPost, path+"/topics", `{"title":"Timeline"}`, attendeeCookie)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create topic returned %d: %s", rec.Code, rec.Body.String())
	}
	topicBody := decodeBody(t, rec)
	topicID := int(topicBody["id"].(float64))
	if topicBody["meeting_id"].(float64) != float64(meetingID) {
		t.Fatalf("topic meeting_id = %v", topicBody["meeting_id"])
	}

	rec = doJSON(e, http.MethodPost,
		fmt.Sprintf("%s/topics/%d/points", path, topicID),
		`{"text":"Deadline slips"}`, ownerCookie)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create point returned %d: %s", rec.Code, rec.Body.String())
	}
	if decodeBody(t, rec)["text"] != "Deadline slips" {
		t.Fatalf("body: %s", rec.Body.String())
	}

	// Action item on the general bucket.
	rec = doJSON(e, http.MethodPost, path+"/action-items",
		`{"task":"Send notes","assigneeId":"2","dueDate":"2026-09-01","topicId":"general"}`, ownerCookie)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create item returned %d: %s", rec.Code, rec.Body.String())
	}
	itemBody := decodeBody(t, rec)
	itemID := int(itemBody["id"].(float64))
	if itemBody["topic_id"] != nil {
		t.Fatalf("general item topic_id = %v", itemBody["topic_id"])
	}
	if itemBody["assigneeId"] != "2" {
		t.Fatalf("assigneeId = %v", itemBody["assigneeId"])
	}
	if itemBody["completed"] != false {
		t.Fatalf("completed = %v", itemBody["completed"])
	}

	// Toggle completed.
	rec = doJSON(e, http.MethodPut,
		fmt.Sprintf("/api/action-items/%d", itemID),
		`{"completed":true}`, attendeeCookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("update item returned %d: %s", rec.Code, rec.Body.String())
	}
	if decodeBody(t, rec)["completed"] != true {
		t.Fatalf("body: %s", rec.Body.String())
	}

	// Transcription round trip.
	rec = doJSON(e, http.MethodPost, path+"/transcribe", "{}", ownerCookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("transcribe returned %d: %s", rec.Code, rec.Body.String())
	}
	transcription, _ := decodeBody(t, rec)["transcription"].(string)
	if transcription == "" {
		t.Fatal("transcription missing from response")
	}

	rec = doJSON(e, http.MethodGet, path, "", ownerCookie)
	var full struct {
		Topics []struct {
			DiscussionPoints []json.RawMessage `json:"discussionPoints"`
		} `json:"topics"`
		ActionItems   []json.RawMessage `json:"actionItems"`
		Transcription *string           `json:"transcription"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &full); err != nil {
		t.Fatalf("decode full meeting: %v", err)
	}
	if len(full.Topics) != 1 || len(full.Topics[0].DiscussionPoints) != 1 {
		t.Fatalf("nested topics not rendered: %s", rec.Body.String())
	}
	if len(full.ActionItems) != 1 {
		t.Fatalf("meeting-level action items not rendered: %s", rec.Body.String())
	}
	if full.Transcription == nil || *full.Transcription != transcription {
		t.Fatal("transcription not persisted")
	}

	// Delete is owner-only and cascades.
	if rec := doJSON(e, http.MethodDelete, path, "", attendeeCookie); rec.Code != http.StatusForbidden {
		t.Fatalf("attendee delete returned %d", rec.Code)
	}
	if rec := doJSON(e, http.MethodDelete, path, "", ownerCookie); rec.Code != http.StatusOK {
		t.Fatalf("owner delete returned %d", rec.Code)
	}
	if rec := doJSON(e, http.MethodGet, path, "", ownerCookie); rec.Code != http.StatusNotFound {
		t.Fatalf("deleted meeting returned %d", rec.Code)
	}
}

func TestMeetingListScopedToPrincipal(t *testing.T) {
	e := newTestServer(t)
	ownerCookie := registerUser(t, e, "alice", "alice@example.com")
	otherCookie := registerUser(t, e, "bob", "bob@example.com")

	rec := doJSON(e, http.MethodPost, "/api/meetings", `{"title":"Private"}`, ownerCookie)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create returned %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(e, http.MethodGet, "/api/meetings", "", otherCookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("list returned %d", rec.Code)
	}
	var list []json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("list is not an array: %s", rec.Body.String())
	}
	if len(list) != 0 {
		t.Fatalf("other user sees %d meetings, want 0", len(list))
	}

	rec = doJSON(e, http.MethodGet, "/api/meetings", "", ownerCookie)
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("list is not an array: %s", rec.Body.String())
	}
	if len(list) != 1 {
		t.Fatalf("owner sees %d meetings, want 1", len(list))
	}
}

func TestActionItemInvalidTopicIDIs400(t *testing.T) {
	e := newTestServer(t)
	cookie := registerUser(t, e, "alice", "alice@example.com")

	rec := doJSON(e, http.MethodPost, "/api/meetings", `{"title":"Standup"}`, cookie)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create returned %d: %s", rec.Code, rec.Body.String())
	}
	meetingID := int(decodeBody(t, rec)["id"].(float64))

	rec = doJSON(e, http.MethodPost,
		fmt.Sprintf("/api/meetings/%d/action-items", meetingID),
		`{"task":"Broken","topicId":"not-a-number"}`, cookie)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
}

func TestUserSearchIsOpenAndFilters(t *testing.T) {
	e := newTestServer(t)
	registerUser(t, e, "alice", "alice@example.com")
	registerUser(t, e, "alicia", "alicia@example.com")
	registerUser(t, e, "bob", "bob@example.com")

	rec := doJSON(e, http.MethodGet, "/api/users/search?q=ali", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("search returned %d: %s", rec.Code, rec.Body.String())
	}
	var users []struct {
		Username string `json:"username"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &users); err != nil {
		t.Fatalf("search body is not an array: %s", rec.Body.String())
	}
	if len(users) != 2 {
		t.Fatalf("got %d users, want 2", len(users))
	}

	rec = doJSON(e, http.MethodGet, "/api/users/search?q=", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("browse returned %d", rec.Code)
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &users); err != nil {
		t.Fatalf("browse body is not an array: %s", rec.Body.String())
	}
	if len(users) != 3 {
		t.Fatalf("browse returned %d users, want 3", len(users))
	}
}
