package entities

import "testing"

func TestMeetingCanAccess(t *testing.T) {
	meeting := &Meeting{
		ID:      1,
		OwnerID: 10,
		Attendees: []User{
			{ID: 20},
			{ID: 30},
		},
	}

	tests := []struct {
		name   string
		userID uint
		want   bool
	}{
		{"owner", 10, true},
		{"attendee", 20, true},
		{"second attendee", 30, true},
		{"stranger", 40, false},
		{"zero id", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := meeting.CanAccess(tt.userID); got != tt.want {
				t.Fatalf("CanAccess(%d) = %v, want %v", tt.userID, got, tt.want)
			}
		})
	}
}

func TestMeetingIsOwner(t *testing.T) {
	meeting := &Meeting{OwnerID: 10, Attendees: []User{{ID: 20}}}

	if !meeting.IsOwner(10) {
		t.Fatal("owner should be recognized")
	}
	if meeting.IsOwner(20) {
		t.Fatal("attendee is not the owner")
	}
}
