package cmd

import (
	"testing"
	"time"

	"github.com/benboone2/Radia-AI-chat-UI/internal"
)

func TestDisplaySessions(t *testing.T) {
	store := internal.NewStore(nil, "", nil)
	sess := store.CreateSession()
	store.RenameSession(sess.ID, "A conversation with a fairly long title that gets cut")

	// Must not panic regardless of collection shape.
	displaySessions(store)
}

func TestFormatCreatedAt(t *testing.T) {
	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{name: "zero time", t: time.Time{}, want: "—"},
		{name: "today", t: time.Now().Add(-time.Hour), want: time.Now().Add(-time.Hour).Format("Today 15:04")},
		{name: "this week", t: time.Now().Add(-3 * 24 * time.Hour), want: time.Now().Add(-3 * 24 * time.Hour).Format("Mon 15:04")},
		{name: "old", t: time.Now().Add(-2 * 365 * 24 * time.Hour), want: time.Now().Add(-2 * 365 * 24 * time.Hour).Format("2006-01-02")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatCreatedAt(tt.t); got != tt.want {
				t.Errorf("formatCreatedAt() = %q, want %q", got, tt.want)
			}
		})
	}
}
