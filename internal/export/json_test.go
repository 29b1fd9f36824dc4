package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/benboone2/Radia-AI-chat-UI/internal"
)

func testSession() *internal.Session {
	sess := internal.NewSession()
	sess.Title = "Glaciers"
	sess.Messages = []internal.Message{
		internal.NewMessage(internal.RoleUser, "How do glaciers form?"),
		internal.NewMessage(internal.RoleAssistant, "Snow compacts into ice."),
	}
	return sess
}

func TestJSONExporter_RoundTrip(t *testing.T) {
	sess := testSession()
	var buf bytes.Buffer

	if err := (&JSONExporter{}).Export(sess, &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	var got internal.Session
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("Export() output not valid JSON: %v", err)
	}
	if got.ID != sess.ID || got.Title != sess.Title {
		t.Errorf("round trip = %s/%q, want %s/%q", got.ID, got.Title, sess.ID, sess.Title)
	}
	if len(got.Messages) != 2 {
		t.Errorf("round trip restored %d messages, want 2", len(got.Messages))
	}
}

func TestJSONLExporter_OneLinePerMessage(t *testing.T) {
	sess := testSession()
	var buf bytes.Buffer

	if err := (&JSONLExporter{}).Export(sess, &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("Export() wrote %d lines, want 2", len(lines))
	}
	for i, line := range lines {
		var obj map[string]interface{}
		if err := json.Unmarshal([]byte(line), &obj); err != nil {
			t.Errorf("line %d not valid JSON: %v", i, err)
		}
	}
}
