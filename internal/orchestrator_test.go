package internal

import (
	"context"
	"strings"
	"testing"
)

// fakeService records its inputs and returns a canned answer or error.
// An optional hook runs while the "request" is in flight, which lets
// tests mutate the store mid-send.
type fakeService struct {
	answer  string
	err     error
	input   string
	history []Turn
	calls   int
	hook    func()
}

func (f *fakeService) Ask(ctx context.Context, input string, history []Turn) (string, error) {
	f.calls++
	f.input = input
	f.history = history
	if f.hook != nil {
		f.hook()
	}
	if f.err != nil {
		return "", f.err
	}
	return f.answer, nil
}

func TestOrchestrator_Send_AppendsBothMessages(t *testing.T) {
	store := NewStore(nil, "", nil)
	service := &fakeService{answer: "Snow compacts into ice."}
	orch := NewOrchestrator(store, service)

	if !orch.Send(context.Background(), "  How do glaciers form?  ") {
		t.Fatal("Send() reported nothing sent")
	}

	sess := store.ActiveSession()
	if len(sess.Messages) != 2 {
		t.Fatalf("session has %d messages, want 2", len(sess.Messages))
	}
	if sess.Messages[0].Role != RoleUser || sess.Messages[0].Text != "How do glaciers form?" {
		t.Errorf("user message = %+v, want trimmed input", sess.Messages[0])
	}
	if sess.Messages[1].Role != RoleAssistant || sess.Messages[1].Text != "Snow compacts into ice." {
		t.Errorf("assistant message = %+v", sess.Messages[1])
	}
	if service.input != "How do glaciers form?" {
		t.Errorf("service received input %q, want trimmed text", service.input)
	}
	if orch.Sending() {
		t.Error("orchestrator should be idle after Send returns")
	}
}

func TestOrchestrator_Send_HistoryExcludesCurrentInput(t *testing.T) {
	store := NewStore(nil, "", nil)
	sess := store.ActiveSession()
	store.AppendMessage(sess.ID, NewMessage(RoleUser, "q1"))
	store.AppendMessage(sess.ID, NewMessage(RoleAssistant, "a1"))

	service := &fakeService{answer: "a2"}
	orch := NewOrchestrator(store, service)

	orch.Send(context.Background(), "q2")

	if len(service.history) != 1 {
		t.Fatalf("service received %d history turns, want 1", len(service.history))
	}
	if service.history[0] != (Turn{Question: "q1", Answer: "a1"}) {
		t.Errorf("history = %+v, want the prior exchange only", service.history[0])
	}
}

func TestOrchestrator_Send_Preconditions(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		service AnswerService
	}{
		{name: "empty input", input: "", service: &fakeService{}},
		{name: "whitespace input", input: "   \n", service: &fakeService{}},
		{name: "no endpoint configured", input: "hello", service: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewStore(nil, "", nil)
			orch := NewOrchestrator(store, tt.service)

			if orch.Send(context.Background(), tt.input) {
				t.Error("Send() should be a silent no-op")
			}
			if n := len(store.ActiveSession().Messages); n != 0 {
				t.Errorf("precondition failure appended %d messages", n)
			}
		})
	}
}

func TestOrchestrator_Send_TransportFailure(t *testing.T) {
	store := NewStore(nil, "", nil)
	service := &fakeService{err: &TransportError{Endpoint: "http://localhost:9"}}
	orch := NewOrchestrator(store, service)

	if !orch.Send(context.Background(), "hello") {
		t.Fatal("Send() reported nothing sent")
	}

	sess := store.ActiveSession()
	if len(sess.Messages) != 2 {
		t.Fatalf("session has %d messages, want optimistic user + error message", len(sess.Messages))
	}
	errMsg := sess.Messages[1]
	if errMsg.Role != RoleAssistant {
		t.Errorf("error message role = %s, want assistant", errMsg.Role)
	}
	if !strings.Contains(errMsg.Text, "could not reach the server") {
		t.Errorf("error message %q should mention the unreachable server", errMsg.Text)
	}
	if orch.Sending() {
		t.Error("orchestrator stuck in Sending after failure")
	}
}

func TestOrchestrator_Send_ErrorStatus(t *testing.T) {
	store := NewStore(nil, "", nil)
	service := &fakeService{err: &RequestError{Status: 502, Body: "upstream exploded"}}
	orch := NewOrchestrator(store, service)

	orch.Send(context.Background(), "hello")

	errMsg := store.ActiveSession().Messages[1]
	if !strings.Contains(errMsg.Text, "502") {
		t.Errorf("error message %q should carry the status code", errMsg.Text)
	}
	if !strings.Contains(errMsg.Text, "upstream exploded") {
		t.Errorf("error message %q should carry the body excerpt", errMsg.Text)
	}
}

func TestOrchestrator_Send_StripsCitations(t *testing.T) {
	store := NewStore(nil, "", nil)
	service := &fakeService{answer: "Answer text\n\nCitations\n[1] foo"}
	orch := NewOrchestrator(store, service)

	orch.Send(context.Background(), "hello")

	got := store.ActiveSession().Messages[1].Text
	if got != "Answer text" {
		t.Errorf("assistant message = %q, want citations stripped", got)
	}
}

func TestOrchestrator_Send_TargetsOriginatingSession(t *testing.T) {
	store := NewStore(nil, "", nil)
	origin := store.ActiveSession()

	var other *Session
	service := &fakeService{answer: "late answer"}
	service.hook = func() {
		// The user switches sessions while the request is in flight.
		other = store.CreateSession()
	}
	orch := NewOrchestrator(store, service)

	orch.Send(context.Background(), "hello")

	if len(origin.Messages) != 2 {
		t.Fatalf("originating session has %d messages, want 2", len(origin.Messages))
	}
	if origin.Messages[1].Text != "late answer" {
		t.Errorf("originating session answer = %q", origin.Messages[1].Text)
	}
	if len(other.Messages) != 0 {
		t.Errorf("newly active session received %d messages, want 0", len(other.Messages))
	}
	if store.ActiveSession() != other {
		t.Error("active session should remain the one the user switched to")
	}
}

func TestOrchestrator_Send_TitleSetFromFirstQuestion(t *testing.T) {
	store := NewStore(nil, "", nil)
	service := &fakeService{answer: "a"}
	orch := NewOrchestrator(store, service)

	orch.Send(context.Background(), "What causes tides?")

	if got := store.ActiveSession().Title; got != "What causes tides?" {
		t.Errorf("session title = %q, want the first question", got)
	}
}
