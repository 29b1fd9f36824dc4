package internal

import (
	"context"
	"fmt"
	"strings"
)

// AnswerService is the outbound dependency of a send operation.
type AnswerService interface {
	Ask(ctx context.Context, input string, history []Turn) (string, error)
}

// SendState tracks where a send operation is in its lifecycle.
type SendState int

const (
	StateIdle SendState = iota
	StateSending
)

// Orchestrator coordinates one round trip to the answer service per send:
// optimistic user append, request construction from the reconstructed
// history, response normalization, and error-to-message translation.
type Orchestrator struct {
	store   *Store
	service AnswerService
	state   SendState
}

// NewOrchestrator wires a store to an answer service. A nil service means
// no endpoint is configured; sends become no-ops.
func NewOrchestrator(store *Store, service AnswerService) *Orchestrator {
	return &Orchestrator{store: store, service: service}
}

// Sending reports whether a send is in flight.
func (o *Orchestrator) Sending() bool {
	return o.state == StateSending
}

// Send runs one send operation against the active session.
//
// Preconditions (violations are silent no-ops): trimmed input is
// non-empty, the service is configured, an active session exists, and no
// other send is in flight. The user message is appended before the
// request goes out; history is built from the log as it was before that
// append, since the new question travels separately as the current input.
//
// The target session is captured by id at send start, so the response is
// appended to the session that originated the request even if the active
// session changes while the request is in flight. Failures never
// propagate: both unreachable-server and error-status outcomes become
// visible assistant messages. Always ends back in Idle.
func (o *Orchestrator) Send(ctx context.Context, input string) bool {
	input = strings.TrimSpace(input)
	if input == "" || o.service == nil || o.state != StateIdle {
		return false
	}
	sess := o.store.ActiveSession()
	if sess == nil {
		return false
	}

	sessionID := sess.ID
	history := PairTurns(sess.Messages)

	o.state = StateSending
	defer func() { o.state = StateIdle }()

	o.store.AppendMessage(sessionID, NewMessage(RoleUser, input))

	answer, err := o.service.Ask(ctx, input, history)
	if err != nil {
		o.store.AppendMessage(sessionID, NewMessage(RoleAssistant, errorText(err)))
		return true
	}

	o.store.AppendMessage(sessionID, NewMessage(RoleAssistant, StripCitations(answer)))
	return true
}

// errorText renders a send failure as a human-readable assistant message.
func errorText(err error) string {
	switch e := err.(type) {
	case *TransportError:
		return "Error: could not reach the server. Is it running?"
	case *RequestError:
		return fmt.Sprintf("Error: server returned status %d: %s", e.Status, e.Body)
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}
