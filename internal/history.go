package internal

// Turn is a derived (question, answer) pairing of one user message with
// the assistant message that immediately follows it. Turns are never
// stored; they are recomputed from the message log on demand.
type Turn struct {
	Question string
	Answer   string
}

// PairTurns folds a message log into ordered turns for use as outbound
// request context.
//
// The fold keeps a single pending user message. A user message replaces
// any previous pending one without emitting a turn for it, so a question
// that never receives an answer, or is immediately followed by another
// question, is dropped from history (the log itself still holds it). An
// assistant message with no pending question is skipped.
func PairTurns(messages []Message) []Turn {
	turns := []Turn{}
	var pending *Message

	for i := range messages {
		msg := &messages[i]
		switch msg.Role {
		case RoleUser:
			pending = msg
		case RoleAssistant:
			if pending == nil {
				continue
			}
			turns = append(turns, Turn{Question: pending.Text, Answer: msg.Text})
			pending = nil
		}
	}

	return turns
}
