package internal

import "testing"

func msg(role Role, text string) Message {
	return NewMessage(role, text)
}

func TestPairTurns(t *testing.T) {
	tests := []struct {
		name     string
		messages []Message
		want     []Turn
	}{
		{
			name:     "empty log",
			messages: []Message{},
			want:     []Turn{},
		},
		{
			name: "alternating pairs",
			messages: []Message{
				msg(RoleUser, "a"),
				msg(RoleAssistant, "b"),
				msg(RoleUser, "c"),
				msg(RoleAssistant, "d"),
			},
			want: []Turn{{Question: "a", Answer: "b"}, {Question: "c", Answer: "d"}},
		},
		{
			name: "doubled user message drops the first",
			messages: []Message{
				msg(RoleUser, "a"),
				msg(RoleUser, "b"),
				msg(RoleAssistant, "c"),
			},
			want: []Turn{{Question: "b", Answer: "c"}},
		},
		{
			name: "orphan assistant message is skipped",
			messages: []Message{
				msg(RoleAssistant, "x"),
			},
			want: []Turn{},
		},
		{
			name: "trailing unanswered question produces no turn",
			messages: []Message{
				msg(RoleUser, "a"),
				msg(RoleAssistant, "b"),
				msg(RoleUser, "c"),
			},
			want: []Turn{{Question: "a", Answer: "b"}},
		},
		{
			name: "consecutive assistant messages pair only the first",
			messages: []Message{
				msg(RoleUser, "a"),
				msg(RoleAssistant, "b"),
				msg(RoleAssistant, "c"),
			},
			want: []Turn{{Question: "a", Answer: "b"}},
		},
		{
			name: "only user messages",
			messages: []Message{
				msg(RoleUser, "a"),
				msg(RoleUser, "b"),
			},
			want: []Turn{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PairTurns(tt.messages)
			if len(got) != len(tt.want) {
				t.Fatalf("PairTurns() returned %d turns, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("PairTurns()[%d] = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestPairTurns_NeverExceedsAssistantCount(t *testing.T) {
	messages := []Message{
		msg(RoleUser, "q1"),
		msg(RoleUser, "q2"),
		msg(RoleAssistant, "a1"),
		msg(RoleAssistant, "a2"),
		msg(RoleUser, "q3"),
		msg(RoleAssistant, "a3"),
	}

	assistants := 0
	for _, m := range messages {
		if m.Role == RoleAssistant {
			assistants++
		}
	}

	turns := PairTurns(messages)
	if len(turns) > assistants {
		t.Errorf("PairTurns() emitted %d turns, more than %d assistant messages", len(turns), assistants)
	}

	// Answers must appear in original relative order.
	last := -1
	for _, turn := range turns {
		found := -1
		for i, m := range messages {
			if m.Role == RoleAssistant && m.Text == turn.Answer && i > last {
				found = i
				break
			}
		}
		if found < 0 {
			t.Fatalf("PairTurns() answer %q not found in order in the log", turn.Answer)
		}
		last = found
	}
}

func TestPairTurns_IsRestartable(t *testing.T) {
	messages := []Message{
		msg(RoleUser, "a"),
		msg(RoleAssistant, "b"),
	}

	first := PairTurns(messages)
	second := PairTurns(messages)

	if len(first) != 1 || len(second) != 1 || first[0] != second[0] {
		t.Errorf("PairTurns() is not stable across calls: %+v vs %+v", first, second)
	}
}
