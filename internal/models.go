package internal

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultTitle is the title a session carries until its first message
// (or an explicit rename) replaces it.
const DefaultTitle = "New chat"

// maxTitleLen bounds titles derived from message text.
const maxTitleLen = 40

// Role identifies the author of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one chat line. Messages are immutable once created and
// belong to exactly one session.
type Message struct {
	ID   string `json:"id" yaml:"id"`
	Role Role   `json:"role" yaml:"role"`
	Text string `json:"text" yaml:"text"`
}

// NewMessage creates a message with a fresh id.
func NewMessage(role Role, text string) Message {
	return Message{
		ID:   uuid.NewString(),
		Role: role,
		Text: text,
	}
}

// Session is one independent conversation thread with its own message log.
// The log is append-only; insertion order is chronological order.
type Session struct {
	ID        string    `json:"id" yaml:"id"`
	Title     string    `json:"title" yaml:"title"`
	Messages  []Message `json:"messages" yaml:"messages"`
	CreatedAt time.Time `json:"createdAt" yaml:"created_at"`
}

// NewSession creates an empty session with a fresh id and the default title.
func NewSession() *Session {
	return &Session{
		ID:        uuid.NewString(),
		Title:     DefaultTitle,
		Messages:  []Message{},
		CreatedAt: time.Now(),
	}
}

// TitleFromText derives a session title from message text, truncated to
// maxTitleLen characters. Empty or whitespace-only text falls back to the
// default title.
func TitleFromText(text string) string {
	title := strings.TrimSpace(text)
	if title == "" {
		return DefaultTitle
	}
	runes := []rune(title)
	if len(runes) > maxTitleLen {
		title = string(runes[:maxTitleLen])
	}
	return title
}
