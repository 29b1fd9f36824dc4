package internal

import "strings"

// Persister mirrors the session collection to durable storage after every
// store mutation. Persistence is best-effort: errors are logged and
// swallowed, never surfaced to the chat flow.
type Persister interface {
	Persist(sessions []*Session, activeID string) error
}

// Store owns the session collection and the active-session pointer. All
// mutations go through its methods; each runs to completion before the
// next (single event loop, no interleaving) and ends with a persist.
//
// Invariant: once initialized the collection is never empty.
type Store struct {
	sessions  []*Session
	activeID  string
	persister Persister
}

// NewStore builds a store from restored state. An empty session list is
// seeded with a single fresh session so the collection invariant holds
// from the start. A nil persister disables mirroring (used in tests).
func NewStore(sessions []*Session, activeID string, persister Persister) *Store {
	if len(sessions) == 0 {
		sessions = []*Session{NewSession()}
	}
	return &Store{
		sessions:  sessions,
		activeID:  activeID,
		persister: persister,
	}
}

// Sessions returns the collection in display order (newest first).
func (s *Store) Sessions() []*Session {
	return s.sessions
}

// Get returns the session with the given id, or nil.
func (s *Store) Get(id string) *Session {
	for _, sess := range s.sessions {
		if sess.ID == id {
			return sess
		}
	}
	return nil
}

// ActiveSession returns the session the active pointer references. A
// missing or stale pointer resolves to the first session; the store never
// reports "no active session" while the collection is non-empty.
func (s *Store) ActiveSession() *Session {
	if sess := s.Get(s.activeID); sess != nil {
		return sess
	}
	if len(s.sessions) == 0 {
		return nil
	}
	return s.sessions[0]
}

// CreateSession allocates a fresh empty session, inserts it at the front
// of the collection, and makes it active.
func (s *Store) CreateSession() *Session {
	sess := NewSession()
	s.sessions = append([]*Session{sess}, s.sessions...)
	s.activeID = sess.ID
	s.persist()
	return sess
}

// SelectSession makes the session with the given id active. An unknown id
// is ignored, leaving the previous active session unchanged.
func (s *Store) SelectSession(id string) {
	if s.Get(id) == nil {
		LogDebug("select ignored, no session %s", id)
		return
	}
	s.activeID = id
	s.persist()
}

// RenameSession replaces the targeted session's title. An empty or
// whitespace-only title keeps the existing one.
func (s *Store) RenameSession(id, title string) {
	sess := s.Get(id)
	if sess == nil {
		return
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return
	}
	sess.Title = title
	s.persist()
}

// DeleteSession removes the session with the given id. Deleting the sole
// remaining session is a no-op so the UI always has somewhere to render.
// When the active session is deleted, the first remaining session becomes
// active.
func (s *Store) DeleteSession(id string) {
	if len(s.sessions) <= 1 {
		LogDebug("delete ignored, last session must remain")
		return
	}
	idx := -1
	for i, sess := range s.sessions {
		if sess.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	s.sessions = append(s.sessions[:idx], s.sessions[idx+1:]...)
	if s.activeID == id {
		if len(s.sessions) > 0 {
			s.activeID = s.sessions[0].ID
		} else {
			s.activeID = ""
		}
	}
	s.persist()
}

// AppendMessage appends a message to the targeted session's log. The
// first message appended to a session still carrying the default title
// also sets the title from the message text.
func (s *Store) AppendMessage(sessionID string, msg Message) {
	sess := s.Get(sessionID)
	if sess == nil {
		LogWarn("append ignored, no session %s", sessionID)
		return
	}
	if len(sess.Messages) == 0 && sess.Title == DefaultTitle {
		sess.Title = TitleFromText(msg.Text)
	}
	sess.Messages = append(sess.Messages, msg)
	s.persist()
}

func (s *Store) persist() {
	if s.persister == nil {
		return
	}
	if err := s.persister.Persist(s.sessions, s.activeID); err != nil {
		LogWarn("persist failed: %v", err)
	}
}
