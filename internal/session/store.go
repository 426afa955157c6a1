package session

import (
	"sync"

	"github.com/sandevgo/lexibot/internal/core"
)

// Session holds the ordered, append-only history of one conversation. The
// first message is always the seeded system instruction. Callers must hold
// the session lock around any read-then-append turn so two in-flight turns
// cannot interleave their appends.
type Session struct {
	mu      sync.Mutex
	history []core.Message
}

func (s *Session) Lock()   { s.mu.Lock() }
func (s *Session) Unlock() { s.mu.Unlock() }

// History returns a copy of the accumulated history.
func (s *Session) History() []core.Message {
	out := make([]core.Message, len(s.history))
	copy(out, s.history)
	return out
}

func (s *Session) Append(msgs ...core.Message) {
	s.history = append(s.history, msgs...)
}

// Store maps opaque session ids to in-memory histories. Sessions live for
// the lifetime of the process: no expiry and no eviction, which is a known
// limitation of this deployment, not a design goal.
type Store struct {
	mu       sync.Mutex
	system   string
	sessions map[string]*Session
}

// NewStore seeds every new session with the given system instruction.
func NewStore(systemInstruction string) *Store {
	return &Store{
		system:   systemInstruction,
		sessions: make(map[string]*Session),
	}
}

// GetOrCreate returns the session for id, creating it with a single system
// message on first reference. Creation is idempotent: concurrent callers
// with the same unseen id get the same session.
func (s *Store) GetOrCreate(id string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		sess = &Session{
			history: []core.Message{{Role: core.RoleSystem, Content: s.system}},
		}
		s.sessions[id] = sess
	}
	return sess
}

// Peek returns the session for id without creating one. Rejected input must
// not leave a session behind, and callers outside this package verify that
// through Peek.
func (s *Store) Peek(id string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

// Len reports how many sessions the process currently holds.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
