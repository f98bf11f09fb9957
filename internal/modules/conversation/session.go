// README: Session handles and their in-memory registry.
package conversation

import (
	"sync"

	"flyless/internal/types"
)

// Session is the explicit per-conversation state handle. It lives only for
// the lifetime of the conversation; nothing is persisted.
type Session struct {
	ID types.ID

	mu       sync.Mutex
	state    State
	criteria SearchCriteria
	outbox   []string
}

func newSession(id types.ID) *Session {
	return &Session{
		ID:       id,
		state:    StateEmpty,
		criteria: NewSearchCriteria(),
	}
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Criteria returns a copy of the current criteria.
func (s *Session) Criteria() SearchCriteria {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.criteria
}

// DrainOutbox returns and clears the messages delivered asynchronously since
// the last drain.
func (s *Session) DrainOutbox() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	msgs := s.outbox
	s.outbox = nil
	return msgs
}

// deliver appends an outbound message; callers must not hold s.mu.
func (s *Session) deliver(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.outbox = append(s.outbox, msg)
}

// Manager owns the live sessions, keyed by conversation id. The transport
// resolves a handle per request; there is no module-level global state.
type Manager struct {
	mu       sync.Mutex
	sessions map[types.ID]*Session
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[types.ID]*Session)}
}

func (m *Manager) GetOrCreate(id types.ID) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[id]; ok {
		return s
	}
	s := newSession(id)
	m.sessions[id] = s
	return s
}

func (m *Manager) Get(id types.ID) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	return s, ok
}

func (m *Manager) Remove(id types.ID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}
