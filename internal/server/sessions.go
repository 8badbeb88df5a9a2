package server

import (
	"sync"

	"github.com/google/uuid"

	"github.com/jonathan/resume-assistant/internal/interview"
)

// session is one live guided-intake conversation. Its mutex serializes
// submissions so only one answer is ever in flight per session.
type session struct {
	mu sync.Mutex
	iv *interview.Interview
}

// sessionManager holds live interview sessions. Each create mints a fresh ID,
// so a caller can never re-enter another session by accident.
type sessionManager struct {
	mu       sync.RWMutex
	sessions map[string]*session
}

func newSessionManager() *sessionManager {
	return &sessionManager{sessions: make(map[string]*session)}
}

func (m *sessionManager) create(locale interview.Locale) (string, *session) {
	id := uuid.New().String()
	sess := &session{iv: interview.New(locale)}

	m.mu.Lock()
	m.sessions[id] = sess
	m.mu.Unlock()
	return id, sess
}

func (m *sessionManager) get(id string) (*session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sess, ok := m.sessions[id]
	return sess, ok
}
