package session

import (
	"fmt"
	"sync"

	"github.com/lshigami/Mocktail/internal/model"
)

// Manager holds the live session controllers, keyed by the session token.
// Sessions are in-memory only; the persisted record of a session is its
// graded answer rows.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Controller
	grader   Grader
	minChars int
}

func NewManager(grader Grader, minChars int) *Manager {
	return &Manager{
		sessions: make(map[string]*Controller),
		grader:   grader,
		minChars: minChars,
	}
}

// Start creates (or replaces) the live session for a mock interview.
func (m *Manager) Start(mockID, userEmail string, questions []model.Question) (*Controller, error) {
	ctrl, err := NewController(mockID, userEmail, questions, m.grader, m.minChars)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if old, ok := m.sessions[mockID]; ok {
		old.StopRecording()
	}
	m.sessions[mockID] = ctrl
	return ctrl, nil
}

func (m *Manager) Get(mockID string) (*Controller, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ctrl, ok := m.sessions[mockID]
	if !ok {
		return nil, fmt.Errorf("no live session for interview %s", mockID)
	}
	return ctrl, nil
}

// End discards the live session. In-flight grading is allowed to finish.
func (m *Manager) End(mockID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if ctrl, ok := m.sessions[mockID]; ok {
		ctrl.StopRecording()
		delete(m.sessions, mockID)
	}
}
