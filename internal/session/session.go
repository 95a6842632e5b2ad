// Package session owns the per-learner context object. Every core operation
// takes a *Session explicitly; nothing reads ambient state. A session is
// accessed by one logical actor at a time — the manager only guards its own
// map, not the sessions it hands out.
package session

import (
	"fmt"
	"sync"

	"github.com/project-codexa/backend/internal/models"
)

// Session is the complete mutable state of one learning session.
type Session struct {
	Profile  *models.LearnerProfile
	Quests   *models.QuestState
	History  []models.ProgressRecord
	Progress models.ProgressTable

	// Current quiz attempt; nil until a quiz is started.
	Questions []models.QuestionRecord
	Adventure *models.AdventureState
	Subject   string
	Chapter   string
	Part      int

	ClassLevel string
	Language   string
}

// StartQuiz installs a fresh adventure over the parsed question set,
// discarding any previous attempt.
func (s *Session) StartQuiz(questions []models.QuestionRecord) {
	s.Questions = questions
	state := models.NewAdventureState(len(questions))
	s.Adventure = &state
}

// ResetQuiz restarts the current question set from the first question.
func (s *Session) ResetQuiz() {
	s.StartQuiz(s.Questions)
}

// Loader round-trips a session against durable storage.
type Loader interface {
	LoadSession(userID int64) (*Session, error)
	SaveSession(s *Session) error
}

// Manager caches live sessions by user id, loading from storage on first
// touch. The mutex protects the map only; callers own the sessions.
type Manager struct {
	mu       sync.Mutex
	sessions map[int64]*Session
	loader   Loader
}

func NewManager(loader Loader) *Manager {
	return &Manager{
		sessions: make(map[int64]*Session),
		loader:   loader,
	}
}

// Get returns the live session for userID, loading it if needed.
func (m *Manager) Get(userID int64) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[userID]; ok {
		return s, nil
	}
	s, err := m.loader.LoadSession(userID)
	if err != nil {
		return nil, fmt.Errorf("load session for user %d: %w", userID, err)
	}
	m.sessions[userID] = s
	return s, nil
}

// Save persists the session's durable state.
func (m *Manager) Save(s *Session) error {
	return m.loader.SaveSession(s)
}
