package session

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/folderkeeper/internal/i18n"
)

// Store persists sessions by chat id. Get never fails for an unknown chat:
// it returns a fresh session in the default language.
type Store interface {
	Get(ctx context.Context, chatID int64) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Clear(ctx context.Context, chatID int64) error
}

// MemoryStore keeps sessions for the lifetime of the process.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[int64]*Session
	lang     i18n.Lang
}

func NewMemoryStore(defaultLang i18n.Lang) *MemoryStore {
	return &MemoryStore{sessions: make(map[int64]*Session), lang: defaultLang}
}

func (m *MemoryStore) Get(_ context.Context, chatID int64) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[chatID]; ok {
		return s, nil
	}
	s := New(chatID, m.lang)
	m.sessions[chatID] = s
	return s, nil
}

func (m *MemoryStore) Save(_ context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[s.ChatID] = s
	return nil
}

func (m *MemoryStore) Clear(_ context.Context, chatID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, chatID)
	return nil
}

// Len returns the number of known chats.
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
