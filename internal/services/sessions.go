package services

import (
	"sync"
	"time"
)

// SessionStore keeps each user's last fixture menu so numeric replies
// ("analisar 2") can be resolved. It is an explicitly injected dependency
// owned by the process entry point, not module-level state, and entries
// expire lazily after the TTL.
type SessionStore struct {
	mu      sync.RWMutex
	entries map[string]sessionEntry
	ttl     time.Duration
	now     func() time.Time
}

type sessionEntry struct {
	games      []GameRef
	insertedAt time.Time
}

// NewSessionStore creates a session store whose menus live for ttl.
func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		entries: make(map[string]sessionEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// SetGames remembers the menu most recently shown to a user.
func (s *SessionStore) SetGames(user string, games []GameRef) {
	s.mu.Lock()
	s.entries[user] = sessionEntry{games: games, insertedAt: s.now()}
	s.mu.Unlock()
}

// Games returns the user's current menu; false when none exists or the
// entry expired.
func (s *SessionStore) Games(user string) ([]GameRef, bool) {
	s.mu.RLock()
	entry, ok := s.entries[user]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if s.now().Sub(entry.insertedAt) > s.ttl {
		s.mu.Lock()
		delete(s.entries, user)
		s.mu.Unlock()
		return nil, false
	}
	return entry.games, true
}

// Game resolves a 1-based menu index for a user.
func (s *SessionStore) Game(user string, index int) (GameRef, bool) {
	games, ok := s.Games(user)
	if !ok || index < 1 || index > len(games) {
		return GameRef{}, false
	}
	return games[index-1], true
}
