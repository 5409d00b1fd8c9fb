package memory

import (
	"context"
	"sync"
	"time"

	"streaming-catalog/internal/data/entity"

	"go.uber.org/zap"
)

type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*entity.Session
	log      *zap.Logger
}

func NewSessionStore(log *zap.Logger) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*entity.Session),
		log:      log.With(zap.String("store", "session")),
	}
}

func (s *SessionStore) Create(ctx context.Context, session *entity.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *session
	s.sessions[session.Token.String()] = &stored
	return nil
}

// FindValidSession returns the session for the token when it exists, has not
// expired and has not been revoked. Anything else is nil without error.
func (s *SessionStore) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[token]
	if !ok {
		return nil, nil
	}
	if session.RevokedAt != nil || time.Now().After(session.ExpiresAt) {
		return nil, nil
	}

	found := *session
	return &found, nil
}

func (s *SessionStore) Revoke(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[token]
	if !ok {
		return nil
	}

	now := time.Now()
	session.RevokedAt = &now
	return nil
}
