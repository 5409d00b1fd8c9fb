package memory

import (
	"context"
	"testing"
	"time"

	"streaming-catalog/internal/data/entity"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func newSession(expiresAt time.Time) *entity.Session {
	return &entity.Session{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		UserID:     uuid.New(),
		Token:      uuid.New(),
		ExpiresAt:  expiresAt,
	}
}

func TestFindValidSession_UnknownToken(t *testing.T) {
	store := NewSessionStore(zap.NewNop())

	found, err := store.FindValidSession(context.Background(), uuid.NewString())
	if err != nil {
		t.Fatal(err)
	}
	if found != nil {
		t.Fatal("unknown token resolved to a session")
	}
}

func TestFindValidSession_ExpiredIsInvalid(t *testing.T) {
	store := NewSessionStore(zap.NewNop())
	ctx := context.Background()

	session := newSession(time.Now().Add(-time.Minute))
	if err := store.Create(ctx, session); err != nil {
		t.Fatal(err)
	}

	found, err := store.FindValidSession(ctx, session.Token.String())
	if err != nil {
		t.Fatal(err)
	}
	if found != nil {
		t.Fatal("expired session still valid")
	}
}

func TestRevoke_InvalidatesSession(t *testing.T) {
	store := NewSessionStore(zap.NewNop())
	ctx := context.Background()

	session := newSession(time.Now().Add(time.Hour))
	if err := store.Create(ctx, session); err != nil {
		t.Fatal(err)
	}

	found, err := store.FindValidSession(ctx, session.Token.String())
	if err != nil {
		t.Fatal(err)
	}
	if found == nil {
		t.Fatal("fresh session not found")
	}

	if err := store.Revoke(ctx, session.Token.String()); err != nil {
		t.Fatal(err)
	}

	found, err = store.FindValidSession(ctx, session.Token.String())
	if err != nil {
		t.Fatal(err)
	}
	if found != nil {
		t.Fatal("revoked session still valid")
	}
}
