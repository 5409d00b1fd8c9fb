package repository

import (
	"context"

	"streaming-catalog/internal/data/entity"
	"streaming-catalog/internal/data/memory"
	"streaming-catalog/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ContentRepository exposes the static catalog sub-collections in their curated
// order. The catalog itself never changes after seeding.
type ContentRepository interface {
	Popular(ctx context.Context) ([]entity.Content, error)
	NewReleases(ctx context.Context) ([]entity.Content, error)
	Classics(ctx context.Context) ([]entity.Content, error)
	Series(ctx context.Context) ([]entity.Content, error)
}

type GenreRepository interface {
	FindAll(ctx context.Context) ([]entity.Genre, error)
	FindByName(ctx context.Context, name string) (*entity.Genre, error)
	CollectionMetadata(ctx context.Context, key string) (*entity.CollectionMetadata, error)
}

// UserRepository finders return (nil, nil) when no record matches. The list
// mutators return the updated user as a change signal, or (nil, nil) when the
// operation was a no-op.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	AddListItem(ctx context.Context, userID uuid.UUID, contentID int) (*entity.User, error)
	RemoveListItem(ctx context.Context, userID uuid.UUID, contentID int) (*entity.User, error)
}

type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error
	FindValidSession(ctx context.Context, token string) (*entity.Session, error)
	Revoke(ctx context.Context, token string) error
}

type CommentRepository interface {
	ThreadFor(ctx context.Context, contentID int) ([]entity.Comment, error)
	ReplaceThread(ctx context.Context, contentID int, thread []entity.Comment) error
}

type RatingRepository interface {
	SummaryFor(ctx context.Context, contentID int) (*entity.RatingSummary, error)
}

type Repository struct {
	Content ContentRepository
	Genre   GenreRepository
	User    UserRepository
	Session SessionRepository
	Comment CommentRepository
	Rating  RatingRepository
}

// NewMemoryRepository wires every repository to the seeded in-memory stores.
// This is the default backend; nothing survives a restart.
func NewMemoryRepository(log *zap.Logger) (*Repository, error) {
	users, err := memory.NewUserStore(log)
	if err != nil {
		return nil, err
	}

	return &Repository{
		Content: memory.NewContentStore(log),
		Genre:   memory.NewGenreStore(log),
		User:    users,
		Session: memory.NewSessionStore(log),
		Comment: memory.NewCommentStore(log),
		Rating:  memory.NewRatingStore(),
	}, nil
}

// NewRepository wires the mutable entities (users, sessions) to Postgres while
// the static catalog tables stay in memory.
func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Content: memory.NewContentStore(log),
		Genre:   memory.NewGenreStore(log),
		User:    NewUserRepository(db, log),
		Session: NewSessionRepository(db, log),
		Comment: memory.NewCommentStore(log),
		Rating:  memory.NewRatingStore(),
	}
}
