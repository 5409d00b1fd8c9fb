package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"streaming-catalog/internal/data/entity"
	"streaming-catalog/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UserStore keeps the user table in memory. The list field is the only mutable
// state; access is serialized because the store is shared across request
// goroutines.
type UserStore struct {
	mu    sync.RWMutex
	users []*entity.User
	log   *zap.Logger
}

func NewUserStore(log *zap.Logger) (*UserStore, error) {
	s := &UserStore{log: log.With(zap.String("store", "user"))}

	now := time.Now()
	for _, seed := range seedUsers() {
		hash, err := utils.HashPassword(seed.Password)
		if err != nil {
			return nil, fmt.Errorf("hash seed password for %s: %w", seed.Email, err)
		}
		s.users = append(s.users, &entity.User{
			Base: entity.Base{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			Name:         seed.Name,
			Email:        seed.Email,
			PasswordHash: hash,
			MyList:       append([]int(nil), seed.MyList...),
		})
	}

	s.log.Debug("User store seeded", zap.Int("users", len(s.users)))
	return s, nil
}

func (s *UserStore) Create(ctx context.Context, user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == user.Email {
			return fmt.Errorf("email %s already registered", user.Email)
		}
	}

	s.users = append(s.users, user.Copy())
	return nil
}

func (s *UserStore) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			return u.Copy(), nil
		}
	}
	return nil, nil
}

func (s *UserStore) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			return u.Copy(), nil
		}
	}
	return nil, nil
}

// AddListItem appends the content id to the user's list unless it is already
// present. A nil user with nil error signals that nothing changed.
func (s *UserStore) AddListItem(ctx context.Context, userID uuid.UUID, contentID int) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.lookup(userID)
	if user == nil || user.OnList(contentID) {
		return nil, nil
	}

	user.MyList = append(user.MyList, contentID)
	user.UpdatedAt = time.Now()

	s.log.Debug("List item added",
		zap.String("user_id", userID.String()),
		zap.Int("content_id", contentID),
		zap.Ints("list", user.MyList),
	)

	return user.Copy(), nil
}

// RemoveListItem removes the content id from the user's list. A nil user with
// nil error signals that the id was not on the list.
func (s *UserStore) RemoveListItem(ctx context.Context, userID uuid.UUID, contentID int) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.lookup(userID)
	if user == nil {
		return nil, nil
	}

	for i, id := range user.MyList {
		if id == contentID {
			user.MyList = append(user.MyList[:i], user.MyList[i+1:]...)
			user.UpdatedAt = time.Now()

			s.log.Debug("List item removed",
				zap.String("user_id", userID.String()),
				zap.Int("content_id", contentID),
				zap.Ints("list", user.MyList),
			)

			return user.Copy(), nil
		}
	}
	return nil, nil
}

// lookup returns the stored record itself; callers hold the write lock.
func (s *UserStore) lookup(id uuid.UUID) *entity.User {
	for _, u := range s.users {
		if u.ID == id {
			return u
		}
	}
	return nil
}
