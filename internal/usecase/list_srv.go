package usecase

import (
	"context"
	"errors"
	"fmt"

	"streaming-catalog/internal/data/entity"
	"streaming-catalog/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrUserNotFound = errors.New("user not found")

	// ErrNoChange signals that an add found the id already on the list or a
	// remove found it absent.
	ErrNoChange = errors.New("list unchanged")
)

// ListService owns "Minha Lista" membership for a user.
type ListService interface {
	ListFor(ctx context.Context, userID uuid.UUID) ([]entity.Content, error)
	AddToList(ctx context.Context, userID uuid.UUID, contentID int) (*entity.User, error)
	RemoveFromList(ctx context.Context, userID uuid.UUID, contentID int) (*entity.User, error)
}

type listService struct {
	repo    *repository.Repository
	catalog CatalogService
	log     *zap.Logger
}

func NewListService(repo *repository.Repository, catalog CatalogService, log *zap.Logger) ListService {
	return &listService{
		repo:    repo,
		catalog: catalog,
		log:     log.With(zap.String("service", "list")),
	}
}

// ListFor resolves the user's stored ids to full catalog records, silently
// skipping ids that no longer resolve.
func (s *listService) ListFor(ctx context.Context, userID uuid.UUID) ([]entity.Content, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to find user")
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	items := make([]entity.Content, 0, len(user.MyList))
	for _, contentID := range user.MyList {
		content, err := s.catalog.ByID(ctx, contentID)
		if errors.Is(err, ErrContentNotFound) {
			s.log.Warn("Stale content id on list",
				zap.String("user_id", userID.String()),
				zap.Int("content_id", contentID))
			continue
		}
		if err != nil {
			return nil, err
		}
		items = append(items, *content)
	}

	return items, nil
}

// AddToList saves a content id on the user's list. The returned user copy acts
// as a change signal; ErrNoChange means the id was already saved.
func (s *listService) AddToList(ctx context.Context, userID uuid.UUID, contentID int) (*entity.User, error) {
	// Only known catalog ids may enter the list
	if _, err := s.catalog.ByID(ctx, contentID); err != nil {
		return nil, err
	}

	user, err := s.repo.User.AddListItem(ctx, userID, contentID)
	if err != nil {
		s.log.Error("Failed to add to list",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int("content_id", contentID))
		return nil, fmt.Errorf("failed to update list")
	}
	if user == nil {
		return nil, ErrNoChange
	}

	s.log.Info("Added to list",
		zap.String("user_id", userID.String()),
		zap.Int("content_id", contentID))
	return user, nil
}

// RemoveFromList drops a content id from the user's list; ErrNoChange means
// the id was not on it.
func (s *listService) RemoveFromList(ctx context.Context, userID uuid.UUID, contentID int) (*entity.User, error) {
	user, err := s.repo.User.RemoveListItem(ctx, userID, contentID)
	if err != nil {
		s.log.Error("Failed to remove from list",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int("content_id", contentID))
		return nil, fmt.Errorf("failed to update list")
	}
	if user == nil {
		return nil, ErrNoChange
	}

	s.log.Info("Removed from list",
		zap.String("user_id", userID.String()),
		zap.Int("content_id", contentID))
	return user, nil
}
