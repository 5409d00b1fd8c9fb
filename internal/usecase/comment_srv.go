package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"streaming-catalog/internal/data/entity"
	"streaming-catalog/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrCommentNotFound = errors.New("comment not found")

// Thread sort orders, applied to the top-level list only.
const (
	SortLatest  = "latest"
	SortPopular = "popular"
)

// CommentService manages per-content discussion threads. Mutations rebuild the
// whole tree instead of touching nodes in place, so previously served threads
// stay valid.
type CommentService interface {
	ThreadFor(ctx context.Context, contentID int, sortBy string) ([]entity.Comment, error)
	Post(ctx context.Context, contentID int, userID uuid.UUID, text string) ([]entity.Comment, error)
	Reply(ctx context.Context, contentID int, parentID int64, userID uuid.UUID, text string) ([]entity.Comment, error)
	Like(ctx context.Context, contentID int, commentID int64) ([]entity.Comment, error)
}

type commentService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCommentService(repo *repository.Repository, log *zap.Logger) CommentService {
	return &commentService{
		repo: repo,
		log:  log.With(zap.String("service", "comment")),
	}
}

func (s *commentService) ThreadFor(ctx context.Context, contentID int, sortBy string) ([]entity.Comment, error) {
	thread, err := s.repo.Comment.ThreadFor(ctx, contentID)
	if err != nil {
		s.log.Error("Failed to load thread", zap.Error(err), zap.Int("content_id", contentID))
		return nil, fmt.Errorf("failed to load comments")
	}

	sorted := append([]entity.Comment(nil), thread...)
	switch sortBy {
	case SortPopular:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Likes > sorted[j].Likes
		})
	default: // latest
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].PostedAt.After(sorted[j].PostedAt)
		})
	}

	return sorted, nil
}

// Post prepends a new top-level comment authored by the user.
func (s *commentService) Post(ctx context.Context, contentID int, userID uuid.UUID, text string) ([]entity.Comment, error) {
	comment, err := s.newComment(ctx, userID, text)
	if err != nil {
		return nil, err
	}

	thread, err := s.repo.Comment.ThreadFor(ctx, contentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load comments")
	}

	updated := make([]entity.Comment, 0, len(thread)+1)
	updated = append(updated, *comment)
	updated = append(updated, thread...)

	if err := s.repo.Comment.ReplaceThread(ctx, contentID, updated); err != nil {
		return nil, fmt.Errorf("failed to save comment")
	}

	s.log.Info("Comment posted",
		zap.Int("content_id", contentID),
		zap.Int64("comment_id", comment.ID))
	return updated, nil
}

// Reply prepends a reply under the parent comment, searching every level.
func (s *commentService) Reply(ctx context.Context, contentID int, parentID int64, userID uuid.UUID, text string) ([]entity.Comment, error) {
	reply, err := s.newComment(ctx, userID, text)
	if err != nil {
		return nil, err
	}

	thread, err := s.repo.Comment.ThreadFor(ctx, contentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load comments")
	}

	if !threadContains(thread, parentID) {
		return nil, ErrCommentNotFound
	}

	updated := entity.AddReply(thread, parentID, *reply)
	if err := s.repo.Comment.ReplaceThread(ctx, contentID, updated); err != nil {
		return nil, fmt.Errorf("failed to save reply")
	}

	s.log.Info("Reply posted",
		zap.Int("content_id", contentID),
		zap.Int64("parent_id", parentID),
		zap.Int64("comment_id", reply.ID))
	return updated, nil
}

// Like increments the like count of one comment anywhere in the tree.
func (s *commentService) Like(ctx context.Context, contentID int, commentID int64) ([]entity.Comment, error) {
	thread, err := s.repo.Comment.ThreadFor(ctx, contentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load comments")
	}

	if !threadContains(thread, commentID) {
		return nil, ErrCommentNotFound
	}

	updated := entity.LikeComment(thread, commentID)
	if err := s.repo.Comment.ReplaceThread(ctx, contentID, updated); err != nil {
		return nil, fmt.Errorf("failed to save like")
	}

	return updated, nil
}

func (s *commentService) newComment(ctx context.Context, userID uuid.UUID, text string) (*entity.Comment, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to find comment author", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to find user")
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	now := time.Now()
	return &entity.Comment{
		ID:       now.UnixMilli(),
		Author:   user.Name,
		Avatar:   fmt.Sprintf("https://i.pravatar.cc/150?u=%s", user.ID),
		Text:     text,
		PostedAt: now,
		Likes:    0,
		Replies:  []entity.Comment{},
	}, nil
}

func threadContains(thread []entity.Comment, id int64) bool {
	for _, c := range thread {
		if c.ID == id || threadContains(c.Replies, id) {
			return true
		}
	}
	return false
}
