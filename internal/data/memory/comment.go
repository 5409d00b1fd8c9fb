package memory

import (
	"context"
	"sync"
	"time"

	"streaming-catalog/internal/data/entity"

	"go.uber.org/zap"
)

// CommentStore keeps one discussion thread per content id. Threads are lazily
// seeded with the starter thread on first read and replaced wholesale on
// mutation; they are never written back to the catalog.
type CommentStore struct {
	mu      sync.RWMutex
	threads map[int][]entity.Comment
	log     *zap.Logger
}

func NewCommentStore(log *zap.Logger) *CommentStore {
	return &CommentStore{
		threads: make(map[int][]entity.Comment),
		log:     log.With(zap.String("store", "comment")),
	}
}

func (s *CommentStore) ThreadFor(ctx context.Context, contentID int) ([]entity.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	thread, ok := s.threads[contentID]
	if !ok {
		thread = seedThread(time.Now())
		s.threads[contentID] = thread
	}
	return thread, nil
}

func (s *CommentStore) ReplaceThread(ctx context.Context, contentID int, thread []entity.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.threads[contentID] = thread

	s.log.Debug("Thread replaced",
		zap.Int("content_id", contentID),
		zap.Int("total_comments", entity.CountComments(thread)),
	)
	return nil
}
