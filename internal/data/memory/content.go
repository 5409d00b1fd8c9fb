package memory

import (
	"context"

	"streaming-catalog/internal/data/entity"

	"go.uber.org/zap"
)

// ContentStore serves the static catalog sub-collections. Records are fixed at
// construction and never mutated, so reads need no locking.
type ContentStore struct {
	popular     []entity.Content
	newReleases []entity.Content
	classics    []entity.Content
	series      []entity.Content
	log         *zap.Logger
}

func NewContentStore(log *zap.Logger) *ContentStore {
	s := &ContentStore{
		popular:     seedPopular(),
		newReleases: seedNewReleases(),
		classics:    seedClassics(),
		series:      seedSeries(),
		log:         log.With(zap.String("store", "content")),
	}

	s.log.Debug("Content store seeded",
		zap.Int("popular", len(s.popular)),
		zap.Int("new_releases", len(s.newReleases)),
		zap.Int("classics", len(s.classics)),
		zap.Int("series", len(s.series)),
	)

	return s
}

func (s *ContentStore) Popular(ctx context.Context) ([]entity.Content, error) {
	return append([]entity.Content(nil), s.popular...), nil
}

func (s *ContentStore) NewReleases(ctx context.Context) ([]entity.Content, error) {
	return append([]entity.Content(nil), s.newReleases...), nil
}

func (s *ContentStore) Classics(ctx context.Context) ([]entity.Content, error) {
	return append([]entity.Content(nil), s.classics...), nil
}

func (s *ContentStore) Series(ctx context.Context) ([]entity.Content, error) {
	return append([]entity.Content(nil), s.series...), nil
}
