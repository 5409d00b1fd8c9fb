package usecase

import (
	"context"
	"fmt"

	"streaming-catalog/internal/data/entity"
	"streaming-catalog/internal/data/repository"

	"go.uber.org/zap"
)

// RatingService serves the community rating summary for a content id. The mock
// data carries one shared distribution, so every id resolves to the same
// numbers.
type RatingService interface {
	SummaryFor(ctx context.Context, contentID int) (*entity.RatingSummary, error)
}

type ratingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRatingService(repo *repository.Repository, log *zap.Logger) RatingService {
	return &ratingService{
		repo: repo,
		log:  log.With(zap.String("service", "rating")),
	}
}

func (s *ratingService) SummaryFor(ctx context.Context, contentID int) (*entity.RatingSummary, error) {
	summary, err := s.repo.Rating.SummaryFor(ctx, contentID)
	if err != nil {
		s.log.Error("Failed to load rating summary", zap.Error(err), zap.Int("content_id", contentID))
		return nil, fmt.Errorf("failed to load rating")
	}
	return summary, nil
}
