package memory

import (
	"context"

	"streaming-catalog/internal/data/entity"
)

// RatingStore serves one shared mock distribution regardless of content id;
// per-content granularity does not exist in the seed data.
type RatingStore struct {
	summary entity.RatingSummary
}

func NewRatingStore() *RatingStore {
	return &RatingStore{summary: seedRatingSummary()}
}

func (s *RatingStore) SummaryFor(ctx context.Context, contentID int) (*entity.RatingSummary, error) {
	summary := s.summary
	summary.Distribution = append([]entity.StarShare(nil), s.summary.Distribution...)
	return &summary, nil
}
