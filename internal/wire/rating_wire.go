package wire

import (
	"streaming-catalog/internal/adaptor"
	"streaming-catalog/internal/data/repository"
	"streaming-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireRating(
	r chi.Router,
	ratingHandler *adaptor.RatingHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/contents/{id}/rating", ratingHandler.GetRating)
}
