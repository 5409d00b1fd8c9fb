package wire

import (
	"streaming-catalog/internal/adaptor"
	"streaming-catalog/internal/data/repository"
	"streaming-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCatalog(
	r chi.Router,
	catalogHandler *adaptor.CatalogHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// The catalog is browsable without an account
	r.Get("/api/catalog", catalogHandler.GetCatalog)
	r.Get("/api/catalog/metadata", catalogHandler.GetMetadata)
	r.Get("/api/categories/{key}", catalogHandler.GetByCategory)
	r.Get("/api/genres", catalogHandler.GetGenres)
	r.Get("/api/genres/{name}", catalogHandler.GetByGenre)
	r.Get("/api/contents/{id}", catalogHandler.GetContentByID)
	r.Get("/api/contents/{id}/related", catalogHandler.GetRelated)
}
