package wire

import (
	"streaming-catalog/internal/adaptor"
	"streaming-catalog/internal/data/repository"
	"streaming-catalog/pkg/middleware"
	"streaming-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireList(
	r chi.Router,
	listHandler *adaptor.ListHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	// My-list is always scoped to the authenticated user
	r.Route("/api/my-list", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		r.Get("/", listHandler.GetMyList)
		r.Post("/{contentId}", listHandler.AddToList)
		r.Delete("/{contentId}", listHandler.RemoveFromList)
	})
}
