package wire

import (
	"streaming-catalog/internal/adaptor"
	"streaming-catalog/internal/data/repository"
	"streaming-catalog/pkg/middleware"
	"streaming-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireComment(
	r chi.Router,
	commentHandler *adaptor.CommentHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/contents/{id}/comments", func(r chi.Router) {
		// ==================== PUBLIC ROUTES ====================
		// Anyone can read a thread
		r.Get("/", commentHandler.GetComments)

		// ==================== PROTECTED ROUTES ====================
		// Posting, replying and liking need an active session
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthSession(repo.Session, log))

			r.Post("/", commentHandler.PostComment)
			r.Post("/{commentId}/like", commentHandler.LikeComment)
			r.Post("/{commentId}/replies", commentHandler.PostReply)
		})
	})
}
