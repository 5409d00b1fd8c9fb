package wire

import (
	"streaming-catalog/internal/adaptor"
	"streaming-catalog/internal/data/repository"
	"streaming-catalog/pkg/middleware"
	"streaming-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/api/register", authHandler.Register)
	r.Post("/api/login", authHandler.Login)
	r.Post("/api/recover-password", authHandler.RecoverPassword)
	r.Post("/api/reset-password", authHandler.ResetPassword)

	// ==================== PROTECTED ROUTES ====================
	// Logout needs an active session
	r.With(middleware.AuthSession(repo.Session, log)).Post("/api/logout", authHandler.Logout)
}
