package adaptor

import (
	"streaming-catalog/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	Catalog *CatalogHandler
	List    *ListHandler
	Comment *CommentHandler
	Rating  *RatingHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		Catalog: NewCatalogHandler(service.Catalog, log),
		List:    NewListHandler(service.List, log),
		Comment: NewCommentHandler(service.Comment, log),
		Rating:  NewRatingHandler(service.Rating, log),
	}
}
