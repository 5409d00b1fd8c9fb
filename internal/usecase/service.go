package usecase

import (
	"streaming-catalog/internal/data/repository"
	"streaming-catalog/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	Catalog CatalogService
	List    ListService
	Comment CommentService
	Rating  RatingService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	catalog := NewCatalogService(repo, log)

	return &Service{
		Auth:    NewAuthService(repo, config, log),
		Catalog: catalog,
		List:    NewListService(repo, catalog, log),
		Comment: NewCommentService(repo, log),
		Rating:  NewRatingService(repo, log),
	}
}
