package memory

import (
	"context"

	"streaming-catalog/internal/data/entity"

	"go.uber.org/zap"
)

type GenreStore struct {
	genres      []entity.Genre
	collections map[string]entity.CollectionMetadata
	log         *zap.Logger
}

func NewGenreStore(log *zap.Logger) *GenreStore {
	return &GenreStore{
		genres:      seedGenres(),
		collections: seedCollectionMetadata(),
		log:         log.With(zap.String("store", "genre")),
	}
}

func (s *GenreStore) FindAll(ctx context.Context) ([]entity.Genre, error) {
	return append([]entity.Genre(nil), s.genres...), nil
}

// FindByName matches by exact name. Absent genres return nil without error.
func (s *GenreStore) FindByName(ctx context.Context, name string) (*entity.Genre, error) {
	for _, g := range s.genres {
		if g.Name == name {
			genre := g
			return &genre, nil
		}
	}
	return nil, nil
}

// CollectionMetadata returns a copy of the static entry for the category key,
// or nil when the key is unknown.
func (s *GenreStore) CollectionMetadata(ctx context.Context, key string) (*entity.CollectionMetadata, error) {
	meta, ok := s.collections[key]
	if !ok {
		return nil, nil
	}
	return &meta, nil
}
