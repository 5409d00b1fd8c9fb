package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"streaming-catalog/internal/data/entity"
	"streaming-catalog/internal/data/repository"

	"go.uber.org/zap"
)

var (
	ErrContentNotFound  = errors.New("content not found")
	ErrGenreNotFound    = errors.New("genre not found")
	ErrMetadataNotFound = errors.New("metadata not found")
)

// Metadata kinds accepted by CollectionOrGenreMetadata.
const (
	MetadataKindGenre      = "genre"
	MetadataKindCollection = "collection"
)

const relatedSampleSize = 6

// CatalogService is the query layer over the content store. Every operation is
// read-only; randomized operations accept an optional seed (zero keeps the
// unseeded default).
type CatalogService interface {
	All(ctx context.Context) ([]entity.Content, error)
	ByID(ctx context.Context, id int) (*entity.Content, error)
	Related(ctx context.Context, id int, seed int64) ([]entity.Content, error)
	ByCategoryKey(ctx context.Context, key string) ([]entity.Content, error)
	ByGenreName(ctx context.Context, name string, seed int64) ([]entity.Content, error)
	CollectionOrGenreMetadata(ctx context.Context, kind, value string) (*entity.CollectionMetadata, error)
	Genres(ctx context.Context) ([]entity.Genre, error)
}

type catalogService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCatalogService(repo *repository.Repository, log *zap.Logger) CatalogService {
	return &catalogService{
		repo: repo,
		log:  log.With(zap.String("service", "catalog")),
	}
}

// All returns the union of every sub-collection with duplicate ids removed.
// Merge order is popular, new releases, classics, series; a duplicate keeps its
// first position but the last occurrence's record.
func (s *catalogService) All(ctx context.Context) ([]entity.Content, error) {
	merged, err := s.concat(ctx,
		s.repo.Content.Popular,
		s.repo.Content.NewReleases,
		s.repo.Content.Classics,
		s.repo.Content.Series,
	)
	if err != nil {
		return nil, err
	}

	order := make([]int, 0, len(merged))
	byID := make(map[int]entity.Content, len(merged))
	for _, c := range merged {
		if _, seen := byID[c.ID]; !seen {
			order = append(order, c.ID)
		}
		byID[c.ID] = c
	}

	unified := make([]entity.Content, 0, len(order))
	for _, id := range order {
		unified = append(unified, byID[id])
	}
	return unified, nil
}

// ByID does a linear search over the unified catalog. Absence is an explicit
// error, never a panic.
func (s *catalogService) ByID(ctx context.Context, id int) (*entity.Content, error) {
	all, err := s.All(ctx)
	if err != nil {
		return nil, err
	}

	for _, c := range all {
		if c.ID == id {
			content := c
			return &content, nil
		}
	}
	return nil, ErrContentNotFound
}

// Related samples up to six other titles, shuffled; output differs per call
// unless a seed is supplied.
func (s *catalogService) Related(ctx context.Context, id int, seed int64) ([]entity.Content, error) {
	all, err := s.All(ctx)
	if err != nil {
		return nil, err
	}

	others := make([]entity.Content, 0, len(all))
	for _, c := range all {
		if c.ID != id {
			others = append(others, c)
		}
	}

	shuffled := shuffle(others, newRand(seed))
	if len(shuffled) > relatedSampleSize {
		shuffled = shuffled[:relatedSampleSize]
	}
	return shuffled, nil
}

// ByCategoryKey resolves a fixed category key enumeration. The "filmes" key
// concatenates the three movie sub-collections without de-duplicating; unknown
// keys yield an empty result.
func (s *catalogService) ByCategoryKey(ctx context.Context, key string) ([]entity.Content, error) {
	switch key {
	case "populares":
		return s.repo.Content.Popular(ctx)
	case "lancamentos":
		return s.repo.Content.NewReleases(ctx)
	case "classicos":
		return s.repo.Content.Classics(ctx)
	case "series":
		return s.repo.Content.Series(ctx)
	case "filmes":
		return s.concat(ctx,
			s.repo.Content.Popular,
			s.repo.Content.NewReleases,
			s.repo.Content.Classics,
		)
	default:
		s.log.Debug("Unknown category key", zap.String("key", key))
		return []entity.Content{}, nil
	}
}

// ByGenreName returns a random sample of 10 to 17 titles once the genre is
// known to exist. The sample deliberately ignores genre membership; the genre
// pages are demo surfaces backed by mock data.
func (s *catalogService) ByGenreName(ctx context.Context, name string, seed int64) ([]entity.Content, error) {
	genre, err := s.repo.Genre.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("find genre %s: %w", name, err)
	}
	if genre == nil {
		return nil, ErrGenreNotFound
	}

	all, err := s.All(ctx)
	if err != nil {
		return nil, err
	}

	rng := newRand(seed)
	size := 10 + rng.Intn(8)
	if size > len(all) {
		size = len(all)
	}

	return shuffle(all, rng)[:size], nil
}

// CollectionOrGenreMetadata resolves the hero metadata for a category page.
// Genres synthesize a title from the genre name; collections copy the static
// entry. Entries without a hero image fall back to the "filmes" hero.
func (s *catalogService) CollectionOrGenreMetadata(ctx context.Context, kind, value string) (*entity.CollectionMetadata, error) {
	var meta *entity.CollectionMetadata

	switch kind {
	case MetadataKindGenre:
		genre, err := s.repo.Genre.FindByName(ctx, value)
		if err != nil {
			return nil, fmt.Errorf("find genre %s: %w", value, err)
		}
		if genre != nil {
			meta = &entity.CollectionMetadata{
				Title:       fmt.Sprintf("Gênero: %s", genre.Name),
				Description: genre.Description,
				HeroImage:   genre.HeroImage,
			}
		}
	case MetadataKindCollection:
		found, err := s.repo.Genre.CollectionMetadata(ctx, value)
		if err != nil {
			return nil, fmt.Errorf("find collection metadata %s: %w", value, err)
		}
		meta = found
	}

	if meta == nil {
		return nil, ErrMetadataNotFound
	}

	if meta.HeroImage == "" {
		fallback, err := s.repo.Genre.CollectionMetadata(ctx, "filmes")
		if err != nil {
			return nil, fmt.Errorf("find fallback metadata: %w", err)
		}
		if fallback != nil {
			meta.HeroImage = fallback.HeroImage
		}
	}

	return meta, nil
}

func (s *catalogService) Genres(ctx context.Context) ([]entity.Genre, error) {
	return s.repo.Genre.FindAll(ctx)
}

func (s *catalogService) concat(ctx context.Context, collections ...func(context.Context) ([]entity.Content, error)) ([]entity.Content, error) {
	var merged []entity.Content
	for _, fetch := range collections {
		items, err := fetch(ctx)
		if err != nil {
			return nil, fmt.Errorf("fetch sub-collection: %w", err)
		}
		merged = append(merged, items...)
	}
	return merged, nil
}

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// shuffle returns a Fisher-Yates shuffled copy, leaving the input untouched.
func shuffle(items []entity.Content, rng *rand.Rand) []entity.Content {
	shuffled := append([]entity.Content(nil), items...)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}
