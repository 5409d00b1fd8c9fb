package usecase

import (
	"context"
	"errors"
	"testing"

	"streaming-catalog/internal/data/repository"

	"go.uber.org/zap"
)

func newTestCatalog(t *testing.T) CatalogService {
	t.Helper()
	repo, err := repository.NewMemoryRepository(zap.NewNop())
	if err != nil {
		t.Fatalf("seed repository: %v", err)
	}
	return NewCatalogService(repo, zap.NewNop())
}

func TestAll_NoDuplicateIDs(t *testing.T) {
	catalog := newTestCatalog(t)

	all, err := catalog.All(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(all) == 0 {
		t.Fatal("empty catalog")
	}

	seen := map[int]bool{}
	for _, c := range all {
		if seen[c.ID] {
			t.Fatalf("duplicate id %d in unified catalog", c.ID)
		}
		seen[c.ID] = true
	}
}

func TestAll_DuplicateKeepsFirstPosition(t *testing.T) {
	catalog := newTestCatalog(t)

	all, err := catalog.All(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	// Oppenheimer is seeded in both populares and lançamentos; the unified
	// view keeps its populares slot.
	if all[1].ID != 2 {
		t.Fatalf("want id 2 at position 1, got %d", all[1].ID)
	}
}

func TestByID_AbsentReturnsNotFound(t *testing.T) {
	catalog := newTestCatalog(t)

	_, err := catalog.ByID(context.Background(), 9999)
	if !errors.Is(err, ErrContentNotFound) {
		t.Fatalf("want ErrContentNotFound, got %v", err)
	}
}

func TestByID_FindsSeededTitle(t *testing.T) {
	catalog := newTestCatalog(t)

	content, err := catalog.ByID(context.Background(), 19)
	if err != nil {
		t.Fatal(err)
	}
	if content.Title != "Breaking Bad" {
		t.Fatalf("want Breaking Bad, got %q", content.Title)
	}
	if len(content.Seasons) == 0 {
		t.Fatal("series without seasons")
	}
}

func TestRelated_SamplesSixWithoutTarget(t *testing.T) {
	catalog := newTestCatalog(t)

	related, err := catalog.Related(context.Background(), 1, 42)
	if err != nil {
		t.Fatal(err)
	}
	if len(related) != 6 {
		t.Fatalf("want 6 related titles, got %d", len(related))
	}
	for _, c := range related {
		if c.ID == 1 {
			t.Fatal("related sample contains the target itself")
		}
	}
}

func TestRelated_SeedMakesResultDeterministic(t *testing.T) {
	catalog := newTestCatalog(t)
	ctx := context.Background()

	first, err := catalog.Related(ctx, 1, 42)
	if err != nil {
		t.Fatal(err)
	}
	second, err := catalog.Related(ctx, 1, 42)
	if err != nil {
		t.Fatal(err)
	}

	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("seeded runs diverge at %d: %d vs %d", i, first[i].ID, second[i].ID)
		}
	}
}

func TestByCategoryKey_FilmesKeepsOverlaps(t *testing.T) {
	catalog := newTestCatalog(t)
	ctx := context.Background()

	filmes, err := catalog.ByCategoryKey(ctx, "filmes")
	if err != nil {
		t.Fatal(err)
	}

	populares, err := catalog.ByCategoryKey(ctx, "populares")
	if err != nil {
		t.Fatal(err)
	}
	lancamentos, err := catalog.ByCategoryKey(ctx, "lancamentos")
	if err != nil {
		t.Fatal(err)
	}
	classicos, err := catalog.ByCategoryKey(ctx, "classicos")
	if err != nil {
		t.Fatal(err)
	}

	if want := len(populares) + len(lancamentos) + len(classicos); len(filmes) != want {
		t.Fatalf("want %d filmes entries, got %d", want, len(filmes))
	}

	// Oppenheimer appears twice, once per sub-collection
	count := 0
	for _, c := range filmes {
		if c.ID == 2 {
			count++
		}
	}
	if count != 2 {
		t.Fatalf("want id 2 twice in filmes, got %d", count)
	}
}

func TestByCategoryKey_PopularesIsExactSubCollection(t *testing.T) {
	catalog := newTestCatalog(t)

	populares, err := catalog.ByCategoryKey(context.Background(), "populares")
	if err != nil {
		t.Fatal(err)
	}

	if len(populares) != 8 {
		t.Fatalf("want 8 populares, got %d", len(populares))
	}
	for i, c := range populares {
		if c.ID != i+1 {
			t.Fatalf("want id %d at position %d, got %d", i+1, i, c.ID)
		}
	}
}

func TestByCategoryKey_UnknownKeyIsEmpty(t *testing.T) {
	catalog := newTestCatalog(t)

	items, err := catalog.ByCategoryKey(context.Background(), "inexistente")
	if err != nil {
		t.Fatal(err)
	}
	if items == nil || len(items) != 0 {
		t.Fatalf("want empty non-nil slice, got %v", items)
	}
}

func TestByGenreName_SampleSizeBetween10And17(t *testing.T) {
	catalog := newTestCatalog(t)

	for seed := int64(1); seed <= 5; seed++ {
		items, err := catalog.ByGenreName(context.Background(), "Drama", seed)
		if err != nil {
			t.Fatal(err)
		}
		if len(items) < 10 || len(items) > 17 {
			t.Fatalf("seed %d: want 10..17 items, got %d", seed, len(items))
		}
	}
}

func TestByGenreName_UnknownGenre(t *testing.T) {
	catalog := newTestCatalog(t)

	_, err := catalog.ByGenreName(context.Background(), "Faroeste", 1)
	if !errors.Is(err, ErrGenreNotFound) {
		t.Fatalf("want ErrGenreNotFound, got %v", err)
	}
}

func TestMetadata_GenreSynthesizesTitle(t *testing.T) {
	catalog := newTestCatalog(t)

	meta, err := catalog.CollectionOrGenreMetadata(context.Background(), MetadataKindGenre, "Drama")
	if err != nil {
		t.Fatal(err)
	}
	if meta.Title != "Gênero: Drama" {
		t.Fatalf("want synthesized title, got %q", meta.Title)
	}
	if meta.HeroImage == "" {
		t.Fatal("missing hero image")
	}
}

func TestMetadata_MissingHeroFallsBackToFilmes(t *testing.T) {
	catalog := newTestCatalog(t)
	ctx := context.Background()

	meta, err := catalog.CollectionOrGenreMetadata(ctx, MetadataKindGenre, "Terror")
	if err != nil {
		t.Fatal(err)
	}

	filmes, err := catalog.CollectionOrGenreMetadata(ctx, MetadataKindCollection, "filmes")
	if err != nil {
		t.Fatal(err)
	}

	if meta.HeroImage != filmes.HeroImage {
		t.Fatalf("want filmes hero fallback, got %q", meta.HeroImage)
	}
}

func TestMetadata_UnknownValue(t *testing.T) {
	catalog := newTestCatalog(t)

	_, err := catalog.CollectionOrGenreMetadata(context.Background(), MetadataKindCollection, "inexistente")
	if !errors.Is(err, ErrMetadataNotFound) {
		t.Fatalf("want ErrMetadataNotFound, got %v", err)
	}
}
