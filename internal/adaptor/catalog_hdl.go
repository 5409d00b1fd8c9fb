package adaptor

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"streaming-catalog/internal/usecase"
	"streaming-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(service usecase.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log.With(zap.String("handler", "catalog")),
	}
}

// GetCatalog handles GET /api/catalog
func (h *CatalogHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.service.All(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get catalog")
		return
	}

	utils.ResponseSuccess(w, "Catalog retrieved successfully", catalog)
}

// GetContentByID handles GET /api/contents/{id}
func (h *CatalogHandler) GetContentByID(w http.ResponseWriter, r *http.Request) {
	contentID, ok := h.parseContentID(w, r)
	if !ok {
		return
	}

	content, err := h.service.ByID(r.Context(), contentID)
	if err != nil {
		h.handleServiceError(w, err, "get content by ID")
		return
	}

	utils.ResponseSuccess(w, "Content retrieved successfully", content)
}

// GetRelated handles GET /api/contents/{id}/related
func (h *CatalogHandler) GetRelated(w http.ResponseWriter, r *http.Request) {
	contentID, ok := h.parseContentID(w, r)
	if !ok {
		return
	}

	// Optional seed for reproducible sampling; zero keeps the default
	seed := int64(utils.ParseInt(r.URL.Query().Get("seed"), 0))

	related, err := h.service.Related(r.Context(), contentID, seed)
	if err != nil {
		h.handleServiceError(w, err, "get related content")
		return
	}

	utils.ResponseSuccess(w, "Related content retrieved successfully", related)
}

// GetByCategory handles GET /api/categories/{key}
func (h *CatalogHandler) GetByCategory(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if key == "" {
		utils.ResponseBadRequest(w, "Category key is required", nil)
		return
	}

	items, err := h.service.ByCategoryKey(r.Context(), key)
	if err != nil {
		h.handleServiceError(w, err, "get category")
		return
	}

	utils.ResponseSuccess(w, "Category retrieved successfully", items)
}

// GetGenres handles GET /api/genres
func (h *CatalogHandler) GetGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := h.service.Genres(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get genres")
		return
	}

	utils.ResponseSuccess(w, "Genres retrieved successfully", genres)
}

// GetByGenre handles GET /api/genres/{name}
func (h *CatalogHandler) GetByGenre(w http.ResponseWriter, r *http.Request) {
	name, err := url.PathUnescape(chi.URLParam(r, "name"))
	if err != nil || name == "" {
		utils.ResponseBadRequest(w, "Genre name is required", nil)
		return
	}

	seed := int64(utils.ParseInt(r.URL.Query().Get("seed"), 0))

	items, err := h.service.ByGenreName(r.Context(), name, seed)
	if err != nil {
		h.handleServiceError(w, err, "get genre content")
		return
	}

	utils.ResponseSuccess(w, "Genre content retrieved successfully", items)
}

// GetMetadata handles GET /api/catalog/metadata?kind=&value=
func (h *CatalogHandler) GetMetadata(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	kind := query.Get("kind")
	value := query.Get("value")

	if kind != usecase.MetadataKindGenre && kind != usecase.MetadataKindCollection {
		utils.ResponseBadRequest(w, "Kind must be genre or collection", nil)
		return
	}
	if value == "" {
		utils.ResponseBadRequest(w, "Value is required", nil)
		return
	}

	meta, err := h.service.CollectionOrGenreMetadata(r.Context(), kind, value)
	if err != nil {
		h.handleServiceError(w, err, "get metadata")
		return
	}

	utils.ResponseSuccess(w, "Metadata retrieved successfully", meta)
}

func (h *CatalogHandler) parseContentID(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "id")
	contentID, err := strconv.Atoi(raw)
	if err != nil {
		utils.ResponseBadRequest(w, "Content ID must be a number", nil)
		return 0, false
	}
	return contentID, true
}

func (h *CatalogHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
