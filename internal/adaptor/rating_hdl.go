package adaptor

import (
	"net/http"
	"strconv"
	"strings"

	"streaming-catalog/internal/usecase"
	"streaming-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type RatingHandler struct {
	service usecase.RatingService
	log     *zap.Logger
}

func NewRatingHandler(service usecase.RatingService, log *zap.Logger) *RatingHandler {
	return &RatingHandler{
		service: service,
		log:     log.With(zap.String("handler", "rating")),
	}
}

// GetRating handles GET /api/contents/{id}/rating
func (h *RatingHandler) GetRating(w http.ResponseWriter, r *http.Request) {
	contentID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Content ID must be a number", nil)
		return
	}

	summary, err := h.service.SummaryFor(r.Context(), contentID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.ResponseNotFound(w, err.Error())
			return
		}
		h.log.Error("Failed to get rating summary",
			zap.Error(err),
			zap.Int("content_id", contentID))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, "Rating retrieved successfully", summary)
}
