package adaptor

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"streaming-catalog/internal/dto/response"
	"streaming-catalog/internal/usecase"
	"streaming-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ListHandler struct {
	service usecase.ListService
	log     *zap.Logger
}

func NewListHandler(service usecase.ListService, log *zap.Logger) *ListHandler {
	return &ListHandler{
		service: service,
		log:     log.With(zap.String("handler", "list")),
	}
}

// GetMyList handles GET /api/my-list
func (h *ListHandler) GetMyList(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	items, err := h.service.ListFor(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, err, "get list")
		return
	}

	utils.ResponseSuccess(w, "List retrieved successfully", items)
}

// AddToList handles POST /api/my-list/{contentId}
func (h *ListHandler) AddToList(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	contentID, ok := h.parseContentID(w, r)
	if !ok {
		return
	}

	user, err := h.service.AddToList(r.Context(), userID, contentID)
	if err != nil {
		if errors.Is(err, usecase.ErrNoChange) {
			utils.ResponseSuccess(w, "Already on the list", nil)
			return
		}
		h.handleServiceError(w, err, "add to list")
		return
	}

	utils.ResponseSuccess(w, "Added to list", response.UserToResponse(user))
}

// RemoveFromList handles DELETE /api/my-list/{contentId}
func (h *ListHandler) RemoveFromList(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	contentID, ok := h.parseContentID(w, r)
	if !ok {
		return
	}

	user, err := h.service.RemoveFromList(r.Context(), userID, contentID)
	if err != nil {
		if errors.Is(err, usecase.ErrNoChange) {
			utils.ResponseSuccess(w, "Not on the list", nil)
			return
		}
		h.handleServiceError(w, err, "remove from list")
		return
	}

	utils.ResponseSuccess(w, "Removed from list", response.UserToResponse(user))
}

func (h *ListHandler) parseContentID(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "contentId")
	contentID, err := strconv.Atoi(raw)
	if err != nil {
		utils.ResponseBadRequest(w, "Content ID must be a number", nil)
		return 0, false
	}
	return contentID, true
}

func (h *ListHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case strings.Contains(err.Error(), "not found"):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, err.Error())

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
