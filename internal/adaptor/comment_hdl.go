package adaptor

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"streaming-catalog/internal/dto/request"
	"streaming-catalog/internal/dto/response"
	"streaming-catalog/internal/usecase"
	"streaming-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CommentHandler struct {
	service usecase.CommentService
	log     *zap.Logger
}

func NewCommentHandler(service usecase.CommentService, log *zap.Logger) *CommentHandler {
	return &CommentHandler{
		service: service,
		log:     log.With(zap.String("handler", "comment")),
	}
}

// GetComments handles GET /api/contents/{id}/comments
func (h *CommentHandler) GetComments(w http.ResponseWriter, r *http.Request) {
	contentID, ok := h.parseID(w, r, "id")
	if !ok {
		return
	}

	sortBy := r.URL.Query().Get("sort")
	if sortBy == "" {
		sortBy = usecase.SortLatest
	}

	thread, err := h.service.ThreadFor(r.Context(), contentID, sortBy)
	if err != nil {
		h.handleServiceError(w, err, "get comments")
		return
	}

	utils.ResponseSuccess(w, "Comments retrieved successfully", response.ThreadToResponse(thread))
}

// PostComment handles POST /api/contents/{id}/comments
func (h *CommentHandler) PostComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	contentID, ok := h.parseID(w, r, "id")
	if !ok {
		return
	}

	req, ok := h.decodeText(w, r)
	if !ok {
		return
	}

	thread, err := h.service.Post(r.Context(), contentID, userID, req)
	if err != nil {
		h.handleServiceError(w, err, "post comment")
		return
	}

	utils.ResponseCreated(w, "Comment posted successfully", response.ThreadToResponse(thread))
}

// LikeComment handles POST /api/contents/{id}/comments/{commentId}/like
func (h *CommentHandler) LikeComment(w http.ResponseWriter, r *http.Request) {
	if _, ok := utils.GetUserIDFromContext(r.Context()); !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	contentID, ok := h.parseID(w, r, "id")
	if !ok {
		return
	}

	commentID, err := strconv.ParseInt(chi.URLParam(r, "commentId"), 10, 64)
	if err != nil {
		utils.ResponseBadRequest(w, "Comment ID must be a number", nil)
		return
	}

	thread, err := h.service.Like(r.Context(), contentID, commentID)
	if err != nil {
		h.handleServiceError(w, err, "like comment")
		return
	}

	utils.ResponseSuccess(w, "Comment liked", response.ThreadToResponse(thread))
}

// PostReply handles POST /api/contents/{id}/comments/{commentId}/replies
func (h *CommentHandler) PostReply(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	contentID, ok := h.parseID(w, r, "id")
	if !ok {
		return
	}

	parentID, err := strconv.ParseInt(chi.URLParam(r, "commentId"), 10, 64)
	if err != nil {
		utils.ResponseBadRequest(w, "Comment ID must be a number", nil)
		return
	}

	var req request.ReplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	thread, err := h.service.Reply(r.Context(), contentID, parentID, userID, req.Text)
	if err != nil {
		h.handleServiceError(w, err, "post reply")
		return
	}

	utils.ResponseCreated(w, "Reply posted successfully", response.ThreadToResponse(thread))
}

func (h *CommentHandler) decodeText(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req request.PostCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return "", false
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return "", false
	}

	return req.Text, true
}

func (h *CommentHandler) parseID(w http.ResponseWriter, r *http.Request, param string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, param))
	if err != nil {
		utils.ResponseBadRequest(w, "Content ID must be a number", nil)
		return 0, false
	}
	return id, true
}

func (h *CommentHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
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
