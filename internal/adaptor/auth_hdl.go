package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"streaming-catalog/internal/dto/request"
	"streaming-catalog/internal/usecase"
	"streaming-catalog/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// Login handles POST /api/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.Login(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "login")
		return
	}

	utils.ResponseSuccess(w, "Login successful", resp)
}

// Register handles POST /api/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.Register(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "register")
		return
	}

	utils.ResponseCreated(w, "Account created successfully", resp)
}

// Logout handles POST /api/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := utils.GetTokenFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := h.service.Logout(r.Context(), token); err != nil {
		h.handleServiceError(w, err, "logout")
		return
	}

	utils.ResponseSuccess(w, "Logout successful", nil)
}

// RecoverPassword handles POST /api/recover-password
func (h *AuthHandler) RecoverPassword(w http.ResponseWriter, r *http.Request) {
	var req request.RecoverPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	ack, err := h.service.RecoverPassword(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "recover password")
		return
	}

	utils.ResponseSuccess(w, ack, nil)
}

// ResetPassword handles POST /api/reset-password
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req request.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	ack, err := h.service.ResetPassword(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "reset password")
		return
	}

	utils.ResponseSuccess(w, ack, nil)
}

func (h *AuthHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	// Both credential failures answer 401 with their own message so the
	// client can tell them apart
	case errors.Is(err, usecase.ErrEmailNotFound), errors.Is(err, usecase.ErrInvalidPassword):
		h.log.Warn(operation+" failed - invalid credentials",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseUnauthorized(w, err.Error())

	case strings.Contains(err.Error(), "validation failed"),
		strings.Contains(err.Error(), "already registered"),
		strings.Contains(err.Error(), "invalid token"):
		h.log.Warn(operation+" failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
