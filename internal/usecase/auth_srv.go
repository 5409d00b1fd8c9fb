package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"streaming-catalog/internal/data/entity"
	"streaming-catalog/internal/data/repository"
	"streaming-catalog/internal/dto/request"
	"streaming-catalog/internal/dto/response"
	"streaming-catalog/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// The two authentication failure kinds stay distinguishable so the client can
// show a specific message for each.
var (
	ErrEmailNotFound   = errors.New("email not found")
	ErrInvalidPassword = errors.New("invalid password")
)

// Acknowledgement shown by the password flows that are deliberate stubs.
const passwordFlowAck = "Funcionalidade em construção. Nenhuma alteração foi realizada."

type AuthService interface {
	Authenticate(ctx context.Context, email, password string) (*entity.User, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Logout(ctx context.Context, token string) error
	RecoverPassword(ctx context.Context, req *request.RecoverPasswordRequest) (string, error)
	ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) (string, error)
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log,
	}
}

// Authenticate looks the user up by exact email and verifies the password,
// distinguishing "email not found" from "invalid password".
func (s *authService) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to find user by email", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("failed to find user")
	}
	if user == nil {
		s.log.Warn("Login attempt for unknown email", zap.String("email", email))
		return nil, ErrEmailNotFound
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return nil, ErrInvalidPassword
	}

	return user, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Check credentials
	user, err := s.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	// 3. Create session
	session, err := s.createSession(ctx, user.ID)
	if err != nil {
		s.log.Error("Failed to create session", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("failed to create session")
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	resp := response.AuthToResponse(user, session)
	return &resp, nil
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Check email is still free
	existing, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to check email")
	}
	if existing != nil {
		return nil, fmt.Errorf("email already registered")
	}

	// 3. Hash password
	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to process password")
	}

	// 4. Create user with an empty list
	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashed,
		MyList:       []int{},
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to create account")
	}

	// 5. Auto login after register
	session, err := s.createSession(ctx, user.ID)
	if err != nil {
		s.log.Warn("Failed to create session after register",
			zap.Error(err), zap.String("user_id", user.ID.String()))
		// Continue without a session
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	resp := response.AuthToResponse(user, session)
	return &resp, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	// Session tokens are UUIDs; reject anything else before touching the store
	if _, err := uuid.Parse(token); err != nil {
		s.log.Warn("Invalid token format", zap.String("token", token), zap.Error(err))
		return fmt.Errorf("invalid token format")
	}

	if err := s.repo.Session.Revoke(ctx, token); err != nil {
		s.log.Error("Failed to revoke session", zap.Error(err), zap.String("token", token))
		return fmt.Errorf("failed to logout")
	}

	s.log.Info("User logged out", zap.String("token", token))
	return nil
}

// RecoverPassword acknowledges the request without mutating anything. The flow
// exists in the client but was never implemented behind it.
func (s *authService) RecoverPassword(ctx context.Context, req *request.RecoverPasswordRequest) (string, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return "", fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	s.log.Info("Password recovery acknowledged", zap.String("email", req.Email))
	return passwordFlowAck, nil
}

// ResetPassword acknowledges the request without mutating anything.
func (s *authService) ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) (string, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return "", fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	s.log.Info("Password reset acknowledged")
	return passwordFlowAck, nil
}

func (s *authService) createSession(ctx context.Context, userID uuid.UUID) (*entity.Session, error) {
	now := time.Now()
	session := &entity.Session{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		UserID:    userID,
		Token:     uuid.New(),
		ExpiresAt: now.Add(time.Duration(s.config.Session.ExpiryHours) * time.Hour),
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}
