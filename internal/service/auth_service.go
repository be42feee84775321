package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/Raghvendrath3/test-generation-app/internal/dto"
	"github.com/Raghvendrath3/test-generation-app/internal/models"
	"github.com/Raghvendrath3/test-generation-app/internal/repository"
)

// ErrInvalidCredentials indicates the email/password pair did not match.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrEmailAlreadyRegistered indicates a duplicate registration email.
var ErrEmailAlreadyRegistered = errors.New("email already registered")

// AuthService exposes account registration and the credential check.
type AuthService interface {
	Register(ctx context.Context, payload dto.RegisterRequest) (dto.AuthResponse, error)
	Login(ctx context.Context, payload dto.LoginRequest) (dto.AuthResponse, error)
}

type authService struct {
	repo      repository.UserRepository
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewAuthService builds a new auth service.
func NewAuthService(repo repository.UserRepository, validate *validator.Validate, logger zerolog.Logger) AuthService {
	return &authService{
		repo:      repo,
		validator: validate,
		logger:    logger.With().Str("component", "auth_service").Logger(),
	}
}

func (s *authService) Register(ctx context.Context, payload dto.RegisterRequest) (dto.AuthResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.AuthResponse{}, err
	}

	if _, err := s.repo.GetByEmail(ctx, payload.Email); err == nil {
		return dto.AuthResponse{}, ErrEmailAlreadyRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.AuthResponse{}, err
	}

	prefix := models.PrefixStudent
	if payload.Role == models.RoleTeacher {
		prefix = models.PrefixTeacher
	}

	user := models.User{
		ID:           models.NewID(prefix),
		Name:         payload.Name,
		Email:        payload.Email,
		PasswordHash: hashPassword(payload.Password),
		Role:         payload.Role,
	}

	if err := s.repo.Create(ctx, &user); err != nil {
		return dto.AuthResponse{}, err
	}

	s.logger.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("user registered")

	return dto.NewAuthResponse(user), nil
}

func (s *authService) Login(ctx context.Context, payload dto.LoginRequest) (dto.AuthResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.AuthResponse{}, err
	}

	user, err := s.repo.GetByEmail(ctx, payload.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.AuthResponse{}, ErrInvalidCredentials
		}

		return dto.AuthResponse{}, err
	}

	if user.PasswordHash != hashPassword(payload.Password) {
		return dto.AuthResponse{}, ErrInvalidCredentials
	}

	return dto.NewAuthResponse(user), nil
}

func hashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
