// Package service provides business logic services for the printer portal.
package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/prn-tf/printer-portal/internal/auth"
	"github.com/prn-tf/printer-portal/internal/domain"
	"github.com/prn-tf/printer-portal/internal/repository"
)

// AuthService handles registration, login and token issuing.
type AuthService struct {
	userRepo   repository.UserRepository
	tokens     *auth.Tokens
	bcryptCost int
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService. A bcryptCost outside the valid
// range falls back to the bcrypt default.
func NewAuthService(userRepo repository.UserRepository, tokens *auth.Tokens, bcryptCost int, logger zerolog.Logger) *AuthService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{
		userRepo:   userRepo,
		tokens:     tokens,
		bcryptCost: bcryptCost,
		logger:     logger.With().Str("service", "auth").Logger(),
	}
}

// Register creates a new account. The returned message carries nothing a
// caller could derive a secret from.
func (s *AuthService) Register(ctx context.Context, email, password string) (string, error) {
	if _, err := mail.ParseAddress(email); err != nil {
		return "", ErrInvalidEmail
	}
	if len(password) < 8 {
		return "", ErrInvalidPassword
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to check email existence")
		return "", fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if exists {
		return "", domain.ErrEmailAlreadyRegistered
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to hash password")
		return "", fmt.Errorf("%w: failed to hash password", ErrInternal)
	}

	user := domain.NewUser(email, string(passwordHash))
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return "", domain.ErrEmailAlreadyRegistered
		}
		s.logger.Error().Err(err).Msg("failed to create user")
		return "", fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info().Str("email", email).Msg("user registered")
	return fmt.Sprintf("User %s registered successfully", email), nil
}

// Login verifies credentials and issues an access token. An unknown email
// and a wrong password fail identically so accounts cannot be enumerated.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		// Log but don't expose whether the email exists
		s.logger.Debug().Str("email", email).Msg("user not found during login")
		return "", domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.logger.Debug().Str("email", email).Msg("invalid password during login")
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Email)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to sign token")
		return "", fmt.Errorf("%w: failed to sign token", ErrInternal)
	}

	s.logger.Info().Str("email", email).Msg("user authenticated")
	return token, nil
}
