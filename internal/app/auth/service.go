// Package auth supplies the signed-in principal the planner engine is
// scoped to: a single in-process session plus the minimal
// register/login flow establishing it.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ahassan/unisync/internal/app/models"
	"github.com/ahassan/unisync/internal/pkg/apperrors"
	pkgauth "github.com/ahassan/unisync/internal/pkg/auth"
)

// principalRepository is the storage the service needs.
type principalRepository interface {
	CreatePrincipal(ctx context.Context, p *models.Principal) error
	GetPrincipalByEmail(ctx context.Context, email string) (*models.Principal, error)
}

// Service signs principals up and in, issuing session tokens and
// updating the process session.
type Service struct {
	repo    principalRepository
	jwt     *pkgauth.JWTService
	session *Session
	logger  zerolog.Logger
}

// NewService creates a new auth Service.
func NewService(repo principalRepository, jwt *pkgauth.JWTService, session *Session, logger zerolog.Logger) *Service {
	return &Service{
		repo:    repo,
		jwt:     jwt,
		session: session,
		logger:  logger,
	}
}

// Register creates a principal, signs it in and returns a session
// token.
func (s *Service) Register(ctx context.Context, email, password string) (token string, expiresIn int, err error) {
	hash, err := pkgauth.HashPassword(password)
	if err != nil {
		return "", 0, fmt.Errorf("failed to hash password: %w", err)
	}

	principal := &models.Principal{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
	}

	if err := s.repo.CreatePrincipal(ctx, principal); err != nil {
		return "", 0, err
	}

	token, expiresIn, err = s.jwt.GenerateToken(principal.ID, principal.Email)
	if err != nil {
		return "", 0, err
	}

	s.session.SignIn(principal.ID, principal.Email)
	s.logger.Info().Str("principalID", principal.ID).Msg("Principal registered")
	return token, expiresIn, nil
}

// Login verifies credentials, signs the principal in and returns a
// session token.
func (s *Service) Login(ctx context.Context, email, password string) (token string, expiresIn int, err error) {
	principal, err := s.repo.GetPrincipalByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrPrincipalNotFound) {
			return "", 0, apperrors.ErrInvalidCredentials
		}
		return "", 0, err
	}

	if !pkgauth.CheckPassword(principal.PasswordHash, password) {
		return "", 0, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err = s.jwt.GenerateToken(principal.ID, principal.Email)
	if err != nil {
		return "", 0, err
	}

	s.session.SignIn(principal.ID, principal.Email)
	s.logger.Info().Str("principalID", principal.ID).Msg("Principal logged in")
	return token, expiresIn, nil
}

// Logout clears the process session. Previously issued tokens simply
// stop matching the session.
func (s *Service) Logout() {
	s.session.SignOut()
	s.logger.Info().Msg("Principal logged out")
}
