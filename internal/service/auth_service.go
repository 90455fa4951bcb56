package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/club-events-service/internal/auth"
	"github.com/spec-kit/club-events-service/internal/config"
	"github.com/spec-kit/club-events-service/internal/domain"
	"github.com/spec-kit/club-events-service/internal/repository"
	apperrors "github.com/spec-kit/club-events-service/pkg/util"
)

// AuthService coordinates registration and login for both principal types.
// Admins and users are looked up in disjoint stores, so the same username
// may exist once in each.
type AuthService struct {
	admins     repository.AdminRepository
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// AuthDependencies encapsulates repo requirements for auth service.
type AuthDependencies struct {
	AdminRepo repository.AdminRepository
	UserRepo  repository.UserRepository
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		admins:     deps.AdminRepo,
		users:      deps.UserRepo,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AdminTokenTTL(), cfg.Auth.UserTokenTTL()),
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// RegisterAdmin creates a new admin account.
func (s *AuthService) RegisterAdmin(ctx context.Context, username, password string) (*domain.Admin, error) {
	hash, err := s.validateAndHash(ctx, username, password, func(ctx context.Context, username string) error {
		_, err := s.admins.GetByUsername(ctx, username)
		return err
	})
	if err != nil {
		return nil, err
	}

	admin := &domain.Admin{Username: username, PasswordHash: hash}
	if err := s.admins.Create(ctx, admin); err != nil {
		return nil, apperrors.MapError(err)
	}
	return admin, nil
}

// RegisterUser creates a new user account.
func (s *AuthService) RegisterUser(ctx context.Context, username, password string) (*domain.User, error) {
	hash, err := s.validateAndHash(ctx, username, password, func(ctx context.Context, username string) error {
		_, err := s.users.GetByUsername(ctx, username)
		return err
	})
	if err != nil {
		return nil, err
	}

	user := &domain.User{Username: username, PasswordHash: hash}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, apperrors.MapError(err)
	}
	return user, nil
}

// LoginAdmin authenticates an admin and issues a long-lived token.
func (s *AuthService) LoginAdmin(ctx context.Context, username, password string) (string, time.Time, error) {
	admin, err := s.admins.GetByUsername(ctx, username)
	if err != nil {
		return "", time.Time{}, loginFailure(err)
	}
	if err := auth.ComparePassword(admin.PasswordHash, password); err != nil {
		return "", time.Time{}, apperrors.NewUnauthorized("invalid username or password")
	}
	return s.tokenMgr.Issue(admin.ID, admin.Username, domain.RoleAdmin)
}

// LoginUser authenticates a user and issues a short-lived token.
func (s *AuthService) LoginUser(ctx context.Context, username, password string) (string, time.Time, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return "", time.Time{}, loginFailure(err)
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return "", time.Time{}, apperrors.NewUnauthorized("invalid username or password")
	}
	return s.tokenMgr.Issue(user.ID, user.Username, domain.RoleUser)
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) validateAndHash(ctx context.Context, username, password string, lookup func(context.Context, string) error) (string, error) {
	if err := auth.ValidatePassword(password); err != nil {
		return "", apperrors.NewValidationError(err.Error(), nil)
	}

	err := lookup(ctx, username)
	if err == nil {
		return "", apperrors.NewConflict("username already exists", map[string]any{"username": username})
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return "", apperrors.MapError(err)
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return "", apperrors.MapError(err)
	}
	return hash, nil
}

// loginFailure hides whether the username exists; unknown usernames and bad
// passwords are indistinguishable to the caller.
func loginFailure(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewUnauthorized("invalid username or password")
	}
	return apperrors.MapError(err)
}
