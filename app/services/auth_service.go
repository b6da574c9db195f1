package services

import (
	"errors"
	"fmt"

	"github.com/ovenfresh/cookieshop/app/models"
	"github.com/ovenfresh/cookieshop/app/repositories"
	"github.com/ovenfresh/cookieshop/config"
	"github.com/ovenfresh/cookieshop/pkg/auth"
)

var (
	// ErrInvalidCredentials is returned when phone or password do not match.
	ErrInvalidCredentials = errors.New("services: invalid credentials")
	// ErrAdminNotFound is returned when no admin row exists in the store.
	ErrAdminNotFound = errors.New("services: admin not found")
)

// AuthService implements the login flow. Authorization is deliberately
// "one phone number equals the one admin": the submitted phone is compared
// against the process-wide ADMIN_PHONE, not a per-user column.
type AuthService struct {
	users *repositories.UserRepository
}

func NewAuthService(users *repositories.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// VerifyAdmin checks the submitted phone and password against the configured
// admin phone and the stored bcrypt hash.
func (s *AuthService) VerifyAdmin(phone, password string) (models.User, error) {
	if config.AdminPhone() == "" {
		return models.User{}, fmt.Errorf("services: ADMIN_PHONE not set")
	}

	admin, err := s.users.FindAdmin()
	if errors.Is(err, repositories.ErrNotFound) {
		return models.User{}, ErrAdminNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("services: find admin: %w", err)
	}

	if phone != config.AdminPhone() || !auth.CheckPassword(admin.Password, password) {
		return models.User{}, ErrInvalidCredentials
	}

	return admin, nil
}

// Login verifies the credentials and issues both tokens. The refresh token
// carries the admin flag so verification can re-derive it without a
// database lookup.
func (s *AuthService) Login(phone, password string) (accessToken, refreshToken string, err error) {
	admin, err := s.VerifyAdmin(phone, password)
	if err != nil {
		return "", "", err
	}

	accessToken, err = auth.GenerateAccessToken(admin.ID, true)
	if err != nil {
		return "", "", fmt.Errorf("services: access token: %w", err)
	}

	refreshToken, err = auth.GenerateRefreshToken(admin.ID, true)
	if err != nil {
		return "", "", fmt.Errorf("services: refresh token: %w", err)
	}

	return accessToken, refreshToken, nil
}
