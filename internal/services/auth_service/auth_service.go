package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"eventcraft/internal/lib/jwt"
	"eventcraft/internal/lib/logger/sl"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService guards the admin surface. There is one operator account,
// configured as a bcrypt hash; a successful login yields a short-lived JWT.
type AuthService struct {
	log          *slog.Logger
	passwordHash []byte
	tokenSecret  string
	tokenTTL     time.Duration
}

func NewAuthService(log *slog.Logger, passwordHash, tokenSecret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		log:          log,
		passwordHash: []byte(passwordHash),
		tokenSecret:  tokenSecret,
		tokenTTL:     tokenTTL,
	}
}

func (s *AuthService) Login(ctx context.Context, password string) (string, error) {
	const op = "service.AuthService.Login"
	log := s.log.With(slog.String("op", op))

	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		log.Warn("invalid credentials", sl.Err(err))
		return "", fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	token, err := jwt.NewAdminToken(s.tokenSecret, s.tokenTTL)
	if err != nil {
		log.Error("failed to generate token", sl.Err(err))
		return "", fmt.Errorf("%s: %w", op, err)
	}

	log.Info("admin logged in")
	return token, nil
}
