package services_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	services "eventcraft/internal/services/auth_service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("opensesame"), bcrypt.MinCost)
	require.NoError(t, err)

	svc := services.NewAuthService(discardLogger(), string(hash), "test-secret", time.Hour)

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "wrong")
		require.ErrorIs(t, err, services.ErrInvalidCredentials)
	})

	t.Run("correct password yields a signed admin token", func(t *testing.T) {
		tokenString, err := svc.Login(ctx, "opensesame")
		require.NoError(t, err)
		require.NotEmpty(t, tokenString)

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			return []byte("test-secret"), nil
		})
		require.NoError(t, err)
		require.True(t, token.Valid)

		claims, ok := token.Claims.(jwt.MapClaims)
		require.True(t, ok)
		assert.Equal(t, "admin", claims["role"])

		exp, err := claims.GetExpirationTime()
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now().Add(time.Hour), exp.Time, time.Minute)
	})

	t.Run("token signed with another secret is rejected", func(t *testing.T) {
		tokenString, err := svc.Login(ctx, "opensesame")
		require.NoError(t, err)

		_, err = jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			return []byte("other-secret"), nil
		})
		require.Error(t, err)
	})
}
