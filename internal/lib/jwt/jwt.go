package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// NewAdminToken issues the token the admin UI sends on protected routes.
// There is a single operator role, so the claims stay minimal.
func NewAdminToken(secret string, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": "admin",
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(ttl).Unix(),
	})

	return token.SignedString([]byte(secret))
}
