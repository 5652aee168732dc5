package utils

import (
	"os"
	"time"

	"scrimhub/src/config"

	"github.com/golang-jwt/jwt/v4"

	"scrimhub/src/types"
)

func IsProd() bool {
	return os.Getenv("API_ENV") == "production"
}

// GenerateJWT issues a session token for a signed-in user. The sid ties the
// token to its sessions row.
func GenerateJWT(email string, userID string, sid string) (string, error) {
	now := time.Now()
	claims := types.Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ID:        sid,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(config.SESSION_TTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTSecret())
}
