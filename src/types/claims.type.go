package types

import "github.com/golang-jwt/jwt/v4"

// Claims is the session token payload. Subject carries the user id, ID (jti)
// carries the session row sid.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}
