package utils

import (
	"time"

	"github.com/dgrijalva/jwt-go"
)

// Claims carries the caller identity issued by the external identity
// service. Subject holds the external (cognito) id.
type Claims struct {
	Email string `json:"email"`
	jwt.StandardClaims
}

// GenerateJWT signs a token for the given identity. The service itself only
// verifies tokens; this exists for local tooling and tests.
func GenerateJWT(key []byte, sub, email string) (string, error) {
	expirationTime := time.Now().Add(24 * time.Hour)
	claims := &Claims{
		Email: email,
		StandardClaims: jwt.StandardClaims{
			Subject:   sub,
			ExpiresAt: expirationTime.Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(key)
}
