package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateAccess creates a signed HS256 token carrying userID both as the
// standard subject and under user.id for older clients.
func GenerateAccess(secret, userID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  userID,
		"user": map[string]string{"id": userID},
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}
