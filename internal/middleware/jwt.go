package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/obaro89/afridev-backend/internal/domain"
	"github.com/obaro89/afridev-backend/internal/transport"
)

// LegacyTokenHeader is still sent by older web clients.
const LegacyTokenHeader = "x-auth-token"

// JWT returns the Auth Gate: it validates an HS256 token and attaches the
// subject to the request context. No store lookup happens here.
func JWT(secret string) func(http.Handler) http.Handler {
	key := []byte(secret)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, err := extractToken(r)
			if err != nil {
				transport.WriteError(w, r, err)
				return
			}

			uid, err := verifyToken(tokenString, key)
			if err != nil {
				transport.WriteError(w, r, domain.ErrInvalidToken)
				return
			}

			ctx := InjectUserID(r.Context(), uid)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractToken(r *http.Request) (string, error) {
	if header := r.Header.Get("Authorization"); header != "" {
		parts := strings.Fields(header)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return "", domain.ErrInvalidToken
		}
		return parts[1], nil
	}
	if tok := strings.TrimSpace(r.Header.Get(LegacyTokenHeader)); tok != "" {
		return tok, nil
	}
	return "", domain.ErrUnauthenticated
}

// verifyToken returns the user id carried in sub, or in user.id for tokens
// minted before sub was added.
func verifyToken(tokenString string, key []byte) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return key, nil
	}, jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return "", errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}
	if sub, ok := claims["sub"].(string); ok && sub != "" {
		return sub, nil
	}
	if user, ok := claims["user"].(map[string]any); ok {
		if id, ok := user["id"].(string); ok && id != "" {
			return id, nil
		}
	}
	return "", errors.New("token has no subject")
}
