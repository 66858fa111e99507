package httpserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Claims carried by bearer tokens issued for readers.
type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

func SignToken(secret []byte, userID string, ttl time.Duration) (string, error) {
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func ParseToken(secret []byte, tokenStr string) (*Claims, error) {
	tok, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(_ *jwt.Token) (any, error) {
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

// resolveUserID returns the caller identity, or "" for anonymous requests.
// A valid bearer token wins; the X-User-Id header is the fallback for
// internal callers and tests.
func (s *Server) resolveUserID(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		claims, err := ParseToken(s.jwtSecret, strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			s.logger.Warn("bearer token rejected",
				"event", "http_bearer_token_rejected",
				"module", "internal/platform/httpserver",
				"layer", "platform",
				"error", err.Error(),
			)
		} else if userID := strings.TrimSpace(claims.UserID); userID != "" {
			return userID
		}
	}
	return strings.TrimSpace(r.Header.Get("X-User-Id"))
}
