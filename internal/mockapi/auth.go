// ABOUTME: Bearer token issuing and validation for the test backend
// ABOUTME: HS256 JWTs whose subject is the numeric user id

package mockapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is the lifetime of issued tokens
const DefaultTokenTTL = 24 * time.Hour

// contextKey is a private type for context keys to avoid collisions
type contextKey string

const userIDKey contextKey = "userID"

// Claims are the JWT claims issued at login
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

type tokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func (ti *tokenIssuer) issue(userID int64, username string) (string, error) {
	now := ti.now()
	claims := &Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ti.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(ti.secret)
}

// validate returns the user id carried by a token
func (ti *tokenIssuer) validate(tokenStr string) (int64, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (any, error) {
		return ti.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(ti.now),
	)
	if err != nil {
		return 0, err
	}
	if !token.Valid {
		return 0, fmt.Errorf("invalid token")
	}
	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid subject %q", claims.Subject)
	}
	return id, nil
}

// requireAuth rejects requests without a valid bearer token
func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tokenStr, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || tokenStr == "" {
			writeJSONError(w, "Missing auth token", http.StatusUnauthorized)
			return
		}

		id, err := s.tokens.validate(tokenStr)
		if err != nil {
			writeJSONError(w, "Invalid auth token", http.StatusUnauthorized)
			return
		}
		if _, err := s.state.user(id); err != nil {
			writeJSONError(w, "Unknown user", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, id)
		next(w, r.WithContext(ctx))
	}
}

// callerID returns the authenticated user id from the request context
func callerID(r *http.Request) int64 {
	id, _ := r.Context().Value(userIDKey).(int64)
	return id
}
