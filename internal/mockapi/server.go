// ABOUTME: In-process FilmFit backend used by integration tests and the dev-server command
// ABOUTME: Wires the route table onto a chi router with recovery and request logging

package mockapi

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/crypto/bcrypt"
)

// Options configures a Server
type Options struct {
	Secret     []byte        // HS256 signing key; random when empty
	TokenTTL   time.Duration // default: DefaultTokenTTL
	BcryptCost int           // default: bcrypt.DefaultCost
	Now        func() time.Time
}

// Server holds the backend state and its HTTP handler
type Server struct {
	state  *state
	tokens *tokenIssuer
	router chi.Router
}

// New creates a server with an empty user base and the seeded film catalogue
func New(opts Options) (*Server, error) {
	secret := opts.Secret
	if len(secret) == 0 {
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			return nil, fmt.Errorf("generate signing key: %w", err)
		}
	}
	ttl := opts.TokenTTL
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	cost := opts.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	s := &Server{
		state:  newState(cost),
		tokens: &tokenIssuer{secret: secret, ttl: ttl, now: now},
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(logRequest)
	for _, rt := range s.Routes() {
		h := rt.Handler
		if rt.Auth {
			h = s.requireAuth(h)
		}
		r.Method(rt.Method, rt.Path, h)
	}
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSONError(w, "Not found", http.StatusNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
	})
	s.router = r

	return s, nil
}

// Handler returns the HTTP handler serving every route
func (s *Server) Handler() http.Handler {
	return s.router
}

// AddUser registers an account directly, bypassing HTTP
func (s *Server) AddUser(username, email, password string) (int64, error) {
	return s.state.register(username, email, password)
}

// Follow records that followerID follows targetID
func (s *Server) Follow(followerID, targetID int64) error {
	return s.state.follow(followerID, targetID)
}

// Wish adds a film to a user's wishlist
func (s *Server) Wish(userID, filmID int64) error {
	return s.state.addToWishlist(userID, filmID)
}

// IssueToken returns a bearer token for an existing user
func (s *Server) IssueToken(userID int64) (string, error) {
	u, err := s.state.user(userID)
	if err != nil {
		return "", err
	}
	return s.tokens.issue(u.ID, u.Username)
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down gracefully
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	slog.Info("Server shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
