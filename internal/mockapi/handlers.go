// ABOUTME: HTTP handlers for every FilmFit endpoint of the test backend
// ABOUTME: Decode the request, call into state and map errors to JSON responses

package mockapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/nsttdn/Film-fit/internal/client"
)

const maxRequestBody = 1 << 20

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSONError(w, "Invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

// pathID parses the {id} URL parameter
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeJSONError(w, "Invalid id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// queryInt reads an optional non-negative integer parameter
func queryInt(r *http.Request, key string, def int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, errors.New("invalid " + key)
	}
	return n, nil
}

func writeStateError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errNotFound):
		writeJSONError(w, "Not found", http.StatusNotFound)
	case errors.Is(err, errConflict):
		writeJSONError(w, "User already exists", http.StatusConflict)
	case errors.Is(err, errInvalid):
		writeJSONError(w, "Invalid request", http.StatusBadRequest)
	case errors.Is(err, errBadPassword):
		writeJSONError(w, "Invalid email or password", http.StatusUnauthorized)
	case errors.Is(err, errNotGroupUser):
		writeJSONError(w, "Not a member of this group", http.StatusForbidden)
	default:
		writeJSONError(w, "Internal error", http.StatusInternalServerError)
	}
}

func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	var req client.RegisterRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if _, err := s.state.register(req.Username, req.Email, req.Password); err != nil {
		writeStateError(w, err)
		return
	}
	writeJSON(w, client.MessageResponse{Message: "User registered successfully"}, http.StatusCreated)
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	var req client.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}
	id, err := s.state.authenticate(req.Email, req.Password)
	if err != nil {
		writeStateError(w, err)
		return
	}
	token, err := s.IssueToken(id)
	if err != nil {
		writeStateError(w, err)
		return
	}
	writeJSON(w, client.LoginResponse{Token: token, Message: "Login successful"}, http.StatusOK)
}

func (s *Server) GetUserInfo(w http.ResponseWriter, r *http.Request) {
	u, err := s.state.user(callerID(r))
	if err != nil {
		writeStateError(w, err)
		return
	}
	writeJSON(w, u, http.StatusOK)
}

func (s *Server) SearchUsers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.state.searchUsers(r.URL.Query().Get("namePart")), http.StatusOK)
}

func (s *Server) FollowUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := s.state.follow(callerID(r), id); err != nil {
		writeStateError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) GetUserFollowing(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	following, err := s.state.following(id)
	if err != nil {
		writeStateError(w, err)
		return
	}
	writeJSON(w, following, http.StatusOK)
}

func (s *Server) GetUserFriends(w http.ResponseWriter, r *http.Request) {
	friends, err := s.state.friends(callerID(r))
	if err != nil {
		writeStateError(w, err)
		return
	}
	writeJSON(w, friends, http.StatusOK)
}

// Paging bounds for film search; page*size stays far from overflow
const (
	maxPage     = 10000
	maxPageSize = 100
)

func (s *Server) SearchFilms(w http.ResponseWriter, r *http.Request) {
	def := client.DefaultPageable()
	page, err := queryInt(r, "page", def.Page)
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if page > maxPage {
		writeJSONError(w, "invalid page", http.StatusBadRequest)
		return
	}
	size, err := queryInt(r, "size", def.Size)
	if err != nil || size == 0 || size > maxPageSize {
		writeJSONError(w, "invalid size", http.StatusBadRequest)
		return
	}
	sortKeys := r.URL.Query()["sort"]
	if len(sortKeys) == 0 {
		sortKeys = def.Sort
	}

	writeJSON(w, s.state.searchFilms(r.URL.Query().Get("titlePart"), page, size, sortKeys), http.StatusOK)
}

func (s *Server) GetPopularMovies(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.state.popular(), http.StatusOK)
}

func (s *Server) GetSuggestions(w http.ResponseWriter, r *http.Request) {
	films, err := s.state.suggestions(callerID(r))
	if err != nil {
		writeStateError(w, err)
		return
	}
	writeJSON(w, films, http.StatusOK)
}

func (s *Server) GetFilmsForGroup(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	films, err := s.state.commonFilms(callerID(r), id)
	if err != nil {
		writeStateError(w, err)
		return
	}
	writeJSON(w, films, http.StatusOK)
}

func (s *Server) GetWishlist(w http.ResponseWriter, r *http.Request) {
	wl, err := s.state.wishlist(callerID(r))
	if err != nil {
		writeStateError(w, err)
		return
	}
	writeJSON(w, wl, http.StatusOK)
}

func (s *Server) AddFilmToWishlist(w http.ResponseWriter, r *http.Request) {
	filmID, err := strconv.ParseInt(r.URL.Query().Get("filmId"), 10, 64)
	if err != nil || filmID <= 0 {
		writeJSONError(w, "Invalid filmId", http.StatusBadRequest)
		return
	}
	if err := s.state.addToWishlist(callerID(r), filmID); err != nil {
		writeStateError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) CreateUserGroup(w http.ResponseWriter, r *http.Request) {
	var req client.CreateGroupRequest
	if !decodeBody(w, r, &req) {
		return
	}
	g, err := s.state.createGroup(callerID(r), req.Name, req.UserIDs)
	if err != nil {
		writeStateError(w, err)
		return
	}
	writeJSON(w, g, http.StatusCreated)
}

func (s *Server) GetUserGroups(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.state.groupsOf(callerID(r)), http.StatusOK)
}
