// ABOUTME: Declarative route table for the test backend
// ABOUTME: Defines every FilmFit endpoint with its method, auth requirement and handler

package mockapi

import "net/http"

// Route defines an API endpoint with its HTTP method and handler.
type Route struct {
	Method  string           // HTTP method (GET, POST, etc.)
	Path    string           // chi pattern (e.g., "/users/{id}/follow")
	Auth    bool             // Requires a bearer token
	Handler http.HandlerFunc // Handler function
}

// Routes returns all API routes for registration.
func (s *Server) Routes() []Route {
	return []Route{
		// Account
		{Method: http.MethodPost, Path: "/register", Handler: s.Register},
		{Method: http.MethodPost, Path: "/login", Handler: s.Login},

		// Users
		{Method: http.MethodGet, Path: "/users", Handler: s.SearchUsers},
		{Method: http.MethodGet, Path: "/users/me", Auth: true, Handler: s.GetUserInfo},
		{Method: http.MethodGet, Path: "/users/me/friends", Auth: true, Handler: s.GetUserFriends},
		{Method: http.MethodPost, Path: "/users/{id}/follow", Auth: true, Handler: s.FollowUser},
		{Method: http.MethodGet, Path: "/users/{id}/following", Handler: s.GetUserFollowing},

		// Films
		{Method: http.MethodGet, Path: "/films", Handler: s.SearchFilms},
		{Method: http.MethodGet, Path: "/films/popular", Handler: s.GetPopularMovies},
		{Method: http.MethodGet, Path: "/films/me/suggestions", Auth: true, Handler: s.GetSuggestions},
		{Method: http.MethodGet, Path: "/films/common-for-group/{id}", Auth: true, Handler: s.GetFilmsForGroup},

		// Wishlist
		{Method: http.MethodGet, Path: "/wishlists/me", Auth: true, Handler: s.GetWishlist},
		{Method: http.MethodPost, Path: "/wishlists/me/films", Auth: true, Handler: s.AddFilmToWishlist},

		// Groups
		{Method: http.MethodPost, Path: "/user-groups", Auth: true, Handler: s.CreateUserGroup},
		{Method: http.MethodGet, Path: "/user-groups/me", Auth: true, Handler: s.GetUserGroups},
	}
}
