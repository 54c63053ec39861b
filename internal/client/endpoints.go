// ABOUTME: Declarative table of FilmFit API endpoints
// ABOUTME: Defines method, path, auth requirement and response shape per operation

package client

import (
	"net/http"
	"strconv"
	"strings"
)

// shape is the expected top-level kind of a response body
type shape int

const (
	shapeNone shape = iota
	shapeObject
	shapeArray
)

// Operation names
const (
	OpRegister          = "register"
	OpLogin             = "login"
	OpGetUserInfo       = "getUserInfo"
	OpSearchUsers       = "searchUsers"
	OpSearchFilms       = "searchFilms"
	OpGetPopularMovies  = "getPopularMovies"
	OpFollowUser        = "followUser"
	OpGetUserFollowing  = "getUserFollowing"
	OpAddFilmToWishlist = "addFilmToWishlist"
	OpGetWishlist       = "getWishlist"
	OpGetSuggestions    = "getSuggestions"
	OpGetUserFriends    = "getUserFriends"
	OpCreateUserGroup   = "createUserGroup"
	OpGetUserGroups     = "getUserGroups"
	OpGetFilmsForGroup  = "getFilmsForGroup"
)

// Endpoint defines a remote operation
type Endpoint struct {
	Name        string // Operation name (e.g., "getWishlist")
	Method      string // HTTP method
	Path        string // URL path, "{id}" is replaced by the path argument
	Auth        bool   // Requires a bearer token
	ProxyBypass bool   // Sends the development proxy bypass header
	shape       shape
}

// Endpoints returns every operation the gateway can perform
func Endpoints() []Endpoint {
	return []Endpoint{
		// Account
		{Name: OpRegister, Method: http.MethodPost, Path: "/register", shape: shapeObject},
		{Name: OpLogin, Method: http.MethodPost, Path: "/login", shape: shapeObject},

		// Users
		{Name: OpGetUserInfo, Method: http.MethodGet, Path: "/users/me", Auth: true, ProxyBypass: true, shape: shapeObject},
		{Name: OpSearchUsers, Method: http.MethodGet, Path: "/users", shape: shapeArray},
		{Name: OpFollowUser, Method: http.MethodPost, Path: "/users/{id}/follow", Auth: true, shape: shapeNone},
		{Name: OpGetUserFollowing, Method: http.MethodGet, Path: "/users/{id}/following", ProxyBypass: true, shape: shapeArray},
		{Name: OpGetUserFriends, Method: http.MethodGet, Path: "/users/me/friends", Auth: true, shape: shapeArray},

		// Films
		{Name: OpSearchFilms, Method: http.MethodGet, Path: "/films", shape: shapeObject},
		{Name: OpGetPopularMovies, Method: http.MethodGet, Path: "/films/popular", shape: shapeArray},
		{Name: OpGetSuggestions, Method: http.MethodGet, Path: "/films/me/suggestions", Auth: true, shape: shapeArray},
		{Name: OpGetFilmsForGroup, Method: http.MethodGet, Path: "/films/common-for-group/{id}", Auth: true, shape: shapeArray},

		// Wishlist
		{Name: OpAddFilmToWishlist, Method: http.MethodPost, Path: "/wishlists/me/films", Auth: true, shape: shapeNone},
		{Name: OpGetWishlist, Method: http.MethodGet, Path: "/wishlists/me", Auth: true, shape: shapeObject},

		// Groups
		{Name: OpCreateUserGroup, Method: http.MethodPost, Path: "/user-groups", Auth: true, shape: shapeObject},
		{Name: OpGetUserGroups, Method: http.MethodGet, Path: "/user-groups/me", Auth: true, shape: shapeArray},
	}
}

var endpointsByName = func() map[string]Endpoint {
	m := make(map[string]Endpoint)
	for _, ep := range Endpoints() {
		m[ep.Name] = ep
	}
	return m
}()

// endpoint returns the table entry for an operation; unknown names are a programming error
func endpoint(name string) Endpoint {
	ep, ok := endpointsByName[name]
	if !ok {
		panic("client: unknown endpoint " + name)
	}
	return ep
}

// expandPath substitutes the path argument into the endpoint path
func (ep Endpoint) expandPath(id int64) string {
	if !strings.Contains(ep.Path, "{id}") {
		return ep.Path
	}
	return strings.Replace(ep.Path, "{id}", strconv.FormatInt(id, 10), 1)
}
