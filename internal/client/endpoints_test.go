// ABOUTME: Tests for the declarative endpoint table
// ABOUTME: Verifies every operation is routed with the expected method, path and auth

package client

import (
	"net/http"
	"testing"
)

func TestEndpoints_Table(t *testing.T) {
	tests := []struct {
		name        string
		method      string
		path        string
		auth        bool
		proxyBypass bool
	}{
		{OpRegister, http.MethodPost, "/register", false, false},
		{OpLogin, http.MethodPost, "/login", false, false},
		{OpGetUserInfo, http.MethodGet, "/users/me", true, true},
		{OpSearchUsers, http.MethodGet, "/users", false, false},
		{OpSearchFilms, http.MethodGet, "/films", false, false},
		{OpGetPopularMovies, http.MethodGet, "/films/popular", false, false},
		{OpFollowUser, http.MethodPost, "/users/{id}/follow", true, false},
		{OpGetUserFollowing, http.MethodGet, "/users/{id}/following", false, true},
		{OpAddFilmToWishlist, http.MethodPost, "/wishlists/me/films", true, false},
		{OpGetWishlist, http.MethodGet, "/wishlists/me", true, false},
		{OpGetSuggestions, http.MethodGet, "/films/me/suggestions", true, false},
		{OpGetUserFriends, http.MethodGet, "/users/me/friends", true, false},
		{OpCreateUserGroup, http.MethodPost, "/user-groups", true, false},
		{OpGetUserGroups, http.MethodGet, "/user-groups/me", true, false},
		{OpGetFilmsForGroup, http.MethodGet, "/films/common-for-group/{id}", true, false},
	}

	if len(Endpoints()) != len(tests) {
		t.Errorf("expected %d endpoints, got %d", len(tests), len(Endpoints()))
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ep := endpoint(tc.name)
			if ep.Method != tc.method {
				t.Errorf("expected method %s, got %s", tc.method, ep.Method)
			}
			if ep.Path != tc.path {
				t.Errorf("expected path %s, got %s", tc.path, ep.Path)
			}
			if ep.Auth != tc.auth {
				t.Errorf("expected auth %t, got %t", tc.auth, ep.Auth)
			}
			if ep.ProxyBypass != tc.proxyBypass {
				t.Errorf("expected proxy bypass %t, got %t", tc.proxyBypass, ep.ProxyBypass)
			}
		})
	}
}

func TestEndpoint_ExpandPath(t *testing.T) {
	if got := endpoint(OpGetFilmsForGroup).expandPath(12); got != "/films/common-for-group/12" {
		t.Errorf("unexpected path %s", got)
	}
	if got := endpoint(OpGetWishlist).expandPath(12); got != "/wishlists/me" {
		t.Errorf("path without placeholder changed: %s", got)
	}
}

func TestEndpoint_UnknownPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unknown endpoint")
		}
	}()
	endpoint("nope")
}
