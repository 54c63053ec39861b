// ABOUTME: Typed FilmFit API operations, one method per endpoint
// ABOUTME: Each call is independent: no retries, no token refresh, no queueing

package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Register calls POST /register
func (c *Client) Register(ctx context.Context, input RegisterRequest) (*MessageResponse, error) {
	ep := endpoint(OpRegister)
	data, err := c.do(ctx, ep, request{body: input})
	if err != nil {
		return nil, err
	}
	return decodeObject[MessageResponse](ep, data)
}

// Login calls POST /login; the caller persists the returned token
func (c *Client) Login(ctx context.Context, input LoginRequest) (*LoginResponse, error) {
	ep := endpoint(OpLogin)
	data, err := c.do(ctx, ep, request{body: input})
	if err != nil {
		return nil, err
	}
	return decodeObject[LoginResponse](ep, data)
}

// GetUserInfo calls GET /users/me
func (c *Client) GetUserInfo(ctx context.Context, token string) (*User, error) {
	ep := endpoint(OpGetUserInfo)
	data, err := c.do(ctx, ep, request{token: token})
	if err != nil {
		return nil, err
	}
	return decodeObject[User](ep, data)
}

// SearchUsers calls GET /users with a username fragment
func (c *Client) SearchUsers(ctx context.Context, namePart string) ([]User, error) {
	ep := endpoint(OpSearchUsers)
	data, err := c.do(ctx, ep, request{query: url.Values{"namePart": {namePart}}})
	if err != nil {
		return nil, err
	}
	return decodeList[User](ep, data)
}

// SearchFilms calls GET /films with a title fragment and paging
func (c *Client) SearchFilms(ctx context.Context, titlePart string, page Pageable) (*FilmPage, error) {
	ep := endpoint(OpSearchFilms)
	query := url.Values{
		"titlePart": {titlePart},
		"page":      {strconv.Itoa(page.Page)},
		"size":      {strconv.Itoa(page.Size)},
	}
	for _, s := range page.Sort {
		query.Add("sort", s)
	}

	data, err := c.do(ctx, ep, request{query: query})
	if err != nil {
		return nil, err
	}
	return decodeObject[FilmPage](ep, data)
}

// GetPopularMovies calls GET /films/popular; order is the server's
func (c *Client) GetPopularMovies(ctx context.Context) ([]PopularMovie, error) {
	ep := endpoint(OpGetPopularMovies)
	data, err := c.do(ctx, ep, request{})
	if err != nil {
		return nil, err
	}
	return decodeList[PopularMovie](ep, data)
}

// FollowUser calls POST /users/{id}/follow
func (c *Client) FollowUser(ctx context.Context, token string, userID int64) error {
	ep := endpoint(OpFollowUser)
	if userID <= 0 {
		return fmt.Errorf("%s: %w: %d", ep.Name, ErrInvalidID, userID)
	}
	_, err := c.do(ctx, ep, request{token: token, pathID: userID})
	return err
}

// GetUserFollowing calls GET /users/{id}/following
func (c *Client) GetUserFollowing(ctx context.Context, userID int64) ([]UserFollowing, error) {
	ep := endpoint(OpGetUserFollowing)
	if userID <= 0 {
		return nil, fmt.Errorf("%s: %w: %d", ep.Name, ErrInvalidID, userID)
	}
	data, err := c.do(ctx, ep, request{pathID: userID})
	if err != nil {
		return nil, err
	}
	return decodeList[UserFollowing](ep, data)
}

// AddFilmToWishlist calls POST /wishlists/me/films?filmId=
func (c *Client) AddFilmToWishlist(ctx context.Context, token string, filmID int64) error {
	ep := endpoint(OpAddFilmToWishlist)
	if filmID <= 0 {
		return fmt.Errorf("%s: %w: %d", ep.Name, ErrInvalidID, filmID)
	}
	query := url.Values{"filmId": {strconv.FormatInt(filmID, 10)}}
	_, err := c.do(ctx, ep, request{token: token, query: query})
	return err
}

// GetWishlist calls GET /wishlists/me
func (c *Client) GetWishlist(ctx context.Context, token string) (*Wishlist, error) {
	ep := endpoint(OpGetWishlist)
	data, err := c.do(ctx, ep, request{token: token})
	if err != nil {
		return nil, err
	}
	return decodeObject[Wishlist](ep, data)
}

// GetSuggestions calls GET /films/me/suggestions
func (c *Client) GetSuggestions(ctx context.Context, token string) ([]Film, error) {
	ep := endpoint(OpGetSuggestions)
	data, err := c.do(ctx, ep, request{token: token})
	if err != nil {
		return nil, err
	}
	return decodeList[Film](ep, data)
}

// GetUserFriends calls GET /users/me/friends
func (c *Client) GetUserFriends(ctx context.Context, token string) ([]Friend, error) {
	ep := endpoint(OpGetUserFriends)
	data, err := c.do(ctx, ep, request{token: token})
	if err != nil {
		return nil, err
	}
	return decodeList[Friend](ep, data)
}

// CreateUserGroup calls POST /user-groups; an unnamed or empty group is
// rejected without contacting the server
func (c *Client) CreateUserGroup(ctx context.Context, token string, input CreateGroupRequest) (*Group, error) {
	ep := endpoint(OpCreateUserGroup)
	if err := ValidateGroup(input); err != nil {
		return nil, fmt.Errorf("%s: %w", ep.Name, err)
	}

	data, err := c.do(ctx, ep, request{token: token, body: input})
	if err != nil {
		return nil, err
	}
	return decodeObject[Group](ep, data)
}

// ValidateGroup checks that a group has a name and at least one valid member
func ValidateGroup(input CreateGroupRequest) error {
	if strings.TrimSpace(input.Name) == "" || len(input.UserIDs) == 0 {
		return ErrIncompleteGroup
	}
	for _, id := range input.UserIDs {
		if id <= 0 {
			return fmt.Errorf("%w: member %d", ErrInvalidID, id)
		}
	}
	return nil
}

// GetUserGroups calls GET /user-groups/me
func (c *Client) GetUserGroups(ctx context.Context, token string) ([]Group, error) {
	ep := endpoint(OpGetUserGroups)
	data, err := c.do(ctx, ep, request{token: token})
	if err != nil {
		return nil, err
	}
	return decodeList[Group](ep, data)
}

// GetFilmsForGroup calls GET /films/common-for-group/{id}
func (c *Client) GetFilmsForGroup(ctx context.Context, token string, groupID int64) ([]Film, error) {
	ep := endpoint(OpGetFilmsForGroup)
	if groupID <= 0 {
		return nil, fmt.Errorf("%s: %w: %d", ep.Name, ErrInvalidID, groupID)
	}
	data, err := c.do(ctx, ep, request{token: token, pathID: groupID})
	if err != nil {
		return nil, err
	}
	return decodeList[Film](ep, data)
}
