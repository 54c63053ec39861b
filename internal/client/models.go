// ABOUTME: Data records exchanged with the FilmFit API
// ABOUTME: Plain values with required-field checks applied after decoding

package client

import "errors"

// User represents a FilmFit account as returned by /users and /users/me
type User struct {
	ID             int64     `json:"id"`
	Username       string    `json:"username"`
	Wishlist       *Wishlist `json:"whishlist,omitempty"`
	FollowersCount int       `json:"followersCount"`
	FollowingCount int       `json:"followingCount"`
}

func (u *User) validate() error {
	if u.ID <= 0 {
		return errors.New("user: missing id")
	}
	if u.Username == "" {
		return errors.New("user: missing username")
	}
	if u.Wishlist != nil {
		return u.Wishlist.validate()
	}
	return nil
}

// Film represents a film as returned by search, suggestion and group endpoints
type Film struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	PosterPath  *string `json:"posterPath,omitempty"`
	VoteAverage float64 `json:"voteAverage"`
	Overview    string  `json:"overview"`
	ReleaseDate string  `json:"releaseDate"`
	Director    *string `json:"director,omitempty"`
}

func (f *Film) validate() error {
	if f.ID <= 0 {
		return errors.New("film: missing id")
	}
	if f.Title == "" {
		return errors.New("film: missing title")
	}
	return nil
}

// MovieCollection is the collection a popular movie belongs to
type MovieCollection struct {
	ID           int64  `json:"id"`
	TmdbID       int64  `json:"tmdbId"`
	Name         string `json:"name"`
	Overview     string `json:"overview"`
	PosterPath   string `json:"posterPath"`
	BackdropPath string `json:"backdropPath"`
}

// PopularMovie is the detailed film shape served by /films/popular
type PopularMovie struct {
	ID               int64            `json:"id"`
	TmdbID           int64            `json:"tmdbId"`
	Title            string           `json:"title"`
	VoteAverage      float64          `json:"voteAverage"`
	VoteCount        int              `json:"voteCount"`
	Status           string           `json:"status"`
	ReleaseDate      string           `json:"releaseDate"`
	Revenue          int64            `json:"revenue"`
	Runtime          int              `json:"runtime"`
	Adult            bool             `json:"adult"`
	BackdropPath     string           `json:"backdropPath"`
	Budget           int64            `json:"budget"`
	Homepage         string           `json:"homepage"`
	ImdbID           string           `json:"imdbId"`
	OriginalTitle    string           `json:"originalTitle"`
	Overview         string           `json:"overview"`
	Popularity       float64          `json:"popularity"`
	PosterPath       string           `json:"posterPath"`
	Tagline          string           `json:"tagline"`
	OriginalLanguage string           `json:"originalLanguage"`
	Collection       *MovieCollection `json:"collection,omitempty"`
	Keywords         []string         `json:"keywords"`
}

func (m *PopularMovie) validate() error {
	if m.ID <= 0 {
		return errors.New("popular movie: missing id")
	}
	if m.Title == "" {
		return errors.New("popular movie: missing title")
	}
	return nil
}

// Wishlist is a user's list of saved films
type Wishlist struct {
	ID    int64  `json:"id"`
	Films []Film `json:"films"`
}

func (w *Wishlist) validate() error {
	if w.ID <= 0 {
		return errors.New("wishlist: missing id")
	}
	if w.Films == nil {
		return errors.New("wishlist: missing films")
	}
	for i := range w.Films {
		if err := w.Films[i].validate(); err != nil {
			return err
		}
	}
	return nil
}

// Friend is the projection of a user offered when creating a group
type Friend struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

func (f *Friend) validate() error {
	if f.ID <= 0 {
		return errors.New("friend: missing id")
	}
	if f.Username == "" {
		return errors.New("friend: missing username")
	}
	return nil
}

// Group is a named set of users that receives common recommendations
type Group struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Users []User `json:"users"`
}

func (g *Group) validate() error {
	if g.ID <= 0 {
		return errors.New("group: missing id")
	}
	if g.Name == "" {
		return errors.New("group: missing name")
	}
	for i := range g.Users {
		if err := g.Users[i].validate(); err != nil {
			return err
		}
	}
	return nil
}

// UserFollowing is an entry of /users/{id}/following
type UserFollowing struct {
	Username       string    `json:"username"`
	Wishlist       *Wishlist `json:"whishlist,omitempty"`
	FollowersCount int       `json:"followersCount"`
	FollowingCount int       `json:"followingCount"`
}

func (u *UserFollowing) validate() error {
	if u.Username == "" {
		return errors.New("following: missing username")
	}
	return nil
}

// FilmPage is one page of a film search
type FilmPage struct {
	TotalElements int    `json:"totalElements"`
	TotalPages    int    `json:"totalPages"`
	Content       []Film `json:"content"`
}

func (p *FilmPage) validate() error {
	if p.Content == nil {
		return errors.New("film page: missing content")
	}
	if p.TotalElements < 0 || p.TotalPages < 0 {
		return errors.New("film page: negative totals")
	}
	for i := range p.Content {
		if err := p.Content[i].validate(); err != nil {
			return err
		}
	}
	return nil
}

// Pageable selects a page of search results
type Pageable struct {
	Page int
	Size int
	Sort []string
}

// DefaultPageable returns the first page of ten results sorted by popularity
func DefaultPageable() Pageable {
	return Pageable{Page: 0, Size: 10, Sort: []string{"popularity"}}
}

// RegisterRequest is the body of POST /register
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the bearer token issued at login
type LoginResponse struct {
	Token   string `json:"token"`
	Message string `json:"message"`
}

func (r *LoginResponse) validate() error {
	if r.Token == "" {
		return errors.New("login: missing token")
	}
	return nil
}

// MessageResponse is a plain status message
type MessageResponse struct {
	Message string `json:"message"`
}

// CreateGroupRequest is the body of POST /user-groups
type CreateGroupRequest struct {
	Name    string  `json:"name"`
	UserIDs []int64 `json:"userIds"`
}
