// ABOUTME: In-memory state of the test backend
// ABOUTME: Users, follows, wishlists and groups guarded by one mutex

package mockapi

import (
	"errors"
	"slices"
	"sort"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/nsttdn/Film-fit/internal/client"
)

var (
	errNotFound     = errors.New("not found")
	errConflict     = errors.New("already exists")
	errInvalid      = errors.New("invalid request")
	errBadPassword  = errors.New("invalid email or password")
	errNotGroupUser = errors.New("not a member of this group")
)

type account struct {
	id           int64
	username     string
	email        string
	passwordHash []byte
	wishlist     []int64 // film ids in insertion order
	following    []int64 // user ids in follow order
}

type group struct {
	id      int64
	name    string
	members []int64
}

type state struct {
	mu         sync.RWMutex
	bcryptCost int
	nextUserID int64
	nextGroup  int64
	accounts   map[int64]*account
	groups     map[int64]*group
	films      []client.PopularMovie
	directors  map[int64]string
}

func newState(bcryptCost int) *state {
	s := &state{
		bcryptCost: bcryptCost,
		nextUserID: 1,
		nextGroup:  1,
		accounts:   make(map[int64]*account),
		groups:     make(map[int64]*group),
		films:      buildCatalog(),
		directors:  make(map[int64]string),
	}
	for i, f := range seedFilms {
		s.directors[int64(i+1)] = f.director
	}
	return s
}

func (s *state) register(username, email, password string) (int64, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))
	if username == "" || email == "" || password == "" {
		return 0, errInvalid
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.accounts {
		if a.email == email || strings.EqualFold(a.username, username) {
			return 0, errConflict
		}
	}

	id := s.nextUserID
	s.nextUserID++
	s.accounts[id] = &account{id: id, username: username, email: email, passwordHash: hash}
	return id, nil
}

func (s *state) authenticate(email, password string) (int64, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	s.mu.RLock()
	var found *account
	for _, a := range s.accounts {
		if a.email == email {
			found = a
			break
		}
	}
	s.mu.RUnlock()

	if found == nil {
		return 0, errBadPassword
	}
	if err := bcrypt.CompareHashAndPassword(found.passwordHash, []byte(password)); err != nil {
		return 0, errBadPassword
	}
	return found.id, nil
}

func (s *state) user(id int64) (client.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.accounts[id]
	if !ok {
		return client.User{}, errNotFound
	}
	return s.userLocked(a), nil
}

func (s *state) searchUsers(namePart string) []client.User {
	needle := strings.ToLower(namePart)

	s.mu.RLock()
	defer s.mu.RUnlock()
	users := []client.User{}
	for _, a := range s.sortedAccountsLocked() {
		if strings.Contains(strings.ToLower(a.username), needle) {
			users = append(users, s.userLocked(a))
		}
	}
	return users
}

func (s *state) follow(followerID, targetID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	follower, ok := s.accounts[followerID]
	if !ok {
		return errNotFound
	}
	if _, ok := s.accounts[targetID]; !ok {
		return errNotFound
	}
	if followerID == targetID {
		return errInvalid
	}
	if !slices.Contains(follower.following, targetID) {
		follower.following = append(follower.following, targetID)
	}
	return nil
}

func (s *state) following(id int64) ([]client.UserFollowing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.accounts[id]
	if !ok {
		return nil, errNotFound
	}
	out := []client.UserFollowing{}
	for _, fid := range a.following {
		f := s.accounts[fid]
		u := s.userLocked(f)
		out = append(out, client.UserFollowing{
			Username:       u.Username,
			Wishlist:       u.Wishlist,
			FollowersCount: u.FollowersCount,
			FollowingCount: u.FollowingCount,
		})
	}
	return out, nil
}

// friends are the users the caller follows
func (s *state) friends(id int64) ([]client.Friend, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.accounts[id]
	if !ok {
		return nil, errNotFound
	}
	out := []client.Friend{}
	for _, fid := range a.following {
		out = append(out, client.Friend{ID: fid, Username: s.accounts[fid].username})
	}
	return out, nil
}

func (s *state) addToWishlist(userID, filmID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[userID]
	if !ok {
		return errNotFound
	}
	if _, ok := s.filmLocked(filmID); !ok {
		return errNotFound
	}
	if !slices.Contains(a.wishlist, filmID) {
		a.wishlist = append(a.wishlist, filmID)
	}
	return nil
}

func (s *state) wishlist(userID int64) (client.Wishlist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.accounts[userID]
	if !ok {
		return client.Wishlist{}, errNotFound
	}
	return s.wishlistLocked(a), nil
}

// suggestions are films wished for by followed users and not by the caller,
// best rated first
func (s *state) suggestions(userID int64) ([]client.Film, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.accounts[userID]
	if !ok {
		return nil, errNotFound
	}

	seen := make(map[int64]bool)
	for _, id := range a.wishlist {
		seen[id] = true
	}
	films := []client.Film{}
	for _, fid := range a.following {
		for _, filmID := range s.accounts[fid].wishlist {
			if seen[filmID] {
				continue
			}
			seen[filmID] = true
			if f, ok := s.filmLocked(filmID); ok {
				films = append(films, f)
			}
		}
	}
	sort.SliceStable(films, func(i, j int) bool {
		return films[i].VoteAverage > films[j].VoteAverage
	})
	return films, nil
}

// createGroup adds the creator to the members and rejects unknown users
func (s *state) createGroup(creatorID int64, name string, memberIDs []int64) (client.Group, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(memberIDs) == 0 {
		return client.Group{}, errInvalid
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	members := []int64{creatorID}
	for _, id := range memberIDs {
		if _, ok := s.accounts[id]; !ok {
			return client.Group{}, errNotFound
		}
		if !slices.Contains(members, id) {
			members = append(members, id)
		}
	}

	g := &group{id: s.nextGroup, name: name, members: members}
	s.nextGroup++
	s.groups[g.id] = g
	return s.groupLocked(g), nil
}

func (s *state) groupsOf(userID int64) []client.Group {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]int64, 0, len(s.groups))
	for id, g := range s.groups {
		if slices.Contains(g.members, userID) {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)

	out := []client.Group{}
	for _, id := range ids {
		out = append(out, s.groupLocked(s.groups[id]))
	}
	return out
}

// commonFilms returns the films present in every member's wishlist, in the
// order of the first member's wishlist
func (s *state) commonFilms(userID, groupID int64) ([]client.Film, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.groups[groupID]
	if !ok {
		return nil, errNotFound
	}
	if !slices.Contains(g.members, userID) {
		return nil, errNotGroupUser
	}

	films := []client.Film{}
	first := s.accounts[g.members[0]]
	for _, filmID := range first.wishlist {
		common := true
		for _, mid := range g.members[1:] {
			if !slices.Contains(s.accounts[mid].wishlist, filmID) {
				common = false
				break
			}
		}
		if !common {
			continue
		}
		if f, ok := s.filmLocked(filmID); ok {
			films = append(films, f)
		}
	}
	return films, nil
}

func (s *state) popular() []client.PopularMovie {
	movies := slices.Clone(s.films)
	sort.SliceStable(movies, func(i, j int) bool {
		return movies[i].Popularity > movies[j].Popularity
	})
	if len(movies) > popularLimit {
		movies = movies[:popularLimit]
	}
	return movies
}

// searchFilms filters by title and returns the requested page
func (s *state) searchFilms(titlePart string, page, size int, sortKeys []string) client.FilmPage {
	needle := strings.ToLower(titlePart)
	matched := []client.PopularMovie{}
	for _, m := range s.films {
		if strings.Contains(strings.ToLower(m.Title), needle) {
			matched = append(matched, m)
		}
	}
	sortMovies(matched, sortKeys)

	result := client.FilmPage{
		TotalElements: len(matched),
		TotalPages:    (len(matched) + size - 1) / size,
		Content:       []client.Film{},
	}
	start := page * size
	if start >= len(matched) {
		return result
	}
	end := min(start+size, len(matched))
	for _, m := range matched[start:end] {
		result.Content = append(result.Content, toFilm(m, s.directors[m.ID]))
	}
	return result
}

// sortMovies applies the first recognised key; keys take an optional ",asc"
// or ",desc" suffix
func sortMovies(movies []client.PopularMovie, keys []string) {
	for _, key := range keys {
		field, dir, _ := strings.Cut(key, ",")
		desc := !strings.EqualFold(dir, "asc")
		var less func(a, b client.PopularMovie) bool
		switch field {
		case "popularity":
			less = func(a, b client.PopularMovie) bool { return a.Popularity < b.Popularity }
		case "voteAverage":
			less = func(a, b client.PopularMovie) bool { return a.VoteAverage < b.VoteAverage }
		case "releaseDate":
			less = func(a, b client.PopularMovie) bool { return a.ReleaseDate < b.ReleaseDate }
		case "title":
			less = func(a, b client.PopularMovie) bool { return a.Title < b.Title }
			desc = strings.EqualFold(dir, "desc")
		default:
			continue
		}
		sort.SliceStable(movies, func(i, j int) bool {
			if desc {
				return less(movies[j], movies[i])
			}
			return less(movies[i], movies[j])
		})
		return
	}
}

func (s *state) filmLocked(id int64) (client.Film, bool) {
	if id <= 0 || int(id) > len(s.films) {
		return client.Film{}, false
	}
	m := s.films[id-1]
	return toFilm(m, s.directors[m.ID]), true
}

func (s *state) wishlistLocked(a *account) client.Wishlist {
	w := client.Wishlist{ID: a.id, Films: []client.Film{}}
	for _, id := range a.wishlist {
		if f, ok := s.filmLocked(id); ok {
			w.Films = append(w.Films, f)
		}
	}
	return w
}

func (s *state) userLocked(a *account) client.User {
	followers := 0
	for _, other := range s.accounts {
		if slices.Contains(other.following, a.id) {
			followers++
		}
	}
	w := s.wishlistLocked(a)
	return client.User{
		ID:             a.id,
		Username:       a.username,
		Wishlist:       &w,
		FollowersCount: followers,
		FollowingCount: len(a.following),
	}
}

func (s *state) groupLocked(g *group) client.Group {
	out := client.Group{ID: g.id, Name: g.name, Users: []client.User{}}
	for _, id := range g.members {
		out.Users = append(out.Users, s.userLocked(s.accounts[id]))
	}
	return out
}

func (s *state) sortedAccountsLocked() []*account {
	out := make([]*account, 0, len(s.accounts))
	for _, a := range s.accounts {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}
