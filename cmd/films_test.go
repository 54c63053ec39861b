// ABOUTME: Tests for the popular, search, wishlist and suggestions commands
// ABOUTME: Verify row rendering, empty states and concurrent search

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/nsttdn/Film-fit/internal/client"
	"github.com/nsttdn/Film-fit/internal/tui/icons"
)

func countLines(s, substr string) int {
	n := 0
	for _, line := range strings.Split(s, "\n") {
		if strings.Contains(line, substr) {
			n++
		}
	}
	return n
}

func TestPopular_ServerOrder(t *testing.T) {
	env := newTestEnv(t)
	withJSON(t)

	var buf bytes.Buffer
	if code := runPopular(context.Background(), env.app, &buf, nil); code != exitOK {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	var movies []client.PopularMovie
	if err := json.Unmarshal(buf.Bytes(), &movies); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(movies) != 20 {
		t.Fatalf("expected 20 movies, got %d", len(movies))
	}

	jsonOutput = false
	buf.Reset()
	runPopular(context.Background(), env.app, &buf, nil)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 21 {
		t.Fatalf("expected heading plus 20 rows, got %d lines", len(lines))
	}
	for i, m := range movies {
		if !strings.Contains(lines[i+1], m.Title) {
			t.Errorf("row %d: expected %q, got %q", i, m.Title, lines[i+1])
		}
	}
}

func TestSearch_NothingFound(t *testing.T) {
	env := newTestEnv(t)
	env.server.AddUser("alice", "alice@example.com", "pw")

	var buf bytes.Buffer
	if code := runSearch(context.Background(), env.app, &buf, []string{"zzzz"}); code != exitOK {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	if !strings.Contains(buf.String(), "Nothing found") {
		t.Errorf("expected nothing found, got %q", buf.String())
	}
	if env.requests.Load() != 2 {
		t.Errorf("expected user and film searches, got %d requests", env.requests.Load())
	}
}

func TestSearch_UsersOnly(t *testing.T) {
	env := newTestEnv(t)
	env.server.AddUser("matrixfan", "m@example.com", "pw")

	var buf bytes.Buffer
	runSearch(context.Background(), env.app, &buf, []string{"matrixfan"})
	out := buf.String()
	if strings.Contains(out, "Nothing found") {
		t.Error("nothing found must not show when users matched")
	}
	if !strings.Contains(out, "matrixfan") {
		t.Errorf("expected user row, got %q", out)
	}
}

func TestSearch_FilmsAndUsers(t *testing.T) {
	env := newTestEnv(t)
	env.server.AddUser("matrixfan", "m@example.com", "pw")
	withJSON(t)

	var buf bytes.Buffer
	runSearch(context.Background(), env.app, &buf, []string{"matrix"})

	var out searchOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(out.Users) != 1 || len(out.Films.Content) != 1 {
		t.Errorf("expected one user and one film, got %d and %d", len(out.Users), len(out.Films.Content))
	}
}

func TestSearch_ServerErrorTreatedAsEmpty(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"boom"}`, http.StatusInternalServerError)
	}))
	defer ts.Close()

	out, err := search(context.Background(), client.New(ts.URL), "x", client.DefaultPageable())
	if err != nil {
		t.Fatalf("expected status errors to be treated as empty, got %v", err)
	}
	if !strings.Contains(formatSearch(out), "Nothing found") {
		t.Error("expected nothing found")
	}
}

func TestSearch_ConnectionError(t *testing.T) {
	env := newTestEnv(t)
	env.app.client = client.New("http://127.0.0.1:1")

	var buf bytes.Buffer
	if code := runSearch(context.Background(), env.app, &buf, []string{"x"}); code != exitError {
		t.Fatalf("expected exit code 2, got %d", code)
	}
	if !strings.Contains(buf.String(), "Could not connect") {
		t.Errorf("expected connection message, got %q", buf.String())
	}
}

func TestWishlist_Empty(t *testing.T) {
	env := newTestEnv(t)
	env.loggedIn(t, "alice")

	var buf bytes.Buffer
	if code := runWishlist(context.Background(), env.app, &buf, nil); code != exitOK {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	if !strings.Contains(buf.String(), "No films in wishlist") {
		t.Errorf("expected empty message, got %q", buf.String())
	}
}

func TestWishlist_OneRowPerFilm(t *testing.T) {
	env := newTestEnv(t)
	id := env.loggedIn(t, "alice")
	for _, filmID := range []int64{2, 5, 9} {
		if err := env.server.Wish(id, filmID); err != nil {
			t.Fatal(err)
		}
	}

	var buf bytes.Buffer
	runWishlist(context.Background(), env.app, &buf, nil)
	out := buf.String()
	for _, filmID := range []string{"#2", "#5", "#9"} {
		if countLines(out, filmID) != 1 {
			t.Errorf("expected exactly one row for film %s in %q", filmID, out)
		}
	}
	if strings.Contains(out, "No films") {
		t.Error("empty message shown for a non-empty wishlist")
	}
}

func TestWishlistAdd_Refetches(t *testing.T) {
	env := newTestEnv(t)
	env.loggedIn(t, "alice")

	var buf bytes.Buffer
	if code := runWishlistAdd(context.Background(), env.app, &buf, []string{"4"}); code != exitOK {
		t.Fatalf("expected exit code 0, got %d: %s", code, buf.String())
	}
	if !strings.Contains(buf.String(), "Inception") {
		t.Errorf("expected refetched wishlist with the film, got %q", buf.String())
	}
	if env.requests.Load() != 2 {
		t.Errorf("expected add then fetch, got %d requests", env.requests.Load())
	}
}

func TestWishlistAdd_InvalidID(t *testing.T) {
	env := newTestEnv(t)
	env.loggedIn(t, "alice")

	var buf bytes.Buffer
	if code := runWishlistAdd(context.Background(), env.app, &buf, []string{"abc"}); code != exitError {
		t.Fatalf("expected exit code 2, got %d", code)
	}
	if env.requests.Load() != 0 {
		t.Errorf("expected no requests, got %d", env.requests.Load())
	}
}

func TestSuggestions(t *testing.T) {
	env := newTestEnv(t)
	alice := env.loggedIn(t, "alice")
	bob, _ := env.server.AddUser("bob", "bob@example.com", "pw")
	env.server.Wish(bob, 3)
	env.server.Follow(alice, bob)

	var buf bytes.Buffer
	if code := runSuggestions(context.Background(), env.app, &buf, nil); code != exitOK {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	if !strings.Contains(buf.String(), "The Dark Knight") {
		t.Errorf("expected suggested film, got %q", buf.String())
	}
}

func TestPrintError_CanceledIsSilent(t *testing.T) {
	var buf bytes.Buffer
	if code := printError(&buf, context.Canceled); code != exitCanceled {
		t.Errorf("expected exit code 130, got %d", code)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestFormatSearch_Headings(t *testing.T) {
	out := formatSearch(searchOutput{
		Users: []client.User{{ID: 1, Username: "alice"}},
		Films: &client.FilmPage{TotalElements: 1, TotalPages: 1, Content: []client.Film{{ID: 9, Title: "The Matrix"}}},
	})
	if !strings.Contains(out, icons.User.String()+" Users") {
		t.Errorf("expected users heading, got %q", out)
	}
	if !strings.Contains(out, icons.Film.String()+" Films") {
		t.Errorf("expected films heading, got %q", out)
	}
}
