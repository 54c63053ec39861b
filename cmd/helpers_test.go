// ABOUTME: Test helpers for command tests
// ABOUTME: Builds an app backed by an in-memory store and the in-process backend

package cmd

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/nsttdn/Film-fit/internal/client"
	"github.com/nsttdn/Film-fit/internal/config"
	"github.com/nsttdn/Film-fit/internal/mockapi"
	"github.com/nsttdn/Film-fit/internal/session"
)

type testEnv struct {
	app      *app
	server   *mockapi.Server
	store    *session.MemoryStore
	requests *atomic.Int64
}

// newTestEnv starts the backend on an httptest server and returns a
// non-interactive app pointing at it
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	srv, err := mockapi.New(mockapi.Options{Secret: []byte("test-secret"), BcryptCost: 4})
	if err != nil {
		t.Fatalf("mockapi.New: %v", err)
	}

	var requests atomic.Int64
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		srv.Handler().ServeHTTP(w, r)
	}))
	t.Cleanup(ts.Close)

	store := session.NewMemoryStore()
	return &testEnv{
		app: &app{
			cfg:        &config.Config{APIURL: ts.URL, ConfigDir: t.TempDir()},
			store:      store,
			client:     client.New(ts.URL),
			spinnerOut: io.Discard,
		},
		server:   srv,
		store:    store,
		requests: &requests,
	}
}

// loggedIn creates a user and stores a session for it
func (e *testEnv) loggedIn(t *testing.T, username string) int64 {
	t.Helper()
	id, err := e.server.AddUser(username, username+"@example.com", "pw")
	if err != nil {
		t.Fatalf("AddUser: %v", err)
	}
	token, err := e.server.IssueToken(id)
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}
	e.store.SaveAuthToken(token)
	e.store.SaveLoginState(true)
	e.store.SaveLoggedInUserID(id)
	return id
}

// withJSON enables --json for the duration of the test
func withJSON(t *testing.T) {
	t.Helper()
	jsonOutput = true
	t.Cleanup(func() { jsonOutput = false })
}
