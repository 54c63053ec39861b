// ABOUTME: Tests for the login, logout, session and whoami commands
// ABOUTME: Verify what is persisted and how session problems are reported

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/nsttdn/Film-fit/internal/session"
)

func setLoginFlags(t *testing.T, email, password string) {
	t.Helper()
	loginEmail, loginPassword = email, password
	t.Cleanup(func() { loginEmail, loginPassword = "", "" })
}

func TestLoginThenWhoami(t *testing.T) {
	env := newTestEnv(t)
	id, err := env.server.AddUser("alice", "alice@example.com", "pw")
	if err != nil {
		t.Fatal(err)
	}
	setLoginFlags(t, "alice@example.com", "pw")

	var buf bytes.Buffer
	if code := runLogin(context.Background(), env.app, &buf, nil); code != exitOK {
		t.Fatalf("expected exit code 0, got %d: %s", code, buf.String())
	}
	if !strings.Contains(buf.String(), "Logged in as alice") {
		t.Errorf("unexpected output %q", buf.String())
	}

	sess, err := session.Snapshot(env.store)
	if err != nil {
		t.Fatal(err)
	}
	if !sess.LoggedIn || !sess.HasToken || sess.AuthToken == "" {
		t.Errorf("expected persisted login, got %+v", sess)
	}
	if sess.UserID != id {
		t.Errorf("expected stored user id %d, got %d", id, sess.UserID)
	}

	withJSON(t)
	buf.Reset()
	if code := runWhoami(context.Background(), env.app, &buf, nil); code != exitOK {
		t.Fatalf("whoami exit code %d: %s", code, buf.String())
	}
	var user struct {
		ID       int64  `json:"id"`
		Username string `json:"username"`
	}
	if err := json.Unmarshal(buf.Bytes(), &user); err != nil {
		t.Fatalf("whoami output is not JSON: %v", err)
	}
	if user.ID != id || user.Username != "alice" {
		t.Errorf("expected server record %d/alice, got %+v", id, user)
	}
}

func TestLogin_WrongPasswordPersistsNothing(t *testing.T) {
	env := newTestEnv(t)
	env.server.AddUser("alice", "alice@example.com", "pw")
	setLoginFlags(t, "alice@example.com", "wrong")

	var buf bytes.Buffer
	if code := runLogin(context.Background(), env.app, &buf, nil); code != exitError {
		t.Fatalf("expected exit code 2, got %d", code)
	}
	if !strings.Contains(buf.String(), "Invalid email or password") {
		t.Errorf("expected server message, got %q", buf.String())
	}

	sess, _ := session.Snapshot(env.store)
	if sess.LoggedIn || sess.HasToken || sess.HasUser() {
		t.Errorf("expected empty session, got %+v", sess)
	}
}

func TestLogin_MissingFlagsNonInteractive(t *testing.T) {
	env := newTestEnv(t)
	setLoginFlags(t, "alice@example.com", "")

	var buf bytes.Buffer
	if code := runLogin(context.Background(), env.app, &buf, nil); code != exitError {
		t.Fatalf("expected exit code 2, got %d", code)
	}
	if env.requests.Load() != 0 {
		t.Errorf("expected no requests, got %d", env.requests.Load())
	}
}

func TestLogout_ClearsSession(t *testing.T) {
	env := newTestEnv(t)
	env.loggedIn(t, "alice")

	var buf bytes.Buffer
	if code := runLogout(context.Background(), env.app, &buf, nil); code != exitOK {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	if !strings.Contains(buf.String(), "Logged out successfully") {
		t.Errorf("unexpected output %q", buf.String())
	}

	sess, _ := session.Snapshot(env.store)
	if sess.LoggedIn || sess.HasToken || sess.UserID != session.NoUser {
		t.Errorf("expected cleared session, got %+v", sess)
	}
}

func TestWhoami_NotLoggedIn(t *testing.T) {
	env := newTestEnv(t)

	var buf bytes.Buffer
	if code := runWhoami(context.Background(), env.app, &buf, nil); code != exitError {
		t.Fatalf("expected exit code 2, got %d", code)
	}
	if !strings.Contains(buf.String(), "Not logged in") {
		t.Errorf("unexpected output %q", buf.String())
	}
	if env.requests.Load() != 0 {
		t.Errorf("expected no requests without a token, got %d", env.requests.Load())
	}
}

func TestSession_Consistent(t *testing.T) {
	env := newTestEnv(t)
	env.loggedIn(t, "alice")
	withJSON(t)

	var buf bytes.Buffer
	if code := runSession(context.Background(), env.app, &buf, nil); code != exitOK {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	var out sessionOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if !out.LoggedIn || !out.HasToken || out.ExpiresAt == nil || out.Problem != "" {
		t.Errorf("unexpected session output %+v", out)
	}
}

func TestSession_FlagsInconsistency(t *testing.T) {
	env := newTestEnv(t)
	env.store.SaveLoginState(true)

	var buf bytes.Buffer
	if code := runSession(context.Background(), env.app, &buf, nil); code != exitEmpty {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(buf.String(), "inconsistent") {
		t.Errorf("expected inconsistency warning, got %q", buf.String())
	}

	loggedIn, _ := env.store.LoginState()
	if !loggedIn {
		t.Error("session command must not change the stored state")
	}
}

func TestSession_FlagsTokenForAnotherUser(t *testing.T) {
	env := newTestEnv(t)
	alice := env.loggedIn(t, "alice")
	bob, _ := env.server.AddUser("bob", "bob@example.com", "pw")
	token, err := env.server.IssueToken(bob)
	if err != nil {
		t.Fatal(err)
	}
	env.store.SaveAuthToken(token)
	withJSON(t)

	var buf bytes.Buffer
	if code := runSession(context.Background(), env.app, &buf, nil); code != exitEmpty {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	var out sessionOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	want := fmt.Sprintf("belongs to user #%d but the saved user id is #%d", bob, alice)
	if !strings.Contains(out.Problem, want) {
		t.Errorf("expected problem %q, got %q", want, out.Problem)
	}

	id, _ := env.store.LoggedInUserID()
	if id != alice {
		t.Error("session command must not change the stored user id")
	}
}

func TestLogin_FailedProfileFetchLeavesMismatchFlagged(t *testing.T) {
	env := newTestEnv(t)
	alice := env.loggedIn(t, "alice")
	bob, _ := env.server.AddUser("bob", "bob@example.com", "pw")
	token, _ := env.server.IssueToken(bob)

	// Login saved bob's token and flag, then the profile fetch failed.
	env.store.SaveAuthToken(token)
	env.store.SaveLoginState(true)

	sess, _ := session.Snapshot(env.store)
	if !sess.Consistent() {
		t.Fatal("flag and token agree, the store itself sees no problem")
	}
	if sess.UserID != alice {
		t.Fatalf("expected the previous user id to remain, got %d", sess.UserID)
	}
	if userMismatch(sess) == "" {
		t.Error("expected the mismatch to be reported")
	}
}

func TestUserMismatch_NotReportedForOwnToken(t *testing.T) {
	env := newTestEnv(t)
	env.loggedIn(t, "alice")

	sess, _ := session.Snapshot(env.store)
	if got := userMismatch(sess); got != "" {
		t.Errorf("expected no mismatch, got %q", got)
	}
	if tokenUserID("opaque-token") != session.NoUser {
		t.Error("expected no user id for an opaque token")
	}
}

func TestTokenExpiry_NotJWT(t *testing.T) {
	if tokenExpiry("abc123") != nil {
		t.Error("expected no expiry for an opaque token")
	}
}
