// ABOUTME: Session value read from a store in one pass
// ABOUTME: Reports when the login flag and token disagree without repairing it

package session

import "fmt"

// Session is a point-in-time copy of the persisted fields
type Session struct {
	LoggedIn  bool
	AuthToken string
	HasToken  bool
	UserID    int64
}

// Snapshot reads all fields from the store
func Snapshot(s Store) (Session, error) {
	var sess Session
	var err error

	if sess.LoggedIn, err = s.LoginState(); err != nil {
		return Session{}, fmt.Errorf("read login state: %w", err)
	}
	if sess.AuthToken, sess.HasToken, err = s.AuthToken(); err != nil {
		return Session{}, fmt.Errorf("read auth token: %w", err)
	}
	if sess.UserID, err = s.LoggedInUserID(); err != nil {
		return Session{}, fmt.Errorf("read user id: %w", err)
	}
	return sess, nil
}

// Consistent reports whether a token is present exactly when the login flag is set
func (s Session) Consistent() bool {
	return s.LoggedIn == s.HasToken
}

// Problem describes an inconsistency, or returns "" for a consistent session
func (s Session) Problem() string {
	switch {
	case s.LoggedIn && !s.HasToken:
		return "marked as logged in but no auth token is stored"
	case !s.LoggedIn && s.HasToken:
		return "an auth token is stored but the session is not marked as logged in"
	default:
		return ""
	}
}

// HasUser reports whether a user id has been saved
func (s Session) HasUser() bool {
	return s.UserID != NoUser
}
