// ABOUTME: Session store interface for the locally persisted login state
// ABOUTME: Defines the namespaces and keys shared by all store implementations

package session

// Namespaces and keys of the persisted session
const (
	NamespaceAuth = "FilmFitPrefs"
	NamespaceUser = "user_prefs"

	KeyLoggedIn  = "isUserLoggedIn"
	KeyAuthToken = "auth_token"
	KeyUserID    = "logged_in_user_id"
)

// NoUser is returned by LoggedInUserID when no user id has been saved
const NoUser int64 = -1

// Store persists the login flag, bearer token and logged-in user id.
//
// Each field is written independently; nothing ties the login flag to the
// token, so a crash between two saves leaves them out of step. Callers can
// detect that with Snapshot and Session.Consistent.
type Store interface {
	SaveLoginState(loggedIn bool) error
	LoginState() (bool, error)

	SaveAuthToken(token string) error
	AuthToken() (token string, ok bool, err error)

	SaveLoggedInUserID(id int64) error
	LoggedInUserID() (int64, error)

	// Clear removes every field of both namespaces at once
	Clear() error
}
