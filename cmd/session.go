// ABOUTME: Session and whoami commands for the filmfit CLI
// ABOUTME: Show the stored session and flag stale or mismatched fields, fetch the profile

package cmd

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"

	"github.com/nsttdn/Film-fit/internal/client"
	"github.com/nsttdn/Film-fit/internal/session"
	"github.com/nsttdn/Film-fit/internal/tui/icons"
	"github.com/nsttdn/Film-fit/internal/tui/styles"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Show the stored session",
	Long: `Show what is stored locally: the login flag, whether a token is present,
its expiry when it is a JWT, and the saved user id.

Exit codes:
  0  Session is consistent
  1  Login flag and token disagree, or the token belongs to another user
  2  Error reading the session`,
	Args: cobra.NoArgs,
	Run:  runWithApp(runSession),
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in user's profile",
	Args:  cobra.NoArgs,
	Run:   runWithApp(runWhoami),
}

func init() {
	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(whoamiCmd)
}

type sessionOutput struct {
	LoggedIn  bool       `json:"loggedIn"`
	HasToken  bool       `json:"hasToken"`
	UserID    int64      `json:"userId"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
	Problem   string     `json:"problem,omitempty"`
}

// tokenClaims reads the registered claims without verifying the signature;
// the client never holds the signing key
func tokenClaims(token string) *jwt.RegisteredClaims {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil
	}
	return claims
}

func tokenExpiry(token string) *time.Time {
	claims := tokenClaims(token)
	if claims == nil || claims.ExpiresAt == nil {
		return nil
	}
	t := claims.ExpiresAt.Time
	return &t
}

// tokenUserID returns the user id in the token subject, or NoUser when the
// token is opaque or carries no numeric subject
func tokenUserID(token string) int64 {
	claims := tokenClaims(token)
	if claims == nil {
		return session.NoUser
	}
	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || id <= 0 {
		return session.NoUser
	}
	return id
}

// userMismatch reports a token issued to a different user than the saved id.
// A login whose profile fetch failed leaves the previous account's id behind.
func userMismatch(sess session.Session) string {
	if !sess.HasToken || !sess.HasUser() {
		return ""
	}
	owner := tokenUserID(sess.AuthToken)
	if owner == session.NoUser || owner == sess.UserID {
		return ""
	}
	return fmt.Sprintf("the auth token belongs to user #%d but the saved user id is #%d", owner, sess.UserID)
}

func runSession(_ context.Context, a *app, w io.Writer, _ []string) int {
	sess, err := session.Snapshot(a.store)
	if err != nil {
		return printError(w, err)
	}

	out := sessionOutput{
		LoggedIn: sess.LoggedIn,
		HasToken: sess.HasToken,
		UserID:   sess.UserID,
		Problem:  sess.Problem(),
	}
	if sess.HasToken {
		out.ExpiresAt = tokenExpiry(sess.AuthToken)
	}

	if out.Problem == "" {
		out.Problem = userMismatch(sess)
	}

	exitCode := exitOK
	if out.Problem != "" {
		exitCode = exitEmpty
	}

	if IsJSONOutput() {
		if code := writeJSON(w, out); code != exitOK {
			return code
		}
		return exitCode
	}

	fmt.Fprintln(w, formatSession(out))
	return exitCode
}

func formatSession(out sessionOutput) string {
	user := "none"
	if out.UserID != session.NoUser {
		user = fmt.Sprintf("#%d", out.UserID)
	}
	token := "absent"
	if out.HasToken {
		token = "present"
		if out.ExpiresAt != nil {
			token += ", expires " + out.ExpiresAt.Local().Format(time.RFC1123)
		}
	}

	s := fmt.Sprintf("%s%s\n%s%s\n%s%s",
		styles.KeyStyle.Render("Logged in:"), styles.ValueStyle.Render(fmt.Sprintf("%t", out.LoggedIn)),
		styles.KeyStyle.Render("Token:"), styles.ValueStyle.Render(token),
		styles.KeyStyle.Render("User:"), styles.ValueStyle.Render(user),
	)
	if out.Problem != "" {
		s += "\n" + styles.StatusWarning.Render(icons.Warning.String()+" Session is inconsistent: "+out.Problem+". Run `filmfit logout` and log in again.")
	}
	return s
}

func runWhoami(ctx context.Context, a *app, w io.Writer, _ []string) int {
	token, err := a.authToken()
	if err != nil {
		return printError(w, err)
	}

	res := withLoading(ctx, a, "Loading profile…", func(ctx context.Context) (*client.User, error) {
		return a.client.GetUserInfo(ctx, token)
	})
	if res.Err != nil {
		return printError(w, res.Err)
	}

	if IsJSONOutput() {
		return writeJSON(w, res.Value)
	}
	fmt.Fprintln(w, formatUser(*res.Value))
	return exitOK
}
