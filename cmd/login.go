// ABOUTME: Login and logout commands for the filmfit CLI
// ABOUTME: Persist or clear the bearer token, login flag and user id

package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/nsttdn/Film-fit/internal/client"
	"github.com/nsttdn/Film-fit/internal/tui/forms"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and store the session",
	Long: `Log in with email and password. The returned token, the login flag and
the user id are saved in the session database for later commands.`,
	Args: cobra.NoArgs,
	Run:  runWithApp(runLogin),
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the stored session",
	Args:  cobra.NoArgs,
	Run:   runWithApp(runLogout),
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Email address")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Password")
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
}

type loginOutput struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	Message  string `json:"message"`
}

func runLogin(ctx context.Context, a *app, w io.Writer, _ []string) int {
	req := client.LoginRequest{Email: loginEmail, Password: loginPassword}
	if err := fillForm(ctx, a, forms.NewLoginForm(&req), "--email or --password"); err != nil {
		return printError(w, err)
	}

	login := withLoading(ctx, a, "Logging in…", func(ctx context.Context) (*client.LoginResponse, error) {
		return a.client.Login(ctx, req)
	})
	if login.Err != nil {
		return printError(w, login.Err)
	}

	token := login.Value.Token
	if err := a.store.SaveAuthToken(token); err != nil {
		return printError(w, fmt.Errorf("save session: %w", err))
	}
	if err := a.store.SaveLoginState(true); err != nil {
		return printError(w, fmt.Errorf("save session: %w", err))
	}

	user := withLoading(ctx, a, "Loading profile…", func(ctx context.Context) (*client.User, error) {
		return a.client.GetUserInfo(ctx, token)
	})
	if user.Err != nil {
		return printError(w, user.Err)
	}
	if err := a.store.SaveLoggedInUserID(user.Value.ID); err != nil {
		return printError(w, fmt.Errorf("save session: %w", err))
	}

	out := loginOutput{UserID: user.Value.ID, Username: user.Value.Username, Message: login.Value.Message}
	if IsJSONOutput() {
		return writeJSON(w, out)
	}
	printSuccess(w, "Logged in as %s (#%d)", out.Username, out.UserID)
	return exitOK
}

func runLogout(_ context.Context, a *app, w io.Writer, _ []string) int {
	if err := a.store.Clear(); err != nil {
		return printError(w, fmt.Errorf("clear session: %w", err))
	}

	const msg = "Logged out successfully"
	if IsJSONOutput() {
		return writeJSON(w, client.MessageResponse{Message: msg})
	}
	printSuccess(w, msg)
	return exitOK
}
