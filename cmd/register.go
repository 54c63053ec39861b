// ABOUTME: Register command for the filmfit CLI
// ABOUTME: Creates a FilmFit account; missing details are prompted for

package cmd

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/nsttdn/Film-fit/internal/client"
	"github.com/nsttdn/Film-fit/internal/tui/forms"
)

var (
	registerUsername string
	registerEmail    string
	registerPassword string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a FilmFit account",
	Args:  cobra.NoArgs,
	Run:   runWithApp(runRegister),
}

func init() {
	registerCmd.Flags().StringVar(&registerUsername, "username", "", "Username")
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "Email address")
	registerCmd.Flags().StringVar(&registerPassword, "password", "", "Password")
	rootCmd.AddCommand(registerCmd)
}

func runRegister(ctx context.Context, a *app, w io.Writer, _ []string) int {
	req := client.RegisterRequest{
		Username: registerUsername,
		Email:    registerEmail,
		Password: registerPassword,
	}
	if err := fillForm(ctx, a, forms.NewRegisterForm(&req), "--username, --email or --password"); err != nil {
		return printError(w, err)
	}

	res := withLoading(ctx, a, "Creating account…", func(ctx context.Context) (*client.MessageResponse, error) {
		return a.client.Register(ctx, req)
	})
	if res.Err != nil {
		return printError(w, res.Err)
	}

	if IsJSONOutput() {
		return writeJSON(w, res.Value)
	}
	msg := res.Value.Message
	if msg == "" {
		msg = "Account created"
	}
	printSuccess(w, "%s. Run `filmfit login` to continue.", msg)
	return exitOK
}
