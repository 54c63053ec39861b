// ABOUTME: Dev-server command for the filmfit CLI
// ABOUTME: Runs the in-process FilmFit backend locally with a seeded demo account

package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nsttdn/Film-fit/internal/config"
	"github.com/nsttdn/Film-fit/internal/logger"
	"github.com/nsttdn/Film-fit/internal/mockapi"
)

// Demo account created by dev-server unless --no-seed is given
const (
	demoUsername = "demo"
	demoEmail    = "demo@filmfit.dev"
	demoPassword = "demo"
)

var (
	devServerAddr   string
	devServerNoSeed bool
)

var devServerCmd = &cobra.Command{
	Use:   "dev-server",
	Short: "Run a local FilmFit backend for development",
	Long: `Run an in-memory FilmFit backend. State is lost on exit.

Point the CLI at it with:
  filmfit --api-url http://localhost:8080 login --email ` + demoEmail + ` --password ` + demoPassword,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runDevServer(ctx, os.Stdout)
		if exitCode != exitOK {
			os.Exit(exitCode)
		}
	},
}

func init() {
	devServerCmd.Flags().StringVar(&devServerAddr, "addr", ":8080", "Listen address")
	devServerCmd.Flags().BoolVar(&devServerNoSeed, "no-seed", false, "Start without the demo account")
	rootCmd.AddCommand(devServerCmd)
}

func runDevServer(ctx context.Context, w io.Writer) int {
	cfg, err := config.Load(config.Flags{APIURL: apiURL})
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return exitError
	}
	logger.Init(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, Output: os.Stderr})

	srv, err := mockapi.New(mockapi.Options{})
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return exitError
	}
	if !devServerNoSeed {
		if err := seedDemo(srv); err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return exitError
		}
		fmt.Fprintf(w, "Demo account: %s / %s\n", demoEmail, demoPassword)
	}

	if err := srv.ListenAndServe(ctx, devServerAddr); err != nil {
		slog.Error("Server failed", "error", err)
		return exitError
	}
	return exitOK
}

// seedDemo creates the demo account and a friend with a few wished films so
// suggestions and group recommendations have data
func seedDemo(srv *mockapi.Server) error {
	demo, err := srv.AddUser(demoUsername, demoEmail, demoPassword)
	if err != nil {
		return fmt.Errorf("seed demo user: %w", err)
	}
	friend, err := srv.AddUser("cinephile", "cinephile@filmfit.dev", demoPassword)
	if err != nil {
		return fmt.Errorf("seed friend: %w", err)
	}
	if err := srv.Follow(demo, friend); err != nil {
		return fmt.Errorf("seed follow: %w", err)
	}
	for _, filmID := range []int64{1, 4, 10} {
		if err := srv.Wish(friend, filmID); err != nil {
			return fmt.Errorf("seed wishlist: %w", err)
		}
	}
	return srv.Wish(demo, 1)
}
