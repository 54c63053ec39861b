// ABOUTME: Root command for the filmfit CLI
// ABOUTME: Handles global flags and builds the config, logger, session store and API client

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nsttdn/Film-fit/internal/client"
	"github.com/nsttdn/Film-fit/internal/config"
	"github.com/nsttdn/Film-fit/internal/logger"
	"github.com/nsttdn/Film-fit/internal/session"
	"github.com/nsttdn/Film-fit/internal/tui/icons"
	"github.com/nsttdn/Film-fit/internal/tui/loading"
	"github.com/nsttdn/Film-fit/internal/tui/styles"
)

var (
	apiURL     string
	jsonOutput bool
	verbose    bool
)

// Exit codes
const (
	exitOK       = 0
	exitEmpty    = 1
	exitError    = 2
	exitCanceled = 130
)

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "filmfit",
	Short: "Command-line client for FilmFit",
	Long: `filmfit is a command-line client for the FilmFit film recommendation service.

Log in once, then browse popular films, search users and films, keep a wishlist,
follow friends and get recommendations for groups.

Environment Variables:
  FILMFIT_API_URL     Backend API URL (default: ` + client.DefaultBaseURL + `)
  FILMFIT_CONFIG_DIR  Directory for the session database and debug log
  FILMFIT_LOG_LEVEL   debug, info, warn, error (default: info)
  FILMFIT_LOG_FORMAT  text, json (default: text)`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Backend API URL (overrides FILMFIT_API_URL)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-readable text")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Write logs to stderr instead of the debug log")
}

// IsJSONOutput returns whether JSON output is requested
func IsJSONOutput() bool {
	return jsonOutput
}

// app bundles what every command needs
type app struct {
	cfg         *config.Config
	store       session.Store
	client      *client.Client
	interactive bool      // show spinners and prompt with forms
	spinnerOut  io.Writer // where spinners are drawn
	closers     []io.Closer
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i].Close()
	}
}

// newApp loads configuration, starts logging and opens the session store
func newApp() (*app, error) {
	cfg, err := config.Load(config.Flags{APIURL: apiURL})
	if err != nil {
		return nil, err
	}

	a := &app{
		cfg:         cfg,
		client:      client.New(cfg.APIURL),
		interactive: !jsonOutput && loading.Interactive(os.Stdout),
		spinnerOut:  os.Stdout,
	}

	var logOut io.Writer = os.Stderr
	if !verbose {
		f, err := logger.OpenLogFile(cfg.ConfigDir)
		if err != nil {
			logOut = io.Discard
		} else {
			logOut = f
			a.closers = append(a.closers, f)
		}
	}
	logger.Init(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, Output: logOut})

	store, err := session.Open(session.DefaultPath(cfg.ConfigDir))
	if err != nil {
		a.Close()
		return nil, err
	}
	a.store = store
	a.closers = append(a.closers, store)

	slog.Debug("CLI started", "api_url", cfg.APIURL, "config_dir", cfg.ConfigDir)
	return a, nil
}

// runWithApp adapts a runX function to a cobra Run function: it wires the
// signal-aware context and app, then exits with the returned code.
func runWithApp(run func(ctx context.Context, a *app, w io.Writer, args []string) int) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		a, err := newApp()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(exitError)
		}

		exitCode := run(ctx, a, os.Stdout, args)
		a.Close()
		if exitCode != exitOK {
			os.Exit(exitCode)
		}
	}
}

// withLoading runs fn behind a spinner on interactive terminals
func withLoading[T any](ctx context.Context, a *app, title string, fn func(context.Context) (T, error)) client.Result[T] {
	if !a.interactive {
		return client.Call(ctx, fn)
	}
	return loading.Run(ctx, a.spinnerOut, title, fn)
}

// authToken reads the stored bearer token; an absent token is returned as ""
// and rejected by the client before any request is sent
func (a *app) authToken() (string, error) {
	token, _, err := a.store.AuthToken()
	if err != nil {
		return "", fmt.Errorf("read session: %w", err)
	}
	return token, nil
}

// printError reports err and returns the exit code. Cancellation is silent.
func printError(w io.Writer, err error) int {
	if client.IsCanceled(err) {
		return exitCanceled
	}
	slog.Debug("Command failed", "error", err)
	fmt.Fprintf(w, "%s %s\n", styles.StatusCritical.Render(icons.Critical.String()), client.UserMessage(err))
	return exitError
}

// printSuccess writes a confirmation line
func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", styles.StatusOK.Render(icons.CheckOK.String()), fmt.Sprintf(format, args...))
}

// writeJSON writes v as indented JSON
func writeJSON(w io.Writer, v any) int {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return exitError
	}
	fmt.Fprintln(w, string(data))
	return exitOK
}
