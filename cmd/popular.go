// ABOUTME: Popular and suggestions commands for the filmfit CLI
// ABOUTME: List films in the order the server returns them

package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/nsttdn/Film-fit/internal/client"
	"github.com/nsttdn/Film-fit/internal/tui/icons"
	"github.com/nsttdn/Film-fit/internal/tui/styles"
)

var popularCmd = &cobra.Command{
	Use:   "popular",
	Short: "List popular films",
	Args:  cobra.NoArgs,
	Run:   runWithApp(runPopular),
}

var suggestionsCmd = &cobra.Command{
	Use:   "suggestions",
	Short: "List films suggested from the users you follow",
	Args:  cobra.NoArgs,
	Run:   runWithApp(runSuggestions),
}

func init() {
	rootCmd.AddCommand(popularCmd)
	rootCmd.AddCommand(suggestionsCmd)
}

func runPopular(ctx context.Context, a *app, w io.Writer, _ []string) int {
	res := withLoading(ctx, a, "Loading popular films…", a.client.GetPopularMovies)
	if res.Err != nil {
		return printError(w, res.Err)
	}

	if IsJSONOutput() {
		return writeJSON(w, res.Value)
	}
	if len(res.Value) == 0 {
		fmt.Fprintln(w, styles.Subtitle.Render("No popular films"))
		return exitOK
	}
	fmt.Fprintln(w, styles.Title.Render(icons.Popular.String()+" Popular now"))
	for _, m := range res.Value {
		fmt.Fprintln(w, formatPopularMovie(m))
	}
	return exitOK
}

func runSuggestions(ctx context.Context, a *app, w io.Writer, _ []string) int {
	token, err := a.authToken()
	if err != nil {
		return printError(w, err)
	}

	res := withLoading(ctx, a, "Loading suggestions…", func(ctx context.Context) ([]client.Film, error) {
		return a.client.GetSuggestions(ctx, token)
	})
	if res.Err != nil {
		return printError(w, res.Err)
	}

	if IsJSONOutput() {
		return writeJSON(w, res.Value)
	}
	writeFilms(w, icons.Star.String()+" Suggested for you", res.Value, "No suggestions yet. Follow users to get recommendations.")
	return exitOK
}
