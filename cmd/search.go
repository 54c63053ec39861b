// ABOUTME: Search command for the filmfit CLI
// ABOUTME: Looks up users and films concurrently and renders both once both finish

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/nsttdn/Film-fit/internal/client"
	"github.com/nsttdn/Film-fit/internal/tui/icons"
	"github.com/nsttdn/Film-fit/internal/tui/styles"
)

var (
	searchPage int
	searchSize int
	searchSort []string
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search users by name and films by title",
	Args:  cobra.MinimumNArgs(1),
	Run:   runWithApp(runSearch),
}

func init() {
	def := client.DefaultPageable()
	searchCmd.Flags().IntVar(&searchPage, "page", def.Page, "Film results page (0-based)")
	searchCmd.Flags().IntVar(&searchSize, "size", def.Size, "Film results per page")
	searchCmd.Flags().StringSliceVar(&searchSort, "sort", def.Sort, "Film sort keys, e.g. popularity or title,asc")
	rootCmd.AddCommand(searchCmd)
}

type searchOutput struct {
	Users []client.User    `json:"users"`
	Films *client.FilmPage `json:"films"`
}

// rejectedAsEmpty reports whether a failed half of the search should be shown
// as an empty result: the server answered, it just had nothing usable
func rejectedAsEmpty(err error) bool {
	var statusErr *client.StatusError
	var decodeErr *client.DecodeError
	return errors.As(err, &statusErr) || errors.As(err, &decodeErr)
}

func search(ctx context.Context, c *client.Client, query string, page client.Pageable) (searchOutput, error) {
	out := searchOutput{Users: []client.User{}, Films: &client.FilmPage{Content: []client.Film{}}}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		users, err := c.SearchUsers(gctx, query)
		if err != nil {
			if rejectedAsEmpty(err) {
				slog.Warn("User search failed, showing no users", "error", err)
				return nil
			}
			return err
		}
		out.Users = users
		return nil
	})
	g.Go(func() error {
		films, err := c.SearchFilms(gctx, query, page)
		if err != nil {
			if rejectedAsEmpty(err) {
				slog.Warn("Film search failed, showing no films", "error", err)
				return nil
			}
			return err
		}
		out.Films = films
		return nil
	})

	if err := g.Wait(); err != nil {
		return searchOutput{}, err
	}
	return out, nil
}

func runSearch(ctx context.Context, a *app, w io.Writer, args []string) int {
	query := strings.TrimSpace(strings.Join(args, " "))
	page := client.Pageable{Page: searchPage, Size: searchSize, Sort: searchSort}

	res := withLoading(ctx, a, "Searching…", func(ctx context.Context) (searchOutput, error) {
		return search(ctx, a.client, query, page)
	})
	if res.Err != nil {
		return printError(w, res.Err)
	}

	if IsJSONOutput() {
		return writeJSON(w, res.Value)
	}
	fmt.Fprint(w, formatSearch(res.Value))
	return exitOK
}

func formatSearch(out searchOutput) string {
	if len(out.Users) == 0 && len(out.Films.Content) == 0 {
		return styles.Subtitle.Render(icons.Search.String()+" Nothing found") + "\n"
	}

	var b strings.Builder
	if len(out.Users) > 0 {
		b.WriteString(styles.Title.Render(icons.User.String()+" Users") + "\n")
		for _, u := range out.Users {
			b.WriteString(formatUser(u) + "\n")
		}
	}
	if len(out.Films.Content) > 0 {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(styles.Title.Render(icons.Film.String()+" Films") + "\n")
		for _, f := range out.Films.Content {
			b.WriteString(formatFilm(f) + "\n")
		}
		if out.Films.TotalPages > 1 {
			b.WriteString(styles.Help.Render(fmt.Sprintf("%d films in %d pages; use --page to see more", out.Films.TotalElements, out.Films.TotalPages)) + "\n")
		}
	}
	return b.String()
}
