// ABOUTME: Wishlist commands for the filmfit CLI
// ABOUTME: Show the wishlist and add films to it; an add is followed by a refetch

package cmd

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/nsttdn/Film-fit/internal/client"
	"github.com/nsttdn/Film-fit/internal/tui/icons"
)

var wishlistCmd = &cobra.Command{
	Use:   "wishlist",
	Short: "Show your wishlist",
	Args:  cobra.NoArgs,
	Run:   runWithApp(runWishlist),
}

var wishlistAddCmd = &cobra.Command{
	Use:   "add <film-id>",
	Short: "Add a film to your wishlist",
	Args:  cobra.ExactArgs(1),
	Run:   runWithApp(runWishlistAdd),
}

func init() {
	wishlistCmd.AddCommand(wishlistAddCmd)
	rootCmd.AddCommand(wishlistCmd)
}

// parseID parses a positive id argument
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", client.ErrInvalidID, arg)
	}
	return id, nil
}

func runWishlist(ctx context.Context, a *app, w io.Writer, _ []string) int {
	token, err := a.authToken()
	if err != nil {
		return printError(w, err)
	}
	return showWishlist(ctx, a, w, token)
}

func showWishlist(ctx context.Context, a *app, w io.Writer, token string) int {
	res := withLoading(ctx, a, "Loading wishlist…", func(ctx context.Context) (*client.Wishlist, error) {
		return a.client.GetWishlist(ctx, token)
	})
	if res.Err != nil {
		return printError(w, res.Err)
	}

	if IsJSONOutput() {
		return writeJSON(w, res.Value)
	}
	writeFilms(w, icons.Heart.String()+" Wishlist", res.Value.Films, "No films in wishlist")
	return exitOK
}

func runWishlistAdd(ctx context.Context, a *app, w io.Writer, args []string) int {
	filmID, err := parseID(args[0])
	if err != nil {
		return printError(w, err)
	}
	token, err := a.authToken()
	if err != nil {
		return printError(w, err)
	}

	res := withLoading(ctx, a, "Adding film…", func(ctx context.Context) (struct{}, error) {
		return struct{}{}, a.client.AddFilmToWishlist(ctx, token, filmID)
	})
	if res.Err != nil {
		return printError(w, res.Err)
	}
	if !IsJSONOutput() {
		printSuccess(w, "Added film #%d to your wishlist", filmID)
	}
	return showWishlist(ctx, a, w, token)
}
