// ABOUTME: Follow, following and friends commands for the filmfit CLI
// ABOUTME: Manage and list the users you follow

package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/nsttdn/Film-fit/internal/client"
	"github.com/nsttdn/Film-fit/internal/session"
	"github.com/nsttdn/Film-fit/internal/tui/icons"
	"github.com/nsttdn/Film-fit/internal/tui/styles"
)

var followCmd = &cobra.Command{
	Use:   "follow <user-id>",
	Short: "Follow a user",
	Args:  cobra.ExactArgs(1),
	Run:   runWithApp(runFollow),
}

var followingCmd = &cobra.Command{
	Use:   "following [user-id]",
	Short: "List the users a user follows (default: you)",
	Args:  cobra.MaximumNArgs(1),
	Run:   runWithApp(runFollowing),
}

var friendsCmd = &cobra.Command{
	Use:   "friends",
	Short: "List your friends",
	Args:  cobra.NoArgs,
	Run:   runWithApp(runFriends),
}

func init() {
	rootCmd.AddCommand(followCmd)
	rootCmd.AddCommand(followingCmd)
	rootCmd.AddCommand(friendsCmd)
}

func runFollow(ctx context.Context, a *app, w io.Writer, args []string) int {
	userID, err := parseID(args[0])
	if err != nil {
		return printError(w, err)
	}
	token, err := a.authToken()
	if err != nil {
		return printError(w, err)
	}

	res := withLoading(ctx, a, "Following…", func(ctx context.Context) (struct{}, error) {
		return struct{}{}, a.client.FollowUser(ctx, token, userID)
	})
	if res.Err != nil {
		return printError(w, res.Err)
	}

	if IsJSONOutput() {
		return writeJSON(w, client.MessageResponse{Message: fmt.Sprintf("Following user %d", userID)})
	}
	printSuccess(w, "Now following user #%d", userID)
	return exitOK
}

// followingTarget picks the id argument or falls back to the stored user id
func followingTarget(a *app, args []string) (int64, error) {
	if len(args) == 1 {
		return parseID(args[0])
	}
	id, err := a.store.LoggedInUserID()
	if err != nil {
		return 0, fmt.Errorf("read session: %w", err)
	}
	if id == session.NoUser {
		return 0, client.ErrNoSession
	}
	return id, nil
}

func runFollowing(ctx context.Context, a *app, w io.Writer, args []string) int {
	userID, err := followingTarget(a, args)
	if err != nil {
		return printError(w, err)
	}

	res := withLoading(ctx, a, "Loading…", func(ctx context.Context) ([]client.UserFollowing, error) {
		return a.client.GetUserFollowing(ctx, userID)
	})
	if res.Err != nil {
		return printError(w, res.Err)
	}

	if IsJSONOutput() {
		return writeJSON(w, res.Value)
	}
	if len(res.Value) == 0 {
		fmt.Fprintln(w, styles.Subtitle.Render(fmt.Sprintf("User #%d does not follow anyone yet", userID)))
		return exitOK
	}
	fmt.Fprintln(w, styles.Title.Render(fmt.Sprintf("Followed by #%d", userID)))
	for _, f := range res.Value {
		films := 0
		if f.Wishlist != nil {
			films = len(f.Wishlist.Films)
		}
		fmt.Fprintf(w, "%s %s  %s\n",
			icons.User,
			styles.ValueStyle.Render(f.Username),
			styles.Subtitle.Render(fmt.Sprintf("%d followers, %d following, %d wished", f.FollowersCount, f.FollowingCount, films)),
		)
	}
	return exitOK
}

func runFriends(ctx context.Context, a *app, w io.Writer, _ []string) int {
	token, err := a.authToken()
	if err != nil {
		return printError(w, err)
	}

	res := withLoading(ctx, a, "Loading friends…", func(ctx context.Context) ([]client.Friend, error) {
		return a.client.GetUserFriends(ctx, token)
	})
	if res.Err != nil {
		return printError(w, res.Err)
	}

	if IsJSONOutput() {
		return writeJSON(w, res.Value)
	}
	if len(res.Value) == 0 {
		fmt.Fprintln(w, styles.Subtitle.Render("No friends yet. Use `filmfit follow <user-id>`."))
		return exitOK
	}
	fmt.Fprintln(w, styles.Title.Render("Friends"))
	for _, f := range res.Value {
		fmt.Fprintf(w, "%s  %s %s\n", formatID(f.ID), icons.User, styles.ValueStyle.Render(f.Username))
	}
	return exitOK
}
