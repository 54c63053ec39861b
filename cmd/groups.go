// ABOUTME: Group commands for the filmfit CLI
// ABOUTME: List groups, create one from your friends, and show films common to a group

package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nsttdn/Film-fit/internal/client"
	"github.com/nsttdn/Film-fit/internal/tui/forms"
	"github.com/nsttdn/Film-fit/internal/tui/icons"
	"github.com/nsttdn/Film-fit/internal/tui/styles"
)

var (
	groupName    string
	groupMembers []int64
)

var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "List your groups",
	Args:  cobra.NoArgs,
	Run:   runWithApp(runGroups),
}

var groupsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a group with some of your friends",
	Long: `Create a group. Without --name and --member the group is built in a form
listing your friends. A group needs a name and at least one member.`,
	Args: cobra.NoArgs,
	Run:  runWithApp(runGroupsCreate),
}

var groupsFilmsCmd = &cobra.Command{
	Use:   "films <group-id>",
	Short: "List films every member of a group wants to watch",
	Args:  cobra.ExactArgs(1),
	Run:   runWithApp(runGroupsFilms),
}

func init() {
	groupsCreateCmd.Flags().StringVar(&groupName, "name", "", "Group name")
	groupsCreateCmd.Flags().Int64SliceVar(&groupMembers, "member", nil, "Member user id (repeatable)")
	groupsCmd.AddCommand(groupsCreateCmd)
	groupsCmd.AddCommand(groupsFilmsCmd)
	rootCmd.AddCommand(groupsCmd)
}

func runGroups(ctx context.Context, a *app, w io.Writer, _ []string) int {
	token, err := a.authToken()
	if err != nil {
		return printError(w, err)
	}

	res := withLoading(ctx, a, "Loading groups…", func(ctx context.Context) ([]client.Group, error) {
		return a.client.GetUserGroups(ctx, token)
	})
	if res.Err != nil {
		return printError(w, res.Err)
	}

	if IsJSONOutput() {
		return writeJSON(w, res.Value)
	}
	if len(res.Value) == 0 {
		fmt.Fprintln(w, styles.Subtitle.Render("No groups yet. Use `filmfit groups create`."))
		return exitOK
	}
	fmt.Fprintln(w, styles.Title.Render(icons.Group.String()+" Groups"))
	for _, g := range res.Value {
		fmt.Fprintln(w, formatGroup(g))
	}
	return exitOK
}

func formatGroup(g client.Group) string {
	names := make([]string, 0, len(g.Users))
	for _, u := range g.Users {
		names = append(names, u.Username)
	}
	return fmt.Sprintf("%s  %s  %s", formatID(g.ID), styles.ValueStyle.Render(g.Name), styles.Subtitle.Render(strings.Join(names, ", ")))
}

func runGroupsCreate(ctx context.Context, a *app, w io.Writer, _ []string) int {
	token, err := a.authToken()
	if err != nil {
		return printError(w, err)
	}
	req := client.CreateGroupRequest{Name: groupName, UserIDs: groupMembers}

	// The form is offered only when nothing was passed on the command line;
	// partial flags go straight to validation.
	if a.interactive && req.Name == "" && len(req.UserIDs) == 0 {
		friends := withLoading(ctx, a, "Loading friends…", func(ctx context.Context) ([]client.Friend, error) {
			return a.client.GetUserFriends(ctx, token)
		})
		if friends.Err != nil {
			return printError(w, friends.Err)
		}
		if err := fillForm(ctx, a, forms.NewGroupForm(&req, friends.Value), "--name or --member"); err != nil {
			return printError(w, err)
		}
	}

	if err := client.ValidateGroup(req); err != nil {
		return printError(w, err)
	}

	res := withLoading(ctx, a, "Creating group…", func(ctx context.Context) (*client.Group, error) {
		return a.client.CreateUserGroup(ctx, token, req)
	})
	if res.Err != nil {
		return printError(w, res.Err)
	}

	if IsJSONOutput() {
		return writeJSON(w, res.Value)
	}
	printSuccess(w, "Created group %q", res.Value.Name)
	fmt.Fprintln(w, formatGroup(*res.Value))
	return exitOK
}

func runGroupsFilms(ctx context.Context, a *app, w io.Writer, args []string) int {
	groupID, err := parseID(args[0])
	if err != nil {
		return printError(w, err)
	}
	token, err := a.authToken()
	if err != nil {
		return printError(w, err)
	}

	res := withLoading(ctx, a, "Loading group films…", func(ctx context.Context) ([]client.Film, error) {
		return a.client.GetFilmsForGroup(ctx, token, groupID)
	})
	if res.Err != nil {
		return printError(w, res.Err)
	}

	if IsJSONOutput() {
		return writeJSON(w, res.Value)
	}
	writeFilms(w, fmt.Sprintf("%s Films for group #%d", icons.Group, groupID), res.Value, "No films in common yet")
	return exitOK
}
