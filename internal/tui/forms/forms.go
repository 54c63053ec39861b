// ABOUTME: Interactive huh forms for register, login and group creation
// ABOUTME: Fill in request values the user did not pass as flags

package forms

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nsttdn/Film-fit/internal/client"
)

// Theme returns the huh theme matching the CLI palette
func Theme() *huh.Theme {
	t := huh.ThemeBase()

	rose := lipgloss.Color("#E11D48")
	roseLight := lipgloss.Color("#FB7185")
	gray := lipgloss.Color("#9CA3AF")
	grayLight := lipgloss.Color("#E5E7EB")
	red := lipgloss.Color("#F87171")
	slate := lipgloss.Color("#334155")

	t.Group.Title = lipgloss.NewStyle().
		Foreground(rose).
		Bold(true).
		MarginBottom(1)
	t.Group.Description = lipgloss.NewStyle().
		Foreground(gray).
		MarginBottom(1)

	t.Focused.Base = lipgloss.NewStyle().
		PaddingLeft(1).
		BorderStyle(lipgloss.ThickBorder()).
		BorderLeft(true).
		BorderForeground(rose)
	t.Focused.Title = lipgloss.NewStyle().
		Foreground(roseLight).
		Bold(true)
	t.Focused.Description = lipgloss.NewStyle().
		Foreground(gray)
	t.Focused.ErrorIndicator = lipgloss.NewStyle().
		Foreground(red).
		SetString(" *")
	t.Focused.ErrorMessage = lipgloss.NewStyle().
		Foreground(red)

	t.Focused.SelectSelector = lipgloss.NewStyle().
		Foreground(rose).
		SetString("> ")
	t.Focused.Option = lipgloss.NewStyle().
		Foreground(grayLight)
	t.Focused.SelectedOption = lipgloss.NewStyle().
		Foreground(rose).
		Bold(true)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().
		Foreground(rose).
		SetString("[x] ")
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().
		Foreground(gray).
		SetString("[ ] ")

	t.Focused.TextInput.Cursor = lipgloss.NewStyle().
		Foreground(rose)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().
		Foreground(gray)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().
		Foreground(rose)
	t.Focused.TextInput.Text = lipgloss.NewStyle().
		Foreground(grayLight)

	t.Focused.FocusedButton = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(rose).
		Padding(0, 2).
		MarginRight(1)
	t.Focused.BlurredButton = lipgloss.NewStyle().
		Foreground(gray).
		Background(slate).
		Padding(0, 2).
		MarginRight(1)

	// Blurred fields inherit the focused styles with muted colors
	t.Blurred = t.Focused
	t.Blurred.Base = lipgloss.NewStyle().
		PaddingLeft(1).
		BorderStyle(lipgloss.HiddenBorder()).
		BorderLeft(true)
	t.Blurred.Title = lipgloss.NewStyle().
		Foreground(gray)
	t.Blurred.SelectSelector = lipgloss.NewStyle().
		Foreground(gray).
		SetString("  ")
	t.Blurred.Option = lipgloss.NewStyle().
		Foreground(gray)

	return t
}

// NewLoginForm asks for the credentials missing from req
func NewLoginForm(req *client.LoginRequest) *huh.Form {
	var fields []huh.Field
	if req.Email == "" {
		fields = append(fields, huh.NewInput().
			Title("Email").
			Value(&req.Email))
	}
	if req.Password == "" {
		fields = append(fields, huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(&req.Password))
	}
	return newForm("Log in to FilmFit", fields)
}

// NewRegisterForm asks for the account details missing from req
func NewRegisterForm(req *client.RegisterRequest) *huh.Form {
	var fields []huh.Field
	if req.Username == "" {
		fields = append(fields, huh.NewInput().
			Title("Username").
			Value(&req.Username))
	}
	if req.Email == "" {
		fields = append(fields, huh.NewInput().
			Title("Email").
			Value(&req.Email))
	}
	if req.Password == "" {
		fields = append(fields, huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(&req.Password))
	}
	return newForm("Create a FilmFit account", fields)
}

// NewGroupForm asks for a group name and the friends to add
func NewGroupForm(req *client.CreateGroupRequest, friends []client.Friend) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Title("Group name").
			Placeholder("e.g., Friday movie night").
			Value(&req.Name),
		huh.NewMultiSelect[int64]().
			Title("Members").
			Description("Space to toggle, Enter to confirm").
			Options(FriendOptions(friends)...).
			Value(&req.UserIDs),
	}
	return newForm("New group", fields)
}

// FriendOptions turns friends into multi-select options keyed by username
func FriendOptions(friends []client.Friend) []huh.Option[int64] {
	options := make([]huh.Option[int64], 0, len(friends))
	for _, f := range friends {
		options = append(options, huh.NewOption(fmt.Sprintf("%s (#%d)", f.Username, f.ID), f.ID))
	}
	return options
}

func newForm(title string, fields []huh.Field) *huh.Form {
	if len(fields) == 0 {
		return nil
	}
	return huh.NewForm(
		huh.NewGroup(fields...).Title(title),
	).WithTheme(Theme())
}

// Run shows form unless it is nil; huh.ErrUserAborted is returned on Ctrl+C
func Run(ctx context.Context, form *huh.Form) error {
	if form == nil {
		return nil
	}
	return form.RunWithContext(ctx)
}
