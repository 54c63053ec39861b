// ABOUTME: Prompts for values missing from the command line
// ABOUTME: Forms only run on interactive terminals; otherwise missing flags are an error

package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/nsttdn/Film-fit/internal/tui/forms"
)

// fillForm runs form when the terminal allows it. A nil form means nothing
// is missing. Aborting the form counts as cancellation.
func fillForm(ctx context.Context, a *app, form *huh.Form, missing string) error {
	if form == nil {
		return nil
	}
	if !a.interactive {
		return fmt.Errorf("missing %s; pass the flags or run in a terminal", missing)
	}
	if err := forms.Run(ctx, form); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return context.Canceled
		}
		return err
	}
	return nil
}
