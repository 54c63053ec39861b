// ABOUTME: Loading indicator shown while a gateway call is in flight
// ABOUTME: Runs the call in the background behind a bubbletea spinner and returns its result

package loading

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/nsttdn/Film-fit/internal/client"
	"github.com/nsttdn/Film-fit/internal/tui/styles"
)

// Interactive reports whether w is a terminal that can show the spinner
func Interactive(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type finishedMsg struct{}

type model struct {
	spinner spinner.Model
	title   string
	done    bool
}

func newModel(title string) model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.Primary)
	return model{spinner: s, title: title}
}

func (m model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case finishedMsg:
		m.done = true
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + " " + styles.Subtitle.Render(m.title) + "\n"
}

// Run executes fn while a spinner titled title is drawn on out. The spinner
// never reads stdin, so Ctrl+C reaches the process as SIGINT and cancels ctx.
func Run[T any](ctx context.Context, out io.Writer, title string, fn func(context.Context) (T, error)) client.Result[T] {
	p := tea.NewProgram(newModel(title),
		tea.WithContext(ctx),
		tea.WithOutput(out),
		tea.WithInput(nil),
	)

	results := make(chan client.Result[T], 1)
	go func() {
		results <- client.Call(ctx, fn)
		p.Send(finishedMsg{})
	}()

	// The spinner is cosmetic; a failed or killed program does not affect the call.
	_, _ = p.Run()
	return <-results
}
