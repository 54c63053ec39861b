package loading

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestModel_FinishedQuits(t *testing.T) {
	m := newModel("Loading")

	if !strings.Contains(m.View(), "Loading") {
		t.Errorf("expected title in view, got %q", m.View())
	}

	updated, cmd := m.Update(finishedMsg{})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if updated.(model).View() != "" {
		t.Errorf("expected empty view after finish, got %q", updated.(model).View())
	}
}

func TestInteractive_NonTerminal(t *testing.T) {
	if Interactive(&bytes.Buffer{}) {
		t.Error("a buffer is not a terminal")
	}
}

func TestRun_ReturnsResult(t *testing.T) {
	res := Run(context.Background(), io.Discard, "Loading", func(ctx context.Context) (int, error) {
		return 42, nil
	})
	if !res.Ok() || res.Value != 42 {
		t.Errorf("expected 42, got %+v", res)
	}

	boom := errors.New("boom")
	failed := Run(context.Background(), io.Discard, "Loading", func(ctx context.Context) (string, error) {
		return "", boom
	})
	if !errors.Is(failed.Err, boom) {
		t.Errorf("expected boom, got %v", failed.Err)
	}
}

func TestRun_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := Run(ctx, io.Discard, "Loading", func(ctx context.Context) (int, error) {
		<-ctx.Done()
		return 0, ctx.Err()
	})
	if !errors.Is(res.Err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", res.Err)
	}
}
