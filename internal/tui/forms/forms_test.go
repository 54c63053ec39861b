// ABOUTME: Tests for interactive forms
// ABOUTME: Validates option building and which prompts are skipped

package forms

import (
	"context"
	"testing"

	"github.com/nsttdn/Film-fit/internal/client"
)

func TestFriendOptions(t *testing.T) {
	friends := []client.Friend{{ID: 2, Username: "bob"}, {ID: 7, Username: "carol"}}

	options := FriendOptions(friends)

	if len(options) != 2 {
		t.Fatalf("expected 2 options, got %d", len(options))
	}
	if options[0].Key != "bob (#2)" || options[0].Value != 2 {
		t.Errorf("unexpected first option %+v", options[0])
	}
	if options[1].Key != "carol (#7)" || options[1].Value != 7 {
		t.Errorf("unexpected second option %+v", options[1])
	}
}

func TestFriendOptions_Empty(t *testing.T) {
	if got := FriendOptions(nil); len(got) != 0 {
		t.Errorf("expected no options, got %d", len(got))
	}
}

func TestLoginForm_SkippedWhenComplete(t *testing.T) {
	req := &client.LoginRequest{Email: "a@b.c", Password: "pw"}
	form := NewLoginForm(req)
	if form != nil {
		t.Fatal("expected no form when all fields are set")
	}
	if err := Run(context.Background(), form); err != nil {
		t.Errorf("running a nil form should be a no-op, got %v", err)
	}
}

func TestLoginForm_PromptsForMissing(t *testing.T) {
	if NewLoginForm(&client.LoginRequest{Email: "a@b.c"}) == nil {
		t.Error("expected a form when the password is missing")
	}
}

func TestRegisterForm(t *testing.T) {
	if NewRegisterForm(&client.RegisterRequest{Username: "u", Email: "e", Password: "p"}) != nil {
		t.Error("expected no form when all fields are set")
	}
	if NewRegisterForm(&client.RegisterRequest{}) == nil {
		t.Error("expected a form for an empty request")
	}
}

func TestGroupForm(t *testing.T) {
	req := &client.CreateGroupRequest{}
	if NewGroupForm(req, []client.Friend{{ID: 1, Username: "bob"}}) == nil {
		t.Error("expected a group form")
	}
}

func TestTheme(t *testing.T) {
	if Theme() == nil {
		t.Fatal("expected a theme")
	}
}
