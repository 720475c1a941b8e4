package domain

import "testing"

func TestParseAction(t *testing.T) {
	tests := []struct {
		in   string
		want ActionType
	}{
		{"host_game", ActionHostGame},
		{"JOIN_GAME", ActionJoinGame},
		{" move_token ", ActionMoveToken},
		{"update_map", ActionUpdateMap},
		{"assign_token", ActionAssignToken},
		{"add_token", ActionAddToken},
		{"remove_token", ActionRemoveToken},
		{"update_hp", ActionUpdateHP},
		{"roll_dice", ActionRollDice},
		{"roll_complete", ActionRollComplete},
		{"chat_message", ActionChatMessage},
		{"teleport", ActionUnknown},
		{"", ActionUnknown},
	}

	for _, tt := range tests {
		if got := ParseAction(tt.in); got != tt.want {
			t.Errorf("ParseAction(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRequiresRoom(t *testing.T) {
	if ActionHostGame.RequiresRoom() {
		t.Error("host_game must be allowed before joining a room")
	}
	if ActionJoinGame.RequiresRoom() {
		t.Error("join_game must be allowed before joining a room")
	}
	for _, a := range []ActionType{
		ActionMoveToken, ActionUpdateMap, ActionAssignToken,
		ActionRollDice, ActionChatMessage,
	} {
		if !a.RequiresRoom() {
			t.Errorf("%s must require room membership", a)
		}
	}
}
