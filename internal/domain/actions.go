package domain

import "strings"

// ActionType - тип входящего события протокола.
type ActionType string

const (
	ActionUnknown ActionType = ""

	// Лобби
	ActionHostGame ActionType = "host_game"
	ActionJoinGame ActionType = "join_game"

	// Мутации доски
	ActionMoveToken   ActionType = "move_token"
	ActionUpdateMap   ActionType = "update_map"
	ActionAssignToken ActionType = "assign_token"
	ActionAddToken    ActionType = "add_token"
	ActionRemoveToken ActionType = "remove_token"
	ActionUpdateHP    ActionType = "update_hp"

	// Кости и чат
	ActionRollDice     ActionType = "roll_dice"
	ActionRollComplete ActionType = "roll_complete"
	ActionChatMessage  ActionType = "chat_message"
)

// ParseAction переводит строку с провода в ActionType.
// Регистр не важен. Неизвестные события дают ActionUnknown.
func ParseAction(s string) ActionType {
	switch ActionType(strings.ToLower(strings.TrimSpace(s))) {
	case ActionHostGame:
		return ActionHostGame
	case ActionJoinGame:
		return ActionJoinGame
	case ActionMoveToken:
		return ActionMoveToken
	case ActionUpdateMap:
		return ActionUpdateMap
	case ActionAssignToken:
		return ActionAssignToken
	case ActionAddToken:
		return ActionAddToken
	case ActionRemoveToken:
		return ActionRemoveToken
	case ActionUpdateHP:
		return ActionUpdateHP
	case ActionRollDice:
		return ActionRollDice
	case ActionRollComplete:
		return ActionRollComplete
	case ActionChatMessage:
		return ActionChatMessage
	default:
		return ActionUnknown
	}
}

// RequiresRoom сообщает, должна ли команда выполняться участником комнаты.
// host_game и join_game, наоборот, допустимы только ДО входа в комнату.
func (a ActionType) RequiresRoom() bool {
	switch a {
	case ActionHostGame, ActionJoinGame:
		return false
	default:
		return true
	}
}
