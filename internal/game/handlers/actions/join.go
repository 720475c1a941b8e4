package actions

import (
	"fmt"
	"strings"

	"tabletop-server/internal/game/handlers"
	"tabletop-server/pkg/api"
)

// HandleJoinGame вводит отправителя в существующую комнату.
// Код приводится к верхнему регистру перед поиском; неизвестный код -
// это NotFound только для отправителя, комната никого не узнает.
func HandleJoinGame(ctx handlers.Context, p api.JoinGamePayload) (handlers.Result, error) {
	code := strings.ToUpper(p.Code)

	room := ctx.Store.FindRoom(code)
	if room == nil {
		var res handlers.Result
		res.Reply(api.EventErrorMessage, "Room not found!")
		return res, nil
	}

	ctx.Conn.Username = sanitizeUsername(p.Username)
	ctx.Store.Join(room, ctx.Conn, false)

	var res handlers.Result
	res.Reply(api.EventRoomJoined, api.RoomJoinedEvent{
		Code:     room.Code,
		IsHost:   false,
		Username: ctx.Conn.Username,
	})
	res.Reply(api.EventInitState, handlers.StateView(room))
	res.Broadcast(api.EventChatMessage, api.ChatMessageEvent{
		User: "System",
		Text: fmt.Sprintf("%s joined.", ctx.Conn.Username),
	})
	return res, nil
}
