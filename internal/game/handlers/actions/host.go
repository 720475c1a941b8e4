package actions

import (
	"strings"

	"tabletop-server/internal/game/handlers"
	"tabletop-server/pkg/api"
)

// sanitizeUsername подставляет дефолтное имя вместо пустого
// и обрезает слишком длинные.
func sanitizeUsername(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "Player"
	}
	if len(name) > api.MaxUsernameLen {
		name = name[:api.MaxUsernameLen]
	}
	return name
}

// HandleHostGame создает комнату и делает отправителя ее хостом.
func HandleHostGame(ctx handlers.Context, p api.HostGamePayload) (handlers.Result, error) {
	ctx.Conn.Username = sanitizeUsername(p.Username)

	room := ctx.Store.CreateRoom()
	ctx.Store.Join(room, ctx.Conn, true)

	var res handlers.Result
	res.Reply(api.EventRoomJoined, api.RoomJoinedEvent{
		Code:     room.Code,
		IsHost:   true,
		Username: ctx.Conn.Username,
	})
	res.Reply(api.EventInitState, handlers.StateView(room))
	return res, nil
}
