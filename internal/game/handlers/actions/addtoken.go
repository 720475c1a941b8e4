package actions

import (
	"tabletop-server/internal/domain"
	"tabletop-server/internal/game/handlers"
	"tabletop-server/pkg/api"
	"tabletop-server/pkg/utils"
)

// HandleAddToken добавляет токен на доску. Только хост.
// ID, если клиент его не прислал, генерирует сервер; дубликат ID -
// ошибка отправителю, доска не меняется.
func HandleAddToken(ctx handlers.Context, p api.AddTokenPayload) (handlers.Result, error) {
	if !domain.CanManageBoard(ctx.Conn) {
		return handlers.EmptyResult(), nil
	}

	id := p.ID
	if id == "" {
		id = utils.GenerateID()
	}
	if ctx.Room.FindToken(id) != nil {
		var res handlers.Result
		res.Reply(api.EventErrorMessage, "Token id already in use")
		return res, nil
	}

	color := p.Color
	if color == "" {
		color = "#888888"
	}
	label := p.Label
	if label == "" {
		label = "?"
	}

	ctx.Room.Tokens = append(ctx.Room.Tokens, &domain.Token{
		ID:    id,
		X:     domain.SnapToGrid(p.X, float64(ctx.Room.MapWidth)),
		Y:     domain.SnapToGrid(p.Y, float64(ctx.Room.MapHeight)),
		Color: color,
		Label: label,
		HP:    p.HP,
		MaxHP: p.MaxHP,
	})

	var res handlers.Result
	res.Broadcast(api.EventInitState, handlers.StateView(ctx.Room))
	return res, nil
}

// HandleRemoveToken убирает токен с доски. Только хост.
// Неизвестный ID - молчаливый no-op.
func HandleRemoveToken(ctx handlers.Context, p api.RemoveTokenPayload) (handlers.Result, error) {
	if !domain.CanManageBoard(ctx.Conn) {
		return handlers.EmptyResult(), nil
	}

	if !ctx.Room.RemoveToken(p.TokenID) {
		return handlers.EmptyResult(), nil
	}

	var res handlers.Result
	res.Broadcast(api.EventInitState, handlers.StateView(ctx.Room))
	return res, nil
}
