package actions

import (
	"tabletop-server/internal/domain"
	"tabletop-server/internal/game/handlers"
	"tabletop-server/pkg/api"
)

// HandleMoveToken применяет заявку на перемещение токена.
// Неизвестный токен и нехватка полномочий - молчаливый no-op.
// Координаты заявки прижимаются к центру ближайшей клетки в границах
// карты: во время перетаскивания клиент может слать точки вне сетки,
// но авторитетное состояние всегда на сетке.
func HandleMoveToken(ctx handlers.Context, p api.MoveTokenPayload) (handlers.Result, error) {
	token := ctx.Room.FindToken(p.ID)
	if token == nil {
		return handlers.EmptyResult(), nil
	}

	if !domain.CanMoveToken(ctx.Conn, token) {
		return handlers.EmptyResult(), nil
	}

	token.X = domain.SnapToGrid(p.X, float64(ctx.Room.MapWidth))
	token.Y = domain.SnapToGrid(p.Y, float64(ctx.Room.MapHeight))

	var res handlers.Result
	res.BroadcastOthers(api.EventUpdateToken, api.TokenMoveEvent{
		ID: token.ID,
		X:  token.X,
		Y:  token.Y,
	})
	return res, nil
}
