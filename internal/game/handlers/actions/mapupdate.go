package actions

import (
	"tabletop-server/internal/domain"
	"tabletop-server/internal/game/handlers"
	"tabletop-server/pkg/api"
)

// HandleUpdateMap заменяет фоновую карту комнаты. Только хост.
// Рассылается полный снимок, а не дельта: новая карта - это новая
// база отрисовки, поверх которой клиенты заново кладут токены.
func HandleUpdateMap(ctx handlers.Context, p api.UpdateMapPayload) (handlers.Result, error) {
	if !domain.CanManageBoard(ctx.Conn) {
		return handlers.EmptyResult(), nil
	}

	ctx.Room.Background = p.Image
	ctx.Room.MapWidth = p.Width
	ctx.Room.MapHeight = p.Height

	// Токены за границей новой карты возвращаем на доску.
	for _, t := range ctx.Room.Tokens {
		t.X = domain.SnapToGrid(t.X, float64(p.Width))
		t.Y = domain.SnapToGrid(t.Y, float64(p.Height))
	}

	var res handlers.Result
	res.Broadcast(api.EventInitState, handlers.StateView(ctx.Room))
	return res, nil
}
