package actions

import (
	"tabletop-server/internal/domain"
	"tabletop-server/internal/game/handlers"
	"tabletop-server/pkg/api"
)

// HandleAssignToken назначает токену владельца. Только хост.
// Владельцем может стать только текущий участник комнаты; пустой
// targetSocketId снимает владение. Рассылается полный снимок, чтобы
// все клиенты перестроили доступность перетаскивания.
func HandleAssignToken(ctx handlers.Context, p api.AssignTokenPayload) (handlers.Result, error) {
	if !domain.CanManageBoard(ctx.Conn) {
		return handlers.EmptyResult(), nil
	}

	token := ctx.Room.FindToken(p.TokenID)
	if token == nil {
		return handlers.EmptyResult(), nil
	}

	if p.TargetSocketID != "" && !ctx.Room.HasMember(p.TargetSocketID) {
		return handlers.EmptyResult(), nil
	}

	token.Owner = p.TargetSocketID

	var res handlers.Result
	res.Broadcast(api.EventInitState, handlers.StateView(ctx.Room))
	return res, nil
}
