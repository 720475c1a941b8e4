package actions

import (
	"tabletop-server/internal/domain"
	"tabletop-server/internal/game/handlers"
	"tabletop-server/pkg/api"
)

// HandleUpdateHP меняет хиты токена. Только хост.
// Инвариант 0 <= hp <= maxHp поддерживается прижатием, а не отказом:
// хост, вводящий 999 урона, получает токен с нулем хитов.
func HandleUpdateHP(ctx handlers.Context, p api.UpdateHPPayload) (handlers.Result, error) {
	if !domain.CanManageBoard(ctx.Conn) {
		return handlers.EmptyResult(), nil
	}

	token := ctx.Room.FindToken(p.TokenID)
	if token == nil {
		return handlers.EmptyResult(), nil
	}

	if p.MaxHP > 0 {
		token.MaxHP = p.MaxHP
	}
	token.HP = p.HP
	if token.MaxHP > 0 && token.HP > token.MaxHP {
		token.HP = token.MaxHP
	}

	var res handlers.Result
	res.Broadcast(api.EventInitState, handlers.StateView(ctx.Room))
	return res, nil
}
