package handlers

import (
	"tabletop-server/internal/domain"
	"tabletop-server/pkg/api"
)

// StateView собирает полный снимок комнаты для init_state.
// Owner отдаем всем: клиенту он нужен, чтобы включать/выключать
// перетаскивание своих токенов.
func StateView(room *domain.Room) api.RoomStateView {
	view := api.RoomStateView{
		Background: room.Background,
		MapWidth:   room.MapWidth,
		MapHeight:  room.MapHeight,
		Tokens:     make([]api.TokenView, 0, len(room.Tokens)),
	}
	for _, t := range room.Tokens {
		view.Tokens = append(view.Tokens, api.TokenView{
			ID:    t.ID,
			X:     t.X,
			Y:     t.Y,
			Color: t.Color,
			Label: t.Label,
			HP:    t.HP,
			MaxHP: t.MaxHP,
			Owner: t.Owner,
		})
	}
	return view
}
