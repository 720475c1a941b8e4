package actions

import (
	"fmt"
	"strings"

	"tabletop-server/internal/game/handlers"
	"tabletop-server/pkg/api"

	"github.com/google/uuid"
)

// HandleRollDice выполняет авторитетный бросок костей.
// Сервер тянет каждый кубик сам и сам же считает сумму; клиентам
// уходит один общий trigger_god_roll плюс готовая строка чата.
// Никакого обратного подтверждения от клиента не существует.
func HandleRollDice(ctx handlers.Context, p api.RollDicePayload) (handlers.Result, error) {
	qty := p.Qty
	if qty == 0 {
		qty = 1
	}

	results, total := ctx.Dice.Roll(p.Sides, qty)

	user := strings.TrimSpace(p.Username)
	if user == "" {
		user = ctx.Conn.Username
	}

	var res handlers.Result
	res.Broadcast(api.EventTriggerGodRoll, api.GodRollEvent{
		RollID:   uuid.NewString(),
		Sides:    p.Sides,
		Qty:      qty,
		Results:  results,
		Total:    total,
		RollerID: ctx.Conn.ID,
		User:     user,
		Color:    p.Color,
	})
	res.Broadcast(api.EventChatMessage, api.ChatMessageEvent{
		User: user,
		Text: formatRoll(p.Sides, qty, results, total),
	})
	return res, nil
}

// formatRoll собирает строку чата в формате оригинального клиента:
// "Rolled D20: [ 14 ]" для одного кубика,
// "Rolled 3D20: [ 5 12 18 ] = 35" для нескольких.
func formatRoll(sides, qty int, results []int, total int) string {
	parts := make([]string, len(results))
	for i, r := range results {
		parts[i] = fmt.Sprintf("%d", r)
	}
	faces := strings.Join(parts, " ")

	if qty == 1 {
		return fmt.Sprintf("Rolled D%d: [ %s ]", sides, faces)
	}
	return fmt.Sprintf("Rolled %dD%d: [ %s ] = %d", qty, sides, faces, total)
}
