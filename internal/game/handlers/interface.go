package handlers

import (
	"encoding/json"

	"tabletop-server/internal/domain"
	"tabletop-server/internal/session"
	"tabletop-server/pkg/api"
)

// DiceRoller - серверный источник результатов бросков.
// GameService подставляет сюда свой Roller.
type DiceRoller interface {
	Roll(sides, qty int) (results []int, total int)
}

// Context передает хендлеру состояние, нужное для выполнения команды.
// Все ссылки мутабельны: хендлер меняет комнату напрямую, сериализацию
// гарантирует цикл сервиса.
type Context struct {
	Store *session.Store
	Dice  DiceRoller

	// Conn - отправитель команды.
	Conn *domain.Connection

	// Room - комната отправителя. nil для host_game/join_game.
	Room *domain.Room
}

// Scope определяет адресатов исходящего события.
type Scope int

const (
	// ToSender - ответ только отправителю (room_joined, error_message).
	ToSender Scope = iota
	// ToRoom - всем участникам комнаты, включая отправителя.
	ToRoom
	// ToRoomExceptSender - всем, кроме отправителя (update_token).
	ToRoomExceptSender
)

// Outbound - одно исходящее событие с областью доставки.
type Outbound struct {
	Scope Scope
	Event api.ServerEvent
}

// Result - результат выполнения команды. Хендлер НЕ рассылает события
// сам, он возвращает их, а маршрутизацией занимается сервис.
type Result struct {
	Events []Outbound
}

// Reply добавляет событие для отправителя.
func (r *Result) Reply(event string, payload interface{}) {
	r.Events = append(r.Events, Outbound{
		Scope: ToSender,
		Event: api.ServerEvent{Event: event, Payload: payload},
	})
}

// Broadcast добавляет событие для всей комнаты, включая отправителя.
func (r *Result) Broadcast(event string, payload interface{}) {
	r.Events = append(r.Events, Outbound{
		Scope: ToRoom,
		Event: api.ServerEvent{Event: event, Payload: payload},
	})
}

// BroadcastOthers добавляет событие для комнаты без отправителя.
func (r *Result) BroadcastOthers(event string, payload interface{}) {
	r.Events = append(r.Events, Outbound{
		Scope: ToRoomExceptSender,
		Event: api.ServerEvent{Event: event, Payload: payload},
	})
}

// EmptyResult - пустой успешный ответ (молчаливый no-op).
func EmptyResult() Result {
	return Result{}
}

// HandlerFunc - это контракт для любой команды протокола.
type HandlerFunc func(ctx Context, payload json.RawMessage) (Result, error)
