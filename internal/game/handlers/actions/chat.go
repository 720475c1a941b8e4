package actions

import (
	"tabletop-server/internal/game/handlers"
	"tabletop-server/pkg/api"
)

// HandleChatMessage ретранслирует сообщение всей комнате, включая
// отправителя: так у всех одинаковый порядок строк и нет расхождения
// между локальным эхом и сетевым.
func HandleChatMessage(ctx handlers.Context, p api.ChatPayload) (handlers.Result, error) {
	var res handlers.Result
	res.Broadcast(api.EventChatMessage, api.ChatMessageEvent{
		User: p.User,
		Text: p.Text,
	})
	return res, nil
}

// HandleRollComplete - заглушка для события протокола старого образца,
// где клиент бросавшего присылал подсчитанную сумму. Итоги бросков
// теперь считает сервер, поэтому событие игнорируется: принимать
// сумму от клиента значит доверять ему результат.
func HandleRollComplete(ctx handlers.Context) (handlers.Result, error) {
	return handlers.EmptyResult(), nil
}
