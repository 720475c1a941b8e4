package domain

import "encoding/json"

// InternalCommand - команда внутри сервиса: распарсенное действие плюс
// ID подключения-отправителя. ConnID проставляет сервер (WebSocket-клиент),
// клиентскому вводу он никогда не доверяется.
type InternalCommand struct {
	Action  ActionType
	ConnID  string
	Payload json.RawMessage
}
