package api

import (
	"encoding/json"
)

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand это корневой объект для всех сообщений от клиента к серверу.
type ClientCommand struct {
	// Action название события: host_game, join_game, move_token,
	// update_map, assign_token, add_token, remove_token, update_hp,
	// roll_dice, chat_message.
	Action string `json:"action"`

	// Payload JSON-объект с данными события. Его структура зависит от Action.
	Payload json.RawMessage `json:"payload"`
}

// --- Payloads ---

// HostGamePayload создает новую комнату.
type HostGamePayload struct {
	Username string `json:"username"`
}

// JoinGamePayload вход в существующую комнату по коду.
// Код приводится к верхнему регистру на сервере.
type JoinGamePayload struct {
	Username string `json:"username"`
	Code     string `json:"code"`
}

// MoveTokenPayload запрос на перемещение токена.
// Координаты клиента - только заявка; сервер прижимает их к границам
// карты и к центру ближайшей клетки перед применением.
type MoveTokenPayload struct {
	ID string  `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// UpdateMapPayload замена фоновой карты (только хост).
// Image - непрозрачный блоб (data-URL), сервер его не интерпретирует.
type UpdateMapPayload struct {
	Image  string `json:"image"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// AssignTokenPayload назначение владельца токена (только хост).
// Пустой TargetSocketID снимает владение.
type AssignTokenPayload struct {
	TokenID        string `json:"tokenId"`
	TargetSocketID string `json:"targetSocketId"`
}

// AddTokenPayload добавление токена на доску (только хост).
// Пустой ID означает "сгенерировать на сервере".
type AddTokenPayload struct {
	ID    string  `json:"id,omitempty"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Color string  `json:"color,omitempty"`
	Label string  `json:"label,omitempty"`
	HP    int     `json:"hp,omitempty"`
	MaxHP int     `json:"maxHp,omitempty"`
}

// RemoveTokenPayload удаление токена (только хост).
type RemoveTokenPayload struct {
	TokenID string `json:"tokenId"`
}

// UpdateHPPayload изменение хитов токена (только хост).
// MaxHP = 0 оставляет текущий максимум без изменений.
type UpdateHPPayload struct {
	TokenID string `json:"tokenId"`
	HP      int    `json:"hp"`
	MaxHP   int    `json:"maxHp,omitempty"`
}

// RollDicePayload запрос броска костей. Клиент передает ТОЛЬКО параметры
// броска и оформление - результат всегда решает сервер.
type RollDicePayload struct {
	Sides    int    `json:"sides"`
	Qty      int    `json:"qty,omitempty"` // 0 = один кубик
	Username string `json:"username,omitempty"`
	Color    string `json:"color,omitempty"`
}

// ChatPayload произвольное сообщение чата. Ретранслируется без изменений.
type ChatPayload struct {
	User string `json:"user"`
	Text string `json:"text"`
}

// --- СЕРВЕР -> КЛИЕНТ ---

// Имена исходящих событий.
const (
	EventRoomJoined     = "room_joined"
	EventInitState      = "init_state"
	EventUpdateToken    = "update_token"
	EventTriggerGodRoll = "trigger_god_roll"
	EventChatMessage    = "chat_message"
	EventErrorMessage   = "error_message"
)

// ServerEvent это корневой объект, который сервер отправляет клиенту.
type ServerEvent struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload"`
}

// RoomJoinedEvent подтверждение входа в комнату (переход лобби -> доска).
type RoomJoinedEvent struct {
	Code     string `json:"code"`
	IsHost   bool   `json:"isHost"`
	Username string `json:"username"`
}

// RoomStateView полный снимок состояния комнаты.
// Отправляется при входе и при каждой мутации, которая меняет базовую
// картину (карта, владение, состав токенов) - не дельтой, потому что
// клиентский рендер перестраивает доску целиком.
type RoomStateView struct {
	Background string      `json:"background,omitempty"`
	MapWidth   int         `json:"mapWidth"`
	MapHeight  int         `json:"mapHeight"`
	Tokens     []TokenView `json:"tokens"`
}

// TokenView это DTO одного токена для клиента.
type TokenView struct {
	ID    string  `json:"id"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Color string  `json:"color"`
	Label string  `json:"label"`
	HP    int     `json:"hp,omitempty"`
	MaxHP int     `json:"maxHp,omitempty"`
	Owner string  `json:"owner,omitempty"`
}

// TokenMoveEvent инкрементальное обновление позиции токена.
type TokenMoveEvent struct {
	ID string  `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// GodRollEvent авторитетный результат броска. Все участники комнаты
// получают одинаковые значения; анимация на клиенте обязана приземлить
// кубики на присланные грани.
type GodRollEvent struct {
	RollID   string `json:"rollId"`
	Sides    int    `json:"sides"`
	Qty      int    `json:"qty"`
	Results  []int  `json:"results"`
	Total    int    `json:"total"`
	RollerID string `json:"rollerId"`
	User     string `json:"user,omitempty"`
	Color    string `json:"color,omitempty"`
}

// ChatMessageEvent строка чата.
type ChatMessageEvent struct {
	User string `json:"user"`
	Text string `json:"text"`
}
