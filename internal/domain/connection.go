package domain

// Connection - живое сетевое подключение.
// Подключение состоит максимум в одной комнате; повторный host/join
// при непустом RoomCode отбрасывается диспетчером.
type Connection struct {
	ID       string
	Username string

	// RoomCode - явная привязка подключения к комнате.
	// Поддерживается на join и disconnect, никогда не выводится
	// из каких-либо внешних списков сессий.
	RoomCode string

	// IsHost - true ровно у одного подключения на комнату:
	// у того, чей host_game ее создал.
	IsHost bool
}
