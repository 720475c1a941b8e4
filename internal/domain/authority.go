package domain

// Проверки полномочий. Выполняются ТОЛЬКО на сервере и ДО мутации:
// клиентские запросы - заявки, а не факты. Отказ в полномочиях
// отбрасывается молча, без события отправителю.

// CanMoveToken: хост двигает любой токен; токен без владельца может
// двигать кто угодно; чужой токен двигает только его владелец.
func CanMoveToken(conn *Connection, t *Token) bool {
	if conn.IsHost {
		return true
	}
	if t.Owner == "" {
		return true
	}
	return t.Owner == conn.ID
}

// CanManageBoard: замена карты, владение токенами и состав доски -
// привилегия хоста.
func CanManageBoard(conn *Connection) bool {
	return conn.IsHost
}
