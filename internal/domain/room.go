package domain

import "time"

// Размеры доски по умолчанию (пока хост не загрузил карту).
const (
	DefaultMapWidth  = 800
	DefaultMapHeight = 600
)

// Room - изолированная игровая сессия, идентифицируемая 4-буквенным кодом.
// Комната живет только в памяти процесса; вся мутация проходит через
// цикл GameService, поэтому внутренних блокировок здесь нет.
type Room struct {
	Code string

	// Background - непрозрачный для сервера блоб (обычно data-URL картинки).
	Background string
	MapWidth   int
	MapHeight  int

	Tokens []*Token

	// HostID - подключение с правами хоста. Ровно одно на комнату;
	// если хост отключился, место остается вакантным.
	HostID string

	// Members - явный реестр участников: ID подключения -> Connection.
	Members map[string]*Connection

	// EmptySince - момент, когда комнату покинул последний участник.
	// Нулевое значение = в комнате кто-то есть.
	EmptySince time.Time
}

// NewRoom создает комнату с дефолтной доской и двумя стартовыми токенами.
func NewRoom(code string) *Room {
	return &Room{
		Code:      code,
		MapWidth:  DefaultMapWidth,
		MapHeight: DefaultMapHeight,
		Tokens: []*Token{
			{ID: "t1", X: 100, Y: 100, Color: "#ff4444", Label: "T1"},
			{ID: "t2", X: 200, Y: 100, Color: "#4444ff", Label: "T2"},
		},
		Members: make(map[string]*Connection),
	}
}

// FindToken ищет токен по ID. Возвращает nil, если токена нет.
func (r *Room) FindToken(id string) *Token {
	for _, t := range r.Tokens {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// RemoveToken удаляет токен по ID с сохранением порядка остальных.
// Возвращает false, если токена не было.
func (r *Room) RemoveToken(id string) bool {
	for i, t := range r.Tokens {
		if t.ID == id {
			r.Tokens = append(r.Tokens[:i], r.Tokens[i+1:]...)
			return true
		}
	}
	return false
}

// AddMember регистрирует участника в комнате.
func (r *Room) AddMember(c *Connection) {
	r.Members[c.ID] = c
	r.EmptySince = time.Time{}
}

// RemoveMember убирает участника и снимает принадлежавшие ему токены
// с владения, чтобы они не остались заблокированными навсегда.
func (r *Room) RemoveMember(id string) {
	delete(r.Members, id)
	for _, t := range r.Tokens {
		if t.Owner == id {
			t.Owner = ""
		}
	}
	if len(r.Members) == 0 {
		r.EmptySince = time.Now()
	}
}

// HasMember проверяет, состоит ли подключение в комнате.
func (r *Room) HasMember(id string) bool {
	_, ok := r.Members[id]
	return ok
}

// MemberIDs возвращает ID всех участников (порядок не гарантирован).
func (r *Room) MemberIDs() []string {
	ids := make([]string, 0, len(r.Members))
	for id := range r.Members {
		ids = append(ids, id)
	}
	return ids
}
