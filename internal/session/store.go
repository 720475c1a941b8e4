package session

import (
	"math/rand"
	"sync"

	"tabletop-server/internal/domain"
	"tabletop-server/pkg/utils"
)

// Store владеет реестром активных комнат и подключений.
// Всю мутацию состояния комнат выполняет единственная горутина
// GameService; RWMutex нужен для конкурентных читателей
// (регистрация подключений из WebSocket-хендлеров, debug-эндпоинты).
type Store struct {
	mu    sync.RWMutex
	rooms map[string]*domain.Room
	conns map[string]*domain.Connection
	rng   *rand.Rand
}

func NewStore(rng *rand.Rand) *Store {
	return &Store{
		rooms: make(map[string]*domain.Room),
		conns: make(map[string]*domain.Connection),
		rng:   rng,
	}
}

// CreateRoom создает комнату с уникальным кодом.
// При коллизии код генерируется заново - существующая комната
// никогда не перезаписывается молча.
func (s *Store) CreateRoom() *domain.Room {
	s.mu.Lock()
	defer s.mu.Unlock()

	var code string
	for {
		code = utils.RoomCode(s.rng)
		if _, taken := s.rooms[code]; !taken {
			break
		}
	}

	room := domain.NewRoom(code)
	s.rooms[code] = room
	return room
}

// FindRoom ищет комнату по коду. Код должен быть уже приведен
// к верхнему регистру вызывающим. Возвращает nil, если комнаты нет.
func (s *Store) FindRoom(code string) *domain.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rooms[code]
}

// RemoveRoom удаляет комнату из реестра (eviction пустых комнат).
func (s *Store) RemoveRoom(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rooms, code)
}

// Rooms возвращает срез всех активных комнат (порядок не гарантирован).
func (s *Store) Rooms() []*domain.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Room, 0, len(s.rooms))
	for _, r := range s.rooms {
		out = append(out, r)
	}
	return out
}

// RoomCount возвращает количество активных комнат.
func (s *Store) RoomCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rooms)
}

// AddConnection регистрирует новое подключение.
func (s *Store) AddConnection(c *domain.Connection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conns[c.ID] = c
}

// Connection возвращает подключение по ID или nil.
func (s *Store) Connection(id string) *domain.Connection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.conns[id]
}

// RemoveConnection снимает подключение с учета.
func (s *Store) RemoveConnection(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.conns, id)
}

// Join включает подключение в комнату и назначает полномочия.
// Хостом становится только создатель комнаты; все последующие
// участники входят без прав хоста.
func (s *Store) Join(room *domain.Room, conn *domain.Connection, asHost bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conn.RoomCode = room.Code
	conn.IsHost = asHost
	if asHost {
		room.HostID = conn.ID
	}
	room.AddMember(conn)
}

// Leave выводит подключение из его комнаты.
// Возвращает комнату, которую оно покинуло, или nil.
func (s *Store) Leave(conn *domain.Connection) *domain.Room {
	s.mu.Lock()
	defer s.mu.Unlock()

	if conn.RoomCode == "" {
		return nil
	}
	room := s.rooms[conn.RoomCode]
	conn.RoomCode = ""
	conn.IsHost = false
	if room == nil {
		return nil
	}
	room.RemoveMember(conn.ID)
	return room
}
