package network

import (
	"sync"

	"tabletop-server/pkg/api"
)

// Broadcaster занимается только доставкой событий подключениям.
// Членство в комнатах его не касается: GameService сам решает,
// каким ID отправить событие.
type Broadcaster struct {
	mu sync.RWMutex
	// Мапа: ID подключения -> личный буферизованный канал
	subscribers map[string]chan api.ServerEvent
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[string]chan api.ServerEvent),
	}
}

// Register создает личный канал для подключения.
func (b *Broadcaster) Register(connID string) chan api.ServerEvent {
	b.mu.Lock()
	defer b.mu.Unlock()

	// Если канал был, закрываем
	if old, ok := b.subscribers[connID]; ok {
		close(old)
	}

	ch := make(chan api.ServerEvent, 100)
	b.subscribers[connID] = ch
	return ch
}

// Unregister удаляет подписчика и закрывает его канал.
func (b *Broadcaster) Unregister(connID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.subscribers[connID]; ok {
		close(ch)
		delete(b.subscribers, connID)
	}
}

// SendTo отправляет событие конкретному подключению (Unicast).
// Отправка неблокирующая: медленный клиент теряет события,
// но никогда не тормозит цикл сервиса.
func (b *Broadcaster) SendTo(connID string, ev api.ServerEvent) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if ch, ok := b.subscribers[connID]; ok {
		select {
		case ch <- ev:
		default:
			// Пропускаем медленных клиентов
		}
	}
}

// SendToMany отправляет одно и то же событие набору подключений.
func (b *Broadcaster) SendToMany(connIDs []string, ev api.ServerEvent) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, id := range connIDs {
		if ch, ok := b.subscribers[id]; ok {
			select {
			case ch <- ev:
			default:
			}
		}
	}
}

// SubscriberCount возвращает количество активных подключений.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}
