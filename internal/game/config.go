package game

import "time"

// Config хранит параметры запуска сервиса.
type Config struct {
	// Seed - зерно генератора случайности (коды комнат, кости).
	// Фиксированный сид дает воспроизводимые прогоны в тестах.
	Seed int64

	// EmptyRoomTTL - сколько живет комната после ухода последнего
	// участника. 0 отключает eviction (комнаты живут до рестарта).
	EmptyRoomTTL time.Duration
}

// NewConfig создает конфиг по умолчанию (случайный сид, без eviction).
func NewConfig() Config {
	return Config{
		Seed:         time.Now().UnixNano(),
		EmptyRoomTTL: 0,
	}
}
