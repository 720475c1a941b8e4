package game

import "math/rand"

// Roller - серверный источник случайности для бросков костей.
// Результат броска решает ТОЛЬКО сервер; клиентские анимации обязаны
// приземлиться на присланные грани. Доступ не синхронизирован:
// бросает только горутина цикла сервиса.
type Roller struct {
	rng *rand.Rand
}

func NewRoller(seed int64) *Roller {
	return &Roller{rng: rand.New(rand.NewSource(seed))}
}

// Roll бросает qty независимых кубиков с sides гранями.
// Возвращает упорядоченные результаты (каждый в [1, sides]) и их сумму.
// Сумму считает сервер - итог броска никогда не принимается от клиента.
func (r *Roller) Roll(sides, qty int) ([]int, int) {
	results := make([]int, qty)
	total := 0
	for i := range results {
		results[i] = r.rng.Intn(sides) + 1
		total += results[i]
	}
	return results, total
}
