package domain

import "math"

// GridCellSize - размер клетки сетки в пикселях (одна клетка = 5 футов).
const GridCellSize = 50

// Token - перемещаемый маркер (персонаж или объект) на общей доске.
type Token struct {
	ID    string  `json:"id"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Color string  `json:"color"`
	Label string  `json:"label"`

	// HP/MaxHP опциональны: 0 означает "не задано".
	HP    int `json:"hp,omitempty"`
	MaxHP int `json:"maxHp,omitempty"`

	// Owner - ID подключения, которому разрешено двигать токен.
	// Пустая строка = владельца нет, токен может двигать кто угодно.
	Owner string `json:"owner,omitempty"`
}

// SnapToGrid возвращает центр ближайшей клетки сетки.
// Результат всегда лежит в пределах [0, limit]: координаты за границей
// карты прижимаются к крайней клетке.
func SnapToGrid(v, limit float64) float64 {
	half := float64(GridCellSize) / 2

	cell := math.Round((v - half) / GridCellSize)
	if cell < 0 {
		cell = 0
	}

	maxCell := math.Floor((limit - half) / GridCellSize)
	if maxCell < 0 {
		maxCell = 0
	}
	if cell > maxCell {
		cell = maxCell
	}

	return cell*GridCellSize + half
}
