package domain

// Position - целочисленная координата тайла на карте.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Shift возвращает новую позицию со смещением, не меняя текущую
// (Go передает структуру по значению).
func (p Position) Shift(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Direction - направление взгляда игрока.
// Числовые значения зафиксированы wire-протоколом, менять нельзя.
type Direction int

const (
	DirDown  Direction = 0
	DirLeft  Direction = 1
	DirRight Direction = 2
	DirUp    Direction = 3
)

// DirectionFromDelta выводит направление из единичного вектора движения.
// Для нулевого или диагонального вектора возвращает ok=false.
func DirectionFromDelta(dx, dy int) (Direction, bool) {
	switch {
	case dx == 0 && dy == 1:
		return DirDown, true
	case dx == 0 && dy == -1:
		return DirUp, true
	case dx == -1 && dy == 0:
		return DirLeft, true
	case dx == 1 && dy == 0:
		return DirRight, true
	}
	return DirDown, false
}

// Delta возвращает единичный вектор смещения для направления.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirDown:
		return 0, 1
	case DirUp:
		return 0, -1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}

// Valid проверяет, что направление пришло по сети в допустимом диапазоне.
func (d Direction) Valid() bool {
	return d >= DirDown && d <= DirUp
}

func (d Direction) String() string {
	switch d {
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	}
	return "unknown"
}
