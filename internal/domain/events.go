package domain

// MoveEventKind различает начало и завершение шага.
type MoveEventKind int

const (
	MoveStarted MoveEventKind = iota
	MoveCompleted
)

// MoveEvent - синхронное событие движения, возвращаемое автоматом состояний.
// MoveStarted несет позицию ДО шага (сервер всегда получает исходный тайл,
// а не целевой - так нет неоднозначности, кто отвечает за коллизию).
// MoveCompleted несет итоговую позицию.
type MoveEvent struct {
	Kind      MoveEventKind
	Pos       Position
	Direction Direction
	Moving    bool
}
