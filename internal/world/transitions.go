package world

import "overworld/internal/domain"

// Edge - край карты, на котором срабатывает переход.
type Edge int

const (
	EdgeNorth Edge = iota
	EdgeSouth
	EdgeWest
	EdgeEast
)

func (e Edge) String() string {
	switch e {
	case EdgeNorth:
		return "north"
	case EdgeSouth:
		return "south"
	case EdgeWest:
		return "west"
	case EdgeEast:
		return "east"
	}
	return "unknown"
}

// TransitionRule - статичное правило перехода между картами.
// HasRange=true ограничивает срабатывание диапазоном тайлов
// поперечной оси (x для north/south, y для east/west), включительно.
type TransitionRule struct {
	SourceMap int
	Edge      Edge
	DestMap   int
	Spawn     domain.Position
	HasRange  bool
	MinTile   int
	MaxTile   int
}

// TransitionTable - набор правил. Правил на одну исходную карту
// может быть несколько, выигрывает первое совпавшее.
type TransitionTable struct {
	rules []TransitionRule
}

func NewTransitionTable(rules []TransitionRule) *TransitionTable {
	return &TransitionTable{rules: rules}
}

// CheckTransition ищет правило для позиции (x,y) на карте mapID размером w x h.
// Вызывается ТОЛЬКО в момент завершения шага - иначе переход
// сработал бы дважды, пока игрок стоит на граничном тайле.
func (t *TransitionTable) CheckTransition(mapID, x, y, w, h int) (TransitionRule, bool) {
	for _, r := range t.rules {
		if r.SourceMap != mapID {
			continue
		}

		var onEdge bool
		cross := x
		switch r.Edge {
		case EdgeNorth:
			onEdge = y <= 0
		case EdgeSouth:
			onEdge = y >= h-1
		case EdgeWest:
			onEdge = x <= 0
			cross = y
		case EdgeEast:
			onEdge = x >= w-1
			cross = y
		}
		if !onEdge {
			continue
		}
		if r.HasRange && (cross < r.MinTile || cross > r.MaxTile) {
			continue
		}
		return r, true
	}
	return TransitionRule{}, false
}

// DefaultRules - переходы между картами игры.
// Контентные данные: диапазоны совпадают с разрывами в заборах/деревьях
// на краях карт.
func DefaultRules() []TransitionRule {
	return []TransitionRule{
		{SourceMap: 79, Edge: EdgeEast, DestMap: 5, Spawn: domain.Position{X: 1, Y: 12}, HasRange: true, MinTile: 10, MaxTile: 14},
		{SourceMap: 5, Edge: EdgeWest, DestMap: 79, Spawn: domain.Position{X: 28, Y: 12}, HasRange: true, MinTile: 10, MaxTile: 14},
		{SourceMap: 5, Edge: EdgeNorth, DestMap: 12, Spawn: domain.Position{X: 15, Y: 22}},
		{SourceMap: 12, Edge: EdgeSouth, DestMap: 5, Spawn: domain.Position{X: 15, Y: 1}, HasRange: true, MinTile: 12, MaxTile: 18},
	}
}
