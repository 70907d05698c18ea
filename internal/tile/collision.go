package tile

import (
	"overworld/internal/domain"
	"overworld/internal/world"
)

// Таблицы проходимости - точные контентные данные тайлсета.
// Диапазоны подобраны под существующие карты, менять их можно только
// вместе с графикой. Не выводятся, а перечисляются буквально.

// idRange - закрытый диапазон tile ID [Min, Max].
type idRange struct {
	Min int
	Max int
}

func (r idRange) contains(id int) bool { return id >= r.Min && id <= r.Max }

// deepWaterAutotiles - единственный блокирующий диапазон среди автотайлов
// (слот 7, "deep-water"). Остальные автотайлы проходимы.
var deepWaterAutotiles = idRange{Min: 336, Max: 383}

// blockingStatic - блокирующие статичные тайлы.
var blockingStatic = []idRange{
	{Min: 416, Max: 431}, // деревья
	{Min: 448, Max: 479}, // стены зданий
	{Min: 480, Max: 495}, // крыши
	{Min: 520, Max: 527}, // скалы
	{Min: 640, Max: 703}, // дома
	{Min: 712, Max: 719}, // глубокая вода (статичные тайлы)
	{Min: 760, Max: 783}, // обрывы
	{Min: 800, Max: 807}, // декоративные элементы зданий
}

// Высокая трава. На нижнем слое анимацию дают ровно два ID;
// соседний диапазон короткой травы выглядит похоже, но анимации НЕ дает.
const (
	tallGrassBaseA = 586
	tallGrassBaseB = 587
)

var shortGrassBase = idRange{Min: 576, Max: 585}

// overlayTallGrass - "темная" высокая трава на верхних слоях.
var overlayTallGrass = []idRange{
	{Min: 594, Max: 595},
	{Min: 602, Max: 603},
}

// IsBlocking решает проходимость одного tile ID. Чистая функция таблиц.
func IsBlocking(tileID int) bool {
	if tileID <= 0 {
		return false
	}
	if tileID < domain.StaticTileBase {
		return deepWaterAutotiles.contains(tileID)
	}
	for _, r := range blockingStatic {
		if r.contains(tileID) {
			return true
		}
	}
	return false
}

// IsWalkable: за границей карты всегда false; иначе проходимо,
// если ни один слой не несет блокирующий ID (OR по слоям,
// порядок обхода значения не имеет).
func IsWalkable(g *world.TileGrid, x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	for i := range g.Layers {
		if IsBlocking(g.TileAt(i, x, y)) {
			return false
		}
	}
	return true
}

// IsGrassTrigger: срабатывает ли анимация травы при ЗАВЕРШЕНИИ шага в (x,y).
// Сначала верхние слои (сверху вниз), затем нижний. Диапазон короткой
// травы на нижнем слое обязан вернуть false сразу, не "проваливаясь"
// в дальнейшие проверки.
func IsGrassTrigger(g *world.TileGrid, x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}

	for i := len(g.Layers) - 1; i >= 1; i-- {
		id := g.TileAt(i, x, y)
		for _, r := range overlayTallGrass {
			if r.contains(id) {
				return true
			}
		}
	}

	base := g.TileAt(0, x, y)
	switch {
	case base == tallGrassBaseA || base == tallGrassBaseB:
		return true
	case shortGrassBase.contains(base):
		return false
	}
	return false
}
