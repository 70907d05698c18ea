package world

// Layer - один слой карты, row-major [y][x], значения - tile ID (0 = пусто).
type Layer [][]int

// TileGrid - неизменяемые данные загруженной карты.
// Слои идут снизу вверх: земля, объекты, "над головой".
// Инвариант: каждый слой имеет размер ровно Width x Height.
type TileGrid struct {
	Width  int
	Height int
	Layers []Layer
}

// InBounds проверяет попадание координаты в границы карты.
func (g *TileGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// TileAt возвращает ID тайла слоя layer в точке (x,y).
// За границей карты или слоев - 0, не ошибка: запрос "нет тайла".
func (g *TileGrid) TileAt(layer, x, y int) int {
	if layer < 0 || layer >= len(g.Layers) || !g.InBounds(x, y) {
		return 0
	}
	return g.Layers[layer][y][x]
}

// TopTileAt возвращает верхний непустой tile ID по всем слоям в (x,y).
// Именно по нему автотайлы решают, "свой" ли сосед.
func (g *TileGrid) TopTileAt(x, y int) int {
	if !g.InBounds(x, y) {
		return 0
	}
	for i := len(g.Layers) - 1; i >= 0; i-- {
		if id := g.Layers[i][y][x]; id != 0 {
			return id
		}
	}
	return 0
}
