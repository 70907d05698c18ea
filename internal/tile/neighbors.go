package tile

import (
	"overworld/internal/domain"
	"overworld/internal/world"
)

// SameTypeNeighbor строит NeighborFunc для автотайла tileID в точке (x,y).
// Сосед "свой", если верхний непустой ID в его клетке - автотайл
// того же слота. За границей карты соседей нет.
func SameTypeNeighbor(g *world.TileGrid, x, y, tileID int) NeighborFunc {
	slot := SlotOf(tileID)
	return func(dx, dy int) bool {
		id := g.TopTileAt(x+dx, y+dy)
		if id <= 0 || id >= domain.StaticTileBase {
			return false
		}
		return SlotOf(id) == slot
	}
}
