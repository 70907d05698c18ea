package tile

import (
	"testing"

	"overworld/internal/world"
)

func TestSameTypeNeighbor(t *testing.T) {
	// 3x3, два слоя. В центре автотайл слота 3 (ID 150).
	base := world.Layer{
		{0, 150, 0},
		{50, 150, 160},
		{0, 0, 0},
	}
	overlay := world.Layer{
		{0, 400, 0},
		{0, 0, 0},
		{0, 0, 0},
	}
	g := &world.TileGrid{Width: 3, Height: 3, Layers: []world.Layer{base, overlay}}

	same := SameTypeNeighbor(g, 1, 1, 150)

	// Справа - другая вариация того же слота: свой.
	if !same(1, 0) {
		t.Error("same-slot neighbor not recognized")
	}
	// Слева - автотайл чужого слота (ID 50, слот 1).
	if same(-1, 0) {
		t.Error("different slot counted as same")
	}
	// Сверху на нижнем слое тот же слот, но верхний слой кроет статикой:
	// сравнивается верхний непустой ID, не нижний.
	if same(0, -1) {
		t.Error("static overlay must hide the autotile below")
	}
	// Снизу пусто.
	if same(0, 1) {
		t.Error("empty tile counted as same")
	}
}

func TestSameTypeNeighbor_OutOfBounds(t *testing.T) {
	g := &world.TileGrid{Width: 1, Height: 1, Layers: []world.Layer{{{150}}}}

	same := SameTypeNeighbor(g, 0, 0, 150)
	for _, d := range [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		if same(d[0], d[1]) {
			t.Errorf("out-of-bounds neighbor (%d,%d) counted as same", d[0], d[1])
		}
	}
}
