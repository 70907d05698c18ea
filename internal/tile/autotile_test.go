package tile

import (
	"testing"

	"overworld/internal/domain"
)

func newTestCompositor() *Compositor {
	return NewCompositor(DefaultSlots())
}

func TestCompose_IsolatedTile(t *testing.T) {
	c := newTestCompositor()

	// Ни одного соседа: все четыре четверти - выпуклые углы.
	minis := c.Compose(150, 0)

	expect := [4]MiniCoord{
		QuadTL: {0, 2},
		QuadTR: {5, 2},
		QuadBL: {0, 7},
		QuadBR: {5, 7},
	}
	for q := QuadTL; q <= QuadBR; q++ {
		wantX := expect[q].Col * domain.MiniTileSize
		wantY := expect[q].Row * domain.MiniTileSize
		if minis[q].SrcX != wantX || minis[q].SrcY != wantY {
			t.Errorf("quad %d: got (%d,%d), want (%d,%d)", q, minis[q].SrcX, minis[q].SrcY, wantX, wantY)
		}
	}
}

func TestCompose_FullySurrounded(t *testing.T) {
	c := newTestCompositor()

	// Все 8 соседей свои: сплошная заливка во всех четвертях.
	minis := c.Compose(150, 0xFF)

	expect := [4]MiniCoord{
		QuadTL: {2, 4},
		QuadTR: {3, 4},
		QuadBL: {2, 5},
		QuadBR: {3, 5},
	}
	for q := QuadTL; q <= QuadBR; q++ {
		wantX := expect[q].Col * domain.MiniTileSize
		wantY := expect[q].Row * domain.MiniTileSize
		if minis[q].SrcX != wantX || minis[q].SrcY != wantY {
			t.Errorf("quad %d: got (%d,%d), want (%d,%d)", q, minis[q].SrcX, minis[q].SrcY, wantX, wantY)
		}
	}
}

func TestCompose_EdgeAndCornerCases(t *testing.T) {
	c := newTestCompositor()

	// Только left у TL: горизонтальная кромка (верхняя).
	minis := c.Compose(150, MaskLeft)
	if got := (MiniCoord{minis[QuadTL].SrcX / 16, minis[QuadTL].SrcY / 16}); got != (MiniCoord{2, 2}) {
		t.Errorf("TL edge-horizontal: got %+v", got)
	}

	// Только up у TL: вертикальная кромка (левая).
	minis = c.Compose(150, MaskUp)
	if got := (MiniCoord{minis[QuadTL].SrcX / 16, minis[QuadTL].SrcY / 16}); got != (MiniCoord{0, 4}) {
		t.Errorf("TL edge-vertical: got %+v", got)
	}

	// Оба кардинала без диагонали: вогнутый угол, не заливка.
	minis = c.Compose(150, MaskLeft|MaskUp)
	if got := (MiniCoord{minis[QuadTL].SrcX / 16, minis[QuadTL].SrcY / 16}); got != (MiniCoord{4, 0}) {
		t.Errorf("TL inner-cut: got %+v", got)
	}

	// Диагональ решает: с ней та же пара кардиналов дает заливку.
	minis = c.Compose(150, MaskLeft|MaskUp|MaskUpLeft)
	if got := (MiniCoord{minis[QuadTL].SrcX / 16, minis[QuadTL].SrcY / 16}); got != (MiniCoord{2, 4}) {
		t.Errorf("TL inner: got %+v", got)
	}
}

func TestCompose_CacheHit(t *testing.T) {
	c := newTestCompositor()

	first := c.Compose(150, MaskUp|MaskRight)
	if len(c.cache) != 1 {
		t.Fatalf("expected 1 cache entry, got %d", len(c.cache))
	}
	second := c.Compose(150, MaskUp|MaskRight)
	if first != second {
		t.Error("cached result differs from first computation")
	}
	if len(c.cache) != 1 {
		t.Errorf("repeat lookup grew cache to %d", len(c.cache))
	}
}

func TestCompose_QuadrantDestinations(t *testing.T) {
	c := newTestCompositor()
	minis := c.Compose(150, 0)

	wantDst := [4][2]int{
		QuadTL: {0, 0},
		QuadTR: {16, 0},
		QuadBL: {0, 16},
		QuadBR: {16, 16},
	}
	for q := QuadTL; q <= QuadBR; q++ {
		if minis[q].DstDX != wantDst[q][0] || minis[q].DstDY != wantDst[q][1] {
			t.Errorf("quad %d dst: got (%d,%d), want (%d,%d)",
				q, minis[q].DstDX, minis[q].DstDY, wantDst[q][0], wantDst[q][1])
		}
	}
}

func TestQuadTableWithinPattern(t *testing.T) {
	// Все координаты фикстуры лежат на листе 6x8 мини-тайлов.
	const patternRows = 8
	for q, classes := range quadTable {
		for class, coord := range classes {
			if coord.Col < 0 || coord.Col >= patternColumns || coord.Row < 0 || coord.Row >= patternRows {
				t.Errorf("quad %d class %d: cell (%d,%d) outside pattern sheet", q, class, coord.Col, coord.Row)
			}
		}
	}
}

func TestNeighborMask(t *testing.T) {
	// Соседи только сверху и справа-сверху.
	same := func(dx, dy int) bool {
		return (dx == 0 && dy == -1) || (dx == 1 && dy == -1)
	}
	mask := NeighborMask(same)
	if mask != MaskUp|MaskUpRight {
		t.Errorf("got mask %08b", mask)
	}
}

func TestAnimFrame(t *testing.T) {
	c := newTestCompositor()

	// Слот 0 (sea) - 4 кадра по 500мс.
	if f := c.AnimFrame(0, 0); f != 0 {
		t.Errorf("t=0: frame %d", f)
	}
	if f := c.AnimFrame(0, 600); f != 1 {
		t.Errorf("t=600: frame %d", f)
	}
	if f := c.AnimFrame(0, 2100); f != 0 {
		t.Errorf("t=2100: frame %d (wrap expected)", f)
	}

	// Self-слот не анимируется.
	if f := c.AnimFrame(4, 9999); f != 0 {
		t.Errorf("self slot animated: frame %d", f)
	}
}

func TestAnimSource_StripAndFallback(t *testing.T) {
	c := newTestCompositor()

	// Лента 4 кадров по 32px: кадр 2 начинается на 64px.
	if x, y := c.AnimSource(0, 2, 4*domain.TileSize, domain.TileSize); x != 64 || y != 0 {
		t.Errorf("strip: got (%d,%d)", x, y)
	}

	// Неожиданные размеры: откат на одиночный тайл.
	if x, y := c.AnimSource(0, 2, 100, 77); x != 0 || y != 0 {
		t.Errorf("fallback: got (%d,%d)", x, y)
	}
}
