package tile

import (
	"overworld/internal/domain"
)

// NeighborFunc отвечает, принадлежит ли тайл со смещением (dx,dy)
// тому же автотайловому типу (тот же слот по верхнему непустому ID).
type NeighborFunc func(dx, dy int) bool

// Биты маски соседей. 8 бит = 256 вариантов на tileID, мемоизация безопасна.
const (
	MaskUp uint8 = 1 << iota
	MaskRight
	MaskDown
	MaskLeft
	MaskUpLeft
	MaskUpRight
	MaskDownLeft
	MaskDownRight
)

// NeighborMask собирает маску из 8 запросов соседей.
func NeighborMask(same NeighborFunc) uint8 {
	var m uint8
	if same(0, -1) {
		m |= MaskUp
	}
	if same(1, 0) {
		m |= MaskRight
	}
	if same(0, 1) {
		m |= MaskDown
	}
	if same(-1, 0) {
		m |= MaskLeft
	}
	if same(-1, -1) {
		m |= MaskUpLeft
	}
	if same(1, -1) {
		m |= MaskUpRight
	}
	if same(-1, 1) {
		m |= MaskDownLeft
	}
	if same(1, 1) {
		m |= MaskDownRight
	}
	return m
}

// MiniTile - одна четверть тайла: откуда взять 16x16 на листе паттерна
// и куда положить внутри экранного тайла.
type MiniTile struct {
	SrcX, SrcY   int // px на листе паттерна слота
	DstDX, DstDY int // px внутри тайла 32x32
}

type compositeKey struct {
	tileID int
	mask   uint8
}

// Compositor собирает автотайлы из четвертей и считает кадры анимации.
// Не потокобезопасен: живет внутри однопоточного цикла рендера.
type Compositor struct {
	slots [domain.AutotileSlots]SlotConfig
	cache map[compositeKey][4]MiniTile
}

func NewCompositor(slots [domain.AutotileSlots]SlotConfig) *Compositor {
	return &Compositor{
		slots: slots,
		cache: make(map[compositeKey][4]MiniTile),
	}
}

// Slot возвращает конфигурацию слота, определяющую self/animation.
func (c *Compositor) Slot(index int) SlotConfig {
	if index < 0 || index >= len(c.slots) {
		return SlotConfig{}
	}
	return c.slots[index]
}

// Compose вычисляет четыре мини-тайла для self-автотайла по маске соседей.
// Результат чистая функция (tileID, mask), поэтому мемоизируется.
// Для анимированных слотов не вызывается: их вид от соседей не зависит.
func (c *Compositor) Compose(tileID int, mask uint8) [4]MiniTile {
	key := compositeKey{tileID: tileID, mask: mask}
	if cached, ok := c.cache[key]; ok {
		return cached
	}

	var out [4]MiniTile
	for q := QuadTL; q <= QuadBR; q++ {
		class := classifyQuadrant(q, mask)
		coord := quadTable[q][class]
		out[q] = MiniTile{
			SrcX:  coord.Col * domain.MiniTileSize,
			SrcY:  coord.Row * domain.MiniTileSize,
			DstDX: quadDstX(q),
			DstDY: quadDstY(q),
		}
	}

	c.cache[key] = out
	return out
}

// classifyQuadrant - ядро алгоритма. Для четверти берутся два ЕЕ кардинала
// (например TL: left и up) и ЕЕ диагональ (TL: up-left). Порядок проверок
// фиксирован, менять нельзя:
//
//	оба кардинала + диагональ  -> заливка
//	оба кардинала, нет диаг.   -> вогнутый угол
//	ни одного кардинала        -> выпуклый угол
//	только горизонтальный      -> горизонтальная кромка
//	иначе (только вертикальный)-> вертикальная кромка
func classifyQuadrant(q Quadrant, mask uint8) quadClass {
	var cardH, cardV, diag bool
	switch q {
	case QuadTL:
		cardH = mask&MaskLeft != 0
		cardV = mask&MaskUp != 0
		diag = mask&MaskUpLeft != 0
	case QuadTR:
		cardH = mask&MaskRight != 0
		cardV = mask&MaskUp != 0
		diag = mask&MaskUpRight != 0
	case QuadBL:
		cardH = mask&MaskLeft != 0
		cardV = mask&MaskDown != 0
		diag = mask&MaskDownLeft != 0
	case QuadBR:
		cardH = mask&MaskRight != 0
		cardV = mask&MaskDown != 0
		diag = mask&MaskDownRight != 0
	}

	switch {
	case cardH && cardV && diag:
		return classInner
	case cardH && cardV:
		return classInnerCut
	case !cardH && !cardV:
		return classOuter
	case cardH:
		return classEdgeH
	default:
		return classEdgeV
	}
}

func quadDstX(q Quadrant) int {
	if q == QuadTR || q == QuadBR {
		return domain.MiniTileSize
	}
	return 0
}

func quadDstY(q Quadrant) int {
	if q == QuadBL || q == QuadBR {
		return domain.MiniTileSize
	}
	return 0
}

// AnimFrame возвращает текущий кадр анимированного слота.
// Кадр выводится из wall-clock времени на рендере - фоновых таймеров
// и инвалидации кеша по таймеру нет.
func (c *Compositor) AnimFrame(slot int, elapsedMs int64) int {
	cfg := c.Slot(slot)
	if cfg.Kind != KindStaticAnimation || cfg.FrameCount <= 0 {
		return 0
	}
	return int(elapsedMs/domain.AutotileFrameMs) % cfg.FrameCount
}

// AnimSource возвращает пиксельное начало кадра на изображении паттерна.
// Поддерживается горизонтальная лента N кадров по 32px; если размеры
// картинки не совпадают с ожидаемой формой - откат на единственный тайл
// (0,0). Рендер никогда не падает из-за неожиданного ассета.
func (c *Compositor) AnimSource(slot, frame, imgW, imgH int) (srcX, srcY int) {
	cfg := c.Slot(slot)
	if cfg.Kind != KindStaticAnimation || cfg.FrameCount <= 0 {
		return 0, 0
	}
	if imgW == cfg.FrameCount*domain.TileSize && imgH >= domain.TileSize {
		return frame * domain.TileSize, 0
	}
	return 0, 0
}
