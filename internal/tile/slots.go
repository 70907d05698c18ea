package tile

import "overworld/internal/domain"

// SlotKind - вид автотайлового слота.
type SlotKind int

const (
	// KindSelfAutotile: вид тайла зависит от 8 соседей того же типа.
	// Никогда не анимируется.
	KindSelfAutotile SlotKind = iota
	// KindStaticAnimation: соседи игнорируются, кадры листаются по таймеру.
	KindStaticAnimation
)

// SlotConfig описывает один из 8 слотов автотайлов (по 48 ID на слот).
// Это конфигурация тайлсета, а не выводимые данные: у другой карты
// слоты могут быть назначены иначе.
type SlotConfig struct {
	Name       string
	Kind       SlotKind
	FrameCount int // только для KindStaticAnimation
}

// DefaultSlots - раскладка слотов основного тайлсета игры.
func DefaultSlots() [domain.AutotileSlots]SlotConfig {
	return [domain.AutotileSlots]SlotConfig{
		{Name: "sea", Kind: KindStaticAnimation, FrameCount: 4},
		{Name: "sea-rocks", Kind: KindStaticAnimation, FrameCount: 4},
		{Name: "flowers", Kind: KindStaticAnimation, FrameCount: 2},
		{Name: "grass-edge", Kind: KindSelfAutotile},
		{Name: "path", Kind: KindSelfAutotile},
		{Name: "ledge", Kind: KindSelfAutotile},
		{Name: "sand", Kind: KindSelfAutotile},
		{Name: "deep-water", Kind: KindSelfAutotile},
	}
}

// SlotOf возвращает индекс слота для автотайлового ID (1..383).
func SlotOf(tileID int) int {
	return tileID / domain.AutotileSlotSize
}

// VariationOf возвращает вариацию внутри слота.
// Для self-автотайлов она не используется: фактический вид
// пересчитывается из соседей.
func VariationOf(tileID int) int {
	return tileID % domain.AutotileSlotSize
}
