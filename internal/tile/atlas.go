package tile

import "overworld/internal/domain"

// ResolvedKind - результат классификации tile ID.
type ResolvedKind int

const (
	// ResolvedEmpty: ID 0, тайл не рисуется вовсе.
	ResolvedEmpty ResolvedKind = iota
	// ResolvedAutotile: ID < 384, сборка из четвертей листа паттерна слота.
	ResolvedAutotile
	// ResolvedStatic: ID >= 384, фиксированное смещение в общем тайлсете.
	ResolvedStatic
)

// Resolved - куда смотреть за пикселями тайла.
// Для статики SrcX/SrcY - смещение в изображении тайлсета;
// для автотайла заполнен Slot, остальное решает Compositor.
type Resolved struct {
	Kind ResolvedKind
	SrcX int
	SrcY int
	Slot int
}

// Resolve классифицирует tile ID.
//
// ID за пределами тайлсета не считаются ошибкой: смещение вычисляется
// "как есть" и может указать в мусор. Так ведут себя исходные данные
// карт, молча "чинить" это нельзя - битые карты должны быть видны.
func Resolve(tileID int) Resolved {
	switch {
	case tileID <= 0:
		return Resolved{Kind: ResolvedEmpty}
	case tileID < domain.StaticTileBase:
		return Resolved{Kind: ResolvedAutotile, Slot: SlotOf(tileID)}
	default:
		index := tileID - domain.StaticTileBase
		return Resolved{
			Kind: ResolvedStatic,
			SrcX: (index % domain.TilesetColumns) * domain.TileSize,
			SrcY: (index / domain.TilesetColumns) * domain.TileSize,
		}
	}
}
