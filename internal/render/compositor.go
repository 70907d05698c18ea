package render

import (
	"overworld/internal/domain"
	"overworld/internal/systems"
	"overworld/internal/tile"
	"overworld/internal/world"
)

// Actor - игрок с точки зрения рендера.
type Actor struct {
	Motion   *systems.MotionState
	SpriteID int
}

// GrassFx - активная анимация травы на тайле.
type GrassFx struct {
	X, Y    int
	StartMs int64
}

// Alive сообщает, не отыграла ли анимация.
func (g GrassFx) Alive(nowMs int64) bool {
	return nowMs-g.StartMs < GrassFxTotalMs
}

// Compositor переводит состояние мира в упорядоченный список команд
// отрисовки. Порядок фиксирован: слои карты (снизу вверх), анимации
// поверх карты, удаленные игроки, локальный игрок.
type Compositor struct {
	ScreenW int
	ScreenH int

	tiles *tile.Compositor

	// Размеры изображений паттернов анимированных слотов.
	// Нужны, чтобы отличить ленту N кадров от одиночного тайла.
	patternW [domain.AutotileSlots]int
	patternH [domain.AutotileSlots]int
}

func NewCompositor(screenW, screenH int, tiles *tile.Compositor) *Compositor {
	return &Compositor{ScreenW: screenW, ScreenH: screenH, tiles: tiles}
}

// SetPatternSize регистрирует фактический размер изображения паттерна слота.
// Незарегистрированный слот рисуется одиночным тайлом (0,0) - деградация
// вместо ошибки.
func (c *Compositor) SetPatternSize(slot, w, h int) {
	if slot < 0 || slot >= domain.AutotileSlots {
		return
	}
	c.patternW[slot] = w
	c.patternH[slot] = h
}

// Frame собирает команды одного кадра.
// Камера следует за интерполированной позицией локального игрока -
// та же формула смещения, что и при отрисовке самого игрока.
func (c *Compositor) Frame(grid *world.TileGrid, local Actor, remotes []Actor, fx []GrassFx, elapsedMs int64) []Command {
	ox, oy := local.Motion.PixelOffset()
	camX := float64(local.Motion.Pos.X*domain.TileSize) + ox + domain.TileSize/2 - float64(c.ScreenW)/2
	camY := float64(local.Motion.Pos.Y*domain.TileSize) + oy + domain.TileSize/2 - float64(c.ScreenH)/2

	var cmds []Command

	minTX := int(camX)/domain.TileSize - 1
	minTY := int(camY)/domain.TileSize - 1
	maxTX := (int(camX)+c.ScreenW)/domain.TileSize + 1
	maxTY := (int(camY)+c.ScreenH)/domain.TileSize + 1

	for layer := 0; layer < len(grid.Layers); layer++ {
		for ty := minTY; ty <= maxTY; ty++ {
			for tx := minTX; tx <= maxTX; tx++ {
				id := grid.TileAt(layer, tx, ty)
				sx := float64(tx*domain.TileSize) - camX
				sy := float64(ty*domain.TileSize) - camY
				cmds = c.appendTile(cmds, grid, id, tx, ty, sx, sy, elapsedMs)
			}
		}
	}

	for _, f := range fx {
		if !f.Alive(elapsedMs) {
			continue
		}
		frame := int((elapsedMs - f.StartMs) / GrassFxFrameMs)
		if frame >= GrassFxFrames {
			frame = GrassFxFrames - 1
		}
		cmds = append(cmds, Command{
			Src:  SourceGrassFx,
			SrcX: frame * domain.TileSize,
			SrcW: domain.TileSize,
			SrcH: domain.TileSize,
			X:    float64(f.X*domain.TileSize) - camX,
			Y:    float64(f.Y*domain.TileSize) - camY,
		})
	}

	for _, a := range remotes {
		cmds = append(cmds, c.playerCommand(a, camX, camY))
	}
	cmds = append(cmds, c.playerCommand(local, camX, camY))

	return cmds
}

// appendTile добавляет команды одного тайла одного слоя.
func (c *Compositor) appendTile(cmds []Command, grid *world.TileGrid, id, tx, ty int, sx, sy float64, elapsedMs int64) []Command {
	resolved := tile.Resolve(id)
	switch resolved.Kind {
	case tile.ResolvedEmpty:
		return cmds

	case tile.ResolvedStatic:
		return append(cmds, Command{
			Src:  SourceTileset,
			SrcX: resolved.SrcX,
			SrcY: resolved.SrcY,
			SrcW: domain.TileSize,
			SrcH: domain.TileSize,
			X:    sx,
			Y:    sy,
		})

	case tile.ResolvedAutotile:
		slot := resolved.Slot
		cfg := c.tiles.Slot(slot)
		if cfg.Kind == tile.KindStaticAnimation {
			frame := c.tiles.AnimFrame(slot, elapsedMs)
			srcX, srcY := c.tiles.AnimSource(slot, frame, c.patternW[slot], c.patternH[slot])
			return append(cmds, Command{
				Src:   SourceAutotile,
				Index: slot,
				SrcX:  srcX,
				SrcY:  srcY,
				SrcW:  domain.TileSize,
				SrcH:  domain.TileSize,
				X:     sx,
				Y:     sy,
			})
		}

		mask := tile.NeighborMask(tile.SameTypeNeighbor(grid, tx, ty, id))
		for _, mini := range c.tiles.Compose(id, mask) {
			cmds = append(cmds, Command{
				Src:   SourceAutotile,
				Index: slot,
				SrcX:  mini.SrcX,
				SrcY:  mini.SrcY,
				SrcW:  domain.MiniTileSize,
				SrcH:  domain.MiniTileSize,
				X:     sx + float64(mini.DstDX),
				Y:     sy + float64(mini.DstDY),
			})
		}
		return cmds
	}
	return cmds
}

// playerCommand - кадр спрайта игрока. Ряд листа - направление,
// колонка - кадр цикла ходьбы (в покое всегда кадр 1).
func (c *Compositor) playerCommand(a Actor, camX, camY float64) Command {
	ox, oy := a.Motion.PixelOffset()
	return Command{
		Src:   SourceSprite,
		Index: a.SpriteID,
		SrcX:  a.Motion.Frame() * SpriteFrameW,
		SrcY:  int(a.Motion.Dir) * SpriteFrameH,
		SrcW:  SpriteFrameW,
		SrcH:  SpriteFrameH,
		X:     float64(a.Motion.Pos.X*domain.TileSize) + ox - camX,
		Y:     float64(a.Motion.Pos.Y*domain.TileSize) + oy - camY - SpriteLiftY,
	}
}
