package main

import (
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"overworld/internal/client"
	"overworld/internal/render"
)

// keyBinding - физические клавиши для логических направлений.
// Стрелки и WASD равнозначны.
var keyBindings = []struct {
	phys    ebiten.Key
	logical client.Key
}{
	{ebiten.KeyArrowUp, client.KeyUp},
	{ebiten.KeyArrowDown, client.KeyDown},
	{ebiten.KeyArrowLeft, client.KeyLeft},
	{ebiten.KeyArrowRight, client.KeyRight},
	{ebiten.KeyW, client.KeyUp},
	{ebiten.KeyS, client.KeyDown},
	{ebiten.KeyA, client.KeyLeft},
	{ebiten.KeyD, client.KeyRight},
}

// game - оболочка ebiten вокруг клиентского ядра.
// Порядок тика фиксирован: ввод -> движение -> анимации -> рендер.
type game struct {
	engine     *client.Engine
	compositor *render.Compositor
	assets     *assetSet

	input *client.InputTracker
	held  map[ebiten.Key]bool
	start time.Time
}

func newGame(engine *client.Engine, compositor *render.Compositor, assets *assetSet) *game {
	return &game{
		engine:     engine,
		compositor: compositor,
		assets:     assets,
		input:      client.NewInputTracker(),
		held:       make(map[ebiten.Key]bool),
		start:      time.Now(),
	}
}

func (g *game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		g.input.Reset()
		return ebiten.Termination
	}

	// Переводим состояние клавиатуры в события press/release:
	// автоповтор ОС ядро не интересует, зажатость оно ведет само.
	for _, b := range keyBindings {
		pressed := ebiten.IsKeyPressed(b.phys)
		if pressed && !g.held[b.phys] {
			g.input.Press(b.logical)
		}
		if !pressed && g.held[b.phys] {
			g.input.Release(b.logical)
		}
		g.held[b.phys] = pressed
	}

	if dx, dy, ok := g.input.Current(); ok {
		g.engine.Move(dx, dy)
	}

	dt := 1.0 / float64(ebiten.TPS())
	g.engine.Update(dt, g.nowMs())
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	for _, cmd := range g.engine.RenderFrame(g.compositor, g.nowMs()) {
		src := g.sourceImage(cmd)
		rect := image.Rect(cmd.SrcX, cmd.SrcY, cmd.SrcX+cmd.SrcW, cmd.SrcY+cmd.SrcH)

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(cmd.X, cmd.Y)
		screen.DrawImage(src.SubImage(rect).(*ebiten.Image), op)
	}
}

// sourceImage выбирает изображение по команде; nil-ассет заменяется
// фолбэком прямо здесь, рендер об этом не знает.
func (g *game) sourceImage(cmd render.Command) *ebiten.Image {
	var img *ebiten.Image
	switch cmd.Src {
	case render.SourceTileset:
		img = g.assets.tileset
	case render.SourceAutotile:
		if cmd.Index >= 0 && cmd.Index < len(g.assets.autotiles) {
			img = g.assets.autotiles[cmd.Index]
		}
	case render.SourceSprite:
		if cmd.Index >= 0 && cmd.Index < len(g.assets.sprites) {
			img = g.assets.sprites[cmd.Index]
		}
	case render.SourceGrassFx:
		img = g.assets.grassFx
	}
	if img == nil {
		return g.assets.fallback
	}
	return img
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenW, screenH
}

func (g *game) nowMs() int64 {
	return time.Since(g.start).Milliseconds()
}
