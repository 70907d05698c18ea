package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"

	"overworld/internal/domain"
	"overworld/internal/tile"
	"overworld/pkg/logger"
)

// loadAssets читает изображения с диска. Отсутствующий файл - warning
// и nil в наборе, не ошибка: клиент обязан запуститься и с дырявой
// графикой.
func loadAssets(dir string, slots [domain.AutotileSlots]tile.SlotConfig) *assetSet {
	set := &assetSet{fallback: makeFallback()}

	set.tileset = loadImage(filepath.Join(dir, "tileset.png"))
	for i, cfg := range slots {
		set.autotiles[i] = loadImage(filepath.Join(dir, "autotiles", cfg.Name+".png"))
	}
	for i := 0; i < domain.SpriteCount; i++ {
		set.sprites[i] = loadImage(filepath.Join(dir, "characters", fmt.Sprintf("%d.png", i)))
	}
	set.grassFx = loadImage(filepath.Join(dir, "fx", "grass.png"))

	return set
}

func loadImage(path string) *ebiten.Image {
	f, err := os.Open(path)
	if err != nil {
		logger.WithComponent("assets").WithError(err).Warn("image missing, using fallback")
		return nil
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		logger.WithComponent("assets").WithError(err).Warn("image broken, using fallback")
		return nil
	}
	return ebiten.NewImageFromImage(img)
}

// makeFallback - нейтральный тайл для незагруженных ассетов.
func makeFallback() *ebiten.Image {
	img := image.NewRGBA(image.Rect(0, 0, domain.TileSize, domain.TileSize))
	for y := 0; y < domain.TileSize; y++ {
		for x := 0; x < domain.TileSize; x++ {
			img.Set(x, y, color.RGBA{R: 90, G: 90, B: 110, A: 255})
		}
	}
	return ebiten.NewImageFromImage(img)
}
