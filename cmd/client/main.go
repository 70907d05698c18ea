package main

import (
	"flag"

	"github.com/hajimehoshi/ebiten/v2"

	"overworld/internal/client"
	"overworld/internal/domain"
	"overworld/internal/render"
	"overworld/internal/tile"
	"overworld/internal/version"
	"overworld/internal/world"
	"overworld/pkg/logger"
)

const (
	screenW = 640
	screenH = 480
)

func init() {
	logger.Init()
}

func main() {
	var (
		addr     string
		mapDir   string
		assetDir string
	)
	flag.StringVar(&addr, "addr", "ws://localhost:8080/ws", "server websocket address")
	flag.StringVar(&mapDir, "map-dir", "maps", "directory with extracted map JSON")
	flag.StringVar(&assetDir, "asset-dir", "assets", "directory with tileset/sprite images")
	flag.Parse()

	logger.Log.Info("Starting Overworld client...")
	logger.Log.Info(version.String())

	// Ошибка загрузки стартовой карты блокирует запуск:
	// частично стартовавший цикл кадров хуже честного падения.
	engine, err := client.NewEngine(world.DirLoader(mapDir), world.NewTransitionTable(world.DefaultRules()))
	if err != nil {
		logger.Log.Fatal("Startup failed: ", err)
	}

	net, err := client.Dial(addr, engine)
	if err != nil {
		logger.Log.Fatal("Connect failed: ", err)
	}
	net.Start()
	defer net.Close()

	slots := tile.DefaultSlots()
	assets := loadAssets(assetDir, slots)

	compositor := render.NewCompositor(screenW, screenH, tile.NewCompositor(slots))
	for slot, img := range assets.autotiles {
		if img != nil {
			b := img.Bounds()
			compositor.SetPatternSize(slot, b.Dx(), b.Dy())
		}
	}

	game := newGame(engine, compositor, assets)

	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetWindowTitle("Overworld")
	if err := ebiten.RunGame(game); err != nil && err != ebiten.Termination {
		logger.Log.Fatal("Game loop error: ", err)
	}
}

// assetSet - загруженные изображения. nil = ассет не нашелся,
// рисуем фолбэк (деградация вместо падения посреди рендера).
type assetSet struct {
	tileset   *ebiten.Image
	autotiles [domain.AutotileSlots]*ebiten.Image
	sprites   [domain.SpriteCount]*ebiten.Image
	grassFx   *ebiten.Image
	fallback  *ebiten.Image
}
