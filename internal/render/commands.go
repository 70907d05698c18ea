package render

// Источник пикселей команды. Ядро оперирует только идентификаторами:
// сами изображения живут в оболочке (cmd/client), которая обязана
// подставить нейтральный фолбэк вместо незагруженного ассета.
type Source int

const (
	// SourceTileset - общее изображение статичного тайлсета (колонка 8 тайлов).
	SourceTileset Source = iota
	// SourceAutotile - лист паттерна автотайлового слота Index.
	SourceAutotile
	// SourceSprite - лист персонажа с индексом Index (4 кадра x 4 направления).
	SourceSprite
	// SourceGrassFx - лента кадров анимации травы.
	SourceGrassFx
)

// Command - одна операция blit: прямоугольник источника в точку экрана.
// Список команд за кадр - единственный контракт между ядром и оболочкой.
type Command struct {
	Src   Source
	Index int // слот автотайла либо spriteId; для tileset/fx не используется

	SrcX, SrcY int
	SrcW, SrcH int

	X, Y float64 // экранные пиксели
}

// Геометрия спрайта персонажа. Кадр выше тайла: ноги стоят на тайле,
// голова перекрывает тайл выше.
const (
	SpriteFrameW = 32
	SpriteFrameH = 48
	SpriteLiftY  = SpriteFrameH - 32 // насколько поднять кадр над тайлом
)

// Анимация травы при входе в высокую траву.
const (
	GrassFxFrames  = 4
	GrassFxFrameMs = 100
	GrassFxTotalMs = GrassFxFrames * GrassFxFrameMs
)
