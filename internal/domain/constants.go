package domain

// Геометрия тайлов. Зафиксирована форматом исходной графики.
const (
	TileSize     = 32 // пиксели
	MiniTileSize = 16 // четверть тайла, атомарная единица автотайлинга

	// Семантика tile ID: 0 - пусто, 1..383 - автотайлы, 384+ - статика.
	StaticTileBase   = 384
	AutotileSlotSize = 48 // ID на один слот автотайла
	AutotileSlots    = 8
	TilesetColumns   = 8 // ширина колонки статичного тайлсета
)

// Движение и анимация.
const (
	WalkSpeed         = 4.0  // тайлов в секунду
	WalkFrames        = 4    // кадров в цикле ходьбы
	WalkFrameInterval = 0.15 // секунд на кадр ходьбы
	StandingFrame     = 1    // кадр покоя: всегда "лицом", не 0/2/3

	AutotileFrameMs = 500 // период анимации тайлов с kind=static-animation
)

// Параметры новой сессии.
const (
	SpriteCount     = 8 // количество доступных спрайтов персонажей
	DefaultSpawnMap = 79
	DefaultSpawnX   = 10
	DefaultSpawnY   = 12
)
