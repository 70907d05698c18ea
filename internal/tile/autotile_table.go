package tile

// Таблица координат мини-тайлов на листе паттерна 96x128
// (6 колонок x 8 рядов клеток по 16px).
//
// Раскладка листа в клетках 32px (3x4):
//
//	[демо][анимация][вогнутые углы]
//	[           большой блок 3x3          ]
//	[  его края - кромки, центр - заливка ]
//
// ВАЖНО: это подобранные контентные константы рабочей конфигурации.
// Алгоритм (соседи -> класс -> координата) - контракт, сами числа -
// фикстура, их нельзя "выводить" заново.

// MiniCoord - координата клетки 16px на листе паттерна (колонка, ряд).
type MiniCoord struct {
	Col int
	Row int
}

// quadClass - класс четверти тайла по соседям.
type quadClass int

const (
	classInner    quadClass = iota // оба кардинала + диагональ: сплошная заливка
	classInnerCut                  // оба кардинала без диагонали: вогнутый угол
	classOuter                     // ни одного кардинала: выпуклый угол
	classEdgeH                     // только "свой" горизонтальный кардинал: горизонтальная кромка
	classEdgeV                     // только вертикальный кардинал: вертикальная кромка
)

// Quadrant - четверть тайла.
type Quadrant int

const (
	QuadTL Quadrant = iota
	QuadTR
	QuadBL
	QuadBR
)

// quadTable[quadrant][class] -> клетка листа паттерна.
var quadTable = [4][5]MiniCoord{
	QuadTL: {
		classInner:    {2, 4},
		classInnerCut: {4, 0},
		classOuter:    {0, 2},
		classEdgeH:    {2, 2},
		classEdgeV:    {0, 4},
	},
	QuadTR: {
		classInner:    {3, 4},
		classInnerCut: {5, 0},
		classOuter:    {5, 2},
		classEdgeH:    {3, 2},
		classEdgeV:    {5, 4},
	},
	QuadBL: {
		classInner:    {2, 5},
		classInnerCut: {4, 1},
		classOuter:    {0, 7},
		classEdgeH:    {2, 7},
		classEdgeV:    {0, 5},
	},
	QuadBR: {
		classInner:    {3, 5},
		classInnerCut: {5, 1},
		classOuter:    {5, 7},
		classEdgeH:    {3, 7},
		classEdgeV:    {5, 5},
	},
}

// patternColumns - ширина листа паттерна в мини-тайлах.
const patternColumns = 6
