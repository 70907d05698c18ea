package client

// Key - логическая клавиша движения. Оболочка транслирует сюда
// события "нажата"/"отпущена"; автоповтор ОС игнорируется -
// зажатые клавиши ядро отслеживает само.
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
)

// InputTracker помнит зажатые клавиши в порядке нажатия:
// при нескольких зажатых побеждает последняя.
type InputTracker struct {
	order []Key
}

func NewInputTracker() *InputTracker {
	return &InputTracker{}
}

func (t *InputTracker) Press(k Key) {
	t.Release(k) // повторное событие той же клавиши не плодит дублей
	t.order = append(t.order, k)
}

func (t *InputTracker) Release(k Key) {
	for i, held := range t.order {
		if held == k {
			t.order = append(t.order[:i], t.order[i+1:]...)
			return
		}
	}
}

// Current возвращает единичный вектор движения по последней зажатой
// клавише. ok=false, если ничего не зажато.
func (t *InputTracker) Current() (dx, dy int, ok bool) {
	if len(t.order) == 0 {
		return 0, 0, false
	}
	switch t.order[len(t.order)-1] {
	case KeyUp:
		return 0, -1, true
	case KeyDown:
		return 0, 1, true
	case KeyLeft:
		return -1, 0, true
	case KeyRight:
		return 1, 0, true
	}
	return 0, 0, false
}

// Reset отпускает все клавиши (teardown). Идемпотентно.
func (t *InputTracker) Reset() {
	t.order = nil
}
