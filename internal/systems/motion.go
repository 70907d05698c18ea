package systems

import (
	"overworld/internal/domain"
	"overworld/pkg/logger"
)

// MotionState - автомат дискретного движения одного игрока:
// Idle <-> Moving с непрерывной интерполяцией прогресса 0..1.
// Один и тот же автомат обслуживает локального игрока (ввод + предсказание)
// и удаленных (сеть авторитетна).
type MotionState struct {
	Pos      domain.Position
	Target   domain.Position // валиден только в Moving; ровно один тайл от Pos
	Dir      domain.Direction
	Moving   bool
	Progress float64 // 0..1, линейно во времени

	// Цикл ходьбы идет по собственному таймеру, независимо от Progress.
	animFrame int
	animClock float64
}

func NewMotionState(pos domain.Position, dir domain.Direction) *MotionState {
	return &MotionState{
		Pos:       pos,
		Target:    pos,
		Dir:       dir,
		animFrame: domain.StandingFrame,
	}
}

// Start принимает намерение шага на единичный вектор (dx,dy).
// Пока предыдущий шаг не завершен - отказ без события: в полете
// не больше одного шага на игрока.
//
// Событие MoveStarted несет позицию ДО шага - именно она уходит на сервер.
func (m *MotionState) Start(dx, dy int) (domain.MoveEvent, bool) {
	if m.Moving {
		logger.WithComponent("motion").WithField("pos", m.Pos).
			Debug("move rejected: already moving")
		return domain.MoveEvent{}, false
	}

	dir, ok := domain.DirectionFromDelta(dx, dy)
	if !ok {
		return domain.MoveEvent{}, false
	}

	m.Dir = dir
	m.Target = m.Pos.Shift(dx, dy)
	m.Progress = 0
	m.Moving = true

	return domain.MoveEvent{
		Kind:      domain.MoveStarted,
		Pos:       m.Pos,
		Direction: m.Dir,
		Moving:    true,
	}, true
}

// Update продвигает шаг на dt секунд.
// По достижении цели: привязка к целевому тайлу, Idle, кадр покоя
// и событие MoveCompleted с итоговой позицией.
func (m *MotionState) Update(dt float64) (domain.MoveEvent, bool) {
	if !m.Moving {
		return domain.MoveEvent{}, false
	}

	m.Progress += domain.WalkSpeed * dt

	m.animClock += dt
	for m.animClock >= domain.WalkFrameInterval {
		m.animClock -= domain.WalkFrameInterval
		m.animFrame = (m.animFrame + 1) % domain.WalkFrames
	}

	if m.Progress < 1 {
		return domain.MoveEvent{}, false
	}

	m.Pos = m.Target
	m.Progress = 0
	m.Moving = false
	m.animFrame = domain.StandingFrame
	m.animClock = 0

	return domain.MoveEvent{
		Kind:      domain.MoveCompleted,
		Pos:       m.Pos,
		Direction: m.Dir,
		Moving:    false,
	}, true
}

// SetNetworkState применяет состояние из сети. Для удаленных игроков
// сеть авторитетна: позиция/направление/флаг берутся как есть.
// Протокол не несет целевой тайл, поэтому при moving=true цель
// восстанавливается из направления - этого достаточно для интерполяции.
func (m *MotionState) SetNetworkState(x, y int, dir domain.Direction, moving bool) {
	if moving && !m.Moving {
		m.Progress = 0
		m.animFrame = 0
		m.animClock = 0
	}

	m.Pos = domain.Position{X: x, Y: y}
	m.Dir = dir
	m.Moving = moving

	if moving {
		dx, dy := dir.Delta()
		m.Target = m.Pos.Shift(dx, dy)
	} else {
		m.Target = m.Pos
	}
}

// Frame возвращает текущий кадр спрайта.
// В покое всегда кадр 1 ("лицом"), никогда 0/2/3.
func (m *MotionState) Frame() int {
	if m.Moving {
		return m.animFrame % domain.WalkFrames
	}
	return domain.StandingFrame
}

// PixelOffset - визуальное смещение от тайла Pos в пикселях.
// ОДНА И ТА ЖЕ формула для локального игрока, удаленных и камеры,
// иначе игроки разъезжаются с камерой.
func (m *MotionState) PixelOffset() (float64, float64) {
	if !m.Moving {
		return 0, 0
	}
	ox := float64(m.Target.X-m.Pos.X) * m.Progress * domain.TileSize
	oy := float64(m.Target.Y-m.Pos.Y) * m.Progress * domain.TileSize
	return ox, oy
}
