package client

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"overworld/internal/domain"
	"overworld/internal/render"
	"overworld/internal/systems"
	"overworld/internal/tile"
	"overworld/internal/world"
	"overworld/pkg/api"
	"overworld/pkg/logger"
	"overworld/pkg/utils"
)

// remoteActor - удаленный игрок на клиенте. Живет от JOIN/INIT до
// LEAVE либо до смены карты самим клиентом.
type remoteActor struct {
	motion   *systems.MotionState
	spriteID int
	mapID    int
}

// Engine - клиентское ядро: локальный игрок, удаленные игроки,
// текущая карта и исходящая очередь сообщений.
//
// Сетевые сообщения мутируют состояние сразу при получении (не ждут
// границы кадра), поэтому все состояние под одним мьютексом: цикл
// кадра и горутина чтения сокета пересекаются.
type Engine struct {
	mu sync.Mutex

	id       string // выдается сервером в INIT; до него пусто
	mapID    int
	grid     *world.TileGrid
	local    *systems.MotionState
	spriteID int

	remotes map[string]*remoteActor

	load        world.LoadFunc
	transitions *world.TransitionTable

	out chan api.ClientMessage

	fx []render.GrassFx
}

// NewEngine загружает стартовую карту. Ошибка загрузки - блокирующее
// состояние запуска, цикл кадров не стартует.
func NewEngine(load world.LoadFunc, transitions *world.TransitionTable) (*Engine, error) {
	grid, err := load(domain.DefaultSpawnMap)
	if err != nil {
		return nil, fmt.Errorf("startup: load map %d: %w", domain.DefaultSpawnMap, err)
	}

	return &Engine{
		mapID:       domain.DefaultSpawnMap,
		grid:        grid,
		local:       systems.NewMotionState(domain.Position{X: domain.DefaultSpawnX, Y: domain.DefaultSpawnY}, domain.DirDown),
		spriteID:    utils.RandomIndex(domain.SpriteCount),
		remotes:     make(map[string]*remoteActor),
		load:        load,
		transitions: transitions,
		out:         make(chan api.ClientMessage, 64),
	}, nil
}

// Outgoing - очередь сообщений для сетевого слоя.
func (e *Engine) Outgoing() <-chan api.ClientMessage {
	return e.out
}

// send - fire-and-forget в сетевую очередь.
func (e *Engine) send(msg api.ClientMessage) {
	select {
	case e.out <- msg:
	default:
		logger.WithComponent("client").Warn("outgoing queue full, message dropped")
	}
}

// Move - намерение шага от слоя ввода. Отказы молчаливые:
// шаг в полете или непроходимый тайл не дают ни события, ни трафика.
func (e *Engine) Move(dx, dy int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.local.Moving {
		return
	}
	target := e.local.Pos.Shift(dx, dy)
	if !tile.IsWalkable(e.grid, target.X, target.Y) {
		return
	}

	ev, ok := e.local.Start(dx, dy)
	if !ok {
		return
	}
	e.sendMoveEvent(ev)
}

// Update - один тик кадра: локальное движение, затем удаленные,
// затем чистка отыгравших анимаций.
func (e *Engine) Update(dt float64, nowMs int64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if ev, done := e.local.Update(dt); done {
		e.sendMoveEvent(ev)
		e.onArrival(ev.Pos, nowMs)
	}

	for _, r := range e.remotes {
		r.motion.Update(dt)
	}

	alive := e.fx[:0]
	for _, f := range e.fx {
		if f.Alive(nowMs) {
			alive = append(alive, f)
		}
	}
	e.fx = alive
}

// onArrival - проверки момента завершения шага: трава и край карты.
// Переходы проверяются ТОЛЬКО здесь - посреди тайла они бы сработали дважды.
func (e *Engine) onArrival(pos domain.Position, nowMs int64) {
	if tile.IsGrassTrigger(e.grid, pos.X, pos.Y) {
		e.fx = append(e.fx, render.GrassFx{X: pos.X, Y: pos.Y, StartMs: nowMs})
	}

	rule, ok := e.transitions.CheckTransition(e.mapID, pos.X, pos.Y, e.grid.Width, e.grid.Height)
	if !ok {
		return
	}

	grid, err := e.load(rule.DestMap)
	if err != nil {
		// Посреди сессии ошибка загрузки поглощается: остаемся на карте.
		logger.WithComponent("client").WithError(err).
			WithField("map_id", rule.DestMap).Error("transition aborted")
		return
	}

	fromMap := e.mapID
	e.grid = grid
	e.mapID = rule.DestMap
	e.local.Pos = rule.Spawn
	e.local.Target = rule.Spawn
	e.fx = nil
	// Старый состав карты невалиден; новый придет backfill-ом от сервера.
	e.remotes = make(map[string]*remoteActor)

	e.send(api.MapTransitionMessage{
		Type:    api.TypeMapTransition,
		FromMap: fromMap,
		ToMap:   rule.DestMap,
		X:       rule.Spawn.X,
		Y:       rule.Spawn.Y,
	})

	logger.WithComponent("client").WithFields(logrus.Fields{
		"from_map": fromMap,
		"to_map":   rule.DestMap,
	}).Info("Map transition")
}

func (e *Engine) sendMoveEvent(ev domain.MoveEvent) {
	mapID := e.mapID
	e.send(api.MoveMessage{
		Type:      api.TypeMove,
		X:         ev.Pos.X,
		Y:         ev.Pos.Y,
		Direction: int(ev.Direction),
		IsMoving:  ev.Moving,
		MapID:     &mapID,
	})
}

// ApplyServer применяет сообщение сервера немедленно.
func (e *Engine) ApplyServer(msg api.ServerMessage) {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch m := msg.(type) {
	case api.InitMessage:
		e.id = m.ID
		for _, rec := range m.Players {
			e.upsertRemote(rec)
		}
		logger.WithComponent("client").WithFields(logrus.Fields{
			"player_id": m.ID,
			"peers":     len(m.Players),
		}).Info("Session initialized")

	case api.PlayerJoinMessage:
		e.upsertRemote(m.Player)

	case api.PlayerMoveMessage:
		r, ok := e.remotes[m.ID]
		if !ok {
			return
		}
		if m.MapID != nil {
			r.mapID = *m.MapID
		}
		if d := domain.Direction(m.Direction); d.Valid() {
			r.motion.SetNetworkState(m.X, m.Y, d, m.IsMoving)
		}

	case api.PlayerLeaveMessage:
		delete(e.remotes, m.ID)
	}
}

func (e *Engine) upsertRemote(rec api.PlayerRecord) {
	if rec.ID == e.id {
		return
	}
	r, ok := e.remotes[rec.ID]
	if !ok {
		r = &remoteActor{
			motion:   systems.NewMotionState(domain.Position{X: rec.X, Y: rec.Y}, domain.Direction(rec.Direction)),
			spriteID: rec.SpriteID,
		}
		e.remotes[rec.ID] = r
	}
	r.mapID = rec.MapID
	r.motion.SetNetworkState(rec.X, rec.Y, domain.Direction(rec.Direction), rec.IsMoving)
}

// RenderFrame собирает команды кадра под общим мьютексом:
// рендер всегда видит согласованное состояние.
// Удаленные фильтруются по текущей карте каждый кадр - отдельный
// индекс на таком масштабе не нужен.
func (e *Engine) RenderFrame(rc *render.Compositor, nowMs int64) []render.Command {
	e.mu.Lock()
	defer e.mu.Unlock()

	remotes := make([]render.Actor, 0, len(e.remotes))
	for _, r := range e.remotes {
		if r.mapID != e.mapID {
			continue
		}
		remotes = append(remotes, render.Actor{Motion: r.motion, SpriteID: r.spriteID})
	}

	local := render.Actor{Motion: e.local, SpriteID: e.spriteID}
	return rc.Frame(e.grid, local, remotes, e.fx, nowMs)
}
