package session

import (
	"sync"

	"github.com/sirupsen/logrus"

	"overworld/internal/domain"
	"overworld/pkg/api"
	"overworld/pkg/logger"
	"overworld/pkg/utils"
)

// Sender - абстракция исходящего канала одного соединения.
// Send обязан быть fire-and-forget: не блокировать и не возвращать
// ошибку наверх - неудачная отправка одному клиенту не должна
// прерывать рассылку остальным.
type Sender interface {
	Send(msg api.ServerMessage)
}

// Player - авторитетная запись игрока на сервере.
// Создается при подключении, умирает при дисконнекте.
type Player struct {
	ID       string
	Pos      domain.Position
	Dir      domain.Direction
	Moving   bool
	MapID    int
	SpriteID int
}

// Record собирает DTO для wire-протокола.
func (p *Player) Record() api.PlayerRecord {
	return api.PlayerRecord{
		ID:        p.ID,
		X:         p.Pos.X,
		Y:         p.Pos.Y,
		Direction: int(p.Dir),
		IsMoving:  p.Moving,
		SpriteID:  p.SpriteID,
		MapID:     p.MapID,
	}
}

// Registry - реестр соединение -> игрок. Единственное разделяемое
// состояние сервера, поэтому один грубый мьютекс: чтения (обход при
// рассылке) и записи (move/transition) перемежаются из разных горутин
// соединений.
//
// Сервер НЕ валидирует легальность координат - клиенту доверяют
// (кооперативная социальная игра). Это осознанное решение, а не дыра,
// которую надо молча закрывать.
type Registry struct {
	mu      sync.Mutex
	players map[Sender]*Player
}

func NewRegistry() *Registry {
	return &Registry{players: make(map[Sender]*Player)}
}

// Connect регистрирует новое соединение: свежий ID, случайный спрайт,
// дефолтный спавн. Подключившийся получает INIT со снимком своей карты
// (без самого себя), остальные на карте - PLAYER_JOIN.
func (r *Registry) Connect(conn Sender) *Player {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := &Player{
		ID:       utils.GenerateID(),
		Pos:      domain.Position{X: domain.DefaultSpawnX, Y: domain.DefaultSpawnY},
		Dir:      domain.DirDown,
		MapID:    domain.DefaultSpawnMap,
		SpriteID: utils.RandomIndex(domain.SpriteCount),
	}
	r.players[conn] = p

	snapshot := make([]api.PlayerRecord, 0)
	for c, other := range r.players {
		if c == conn || other.MapID != p.MapID {
			continue
		}
		snapshot = append(snapshot, other.Record())
	}
	conn.Send(api.InitMessage{Type: api.TypeInit, ID: p.ID, Players: snapshot})

	r.broadcastLocked(p.MapID, api.PlayerJoinMessage{Type: api.TypePlayerJoin, Player: p.Record()}, conn)

	logger.WithComponent("session").WithFields(logrus.Fields{
		"player_id": p.ID,
		"map_id":    p.MapID,
		"sprite_id": p.SpriteID,
	}).Info("Player connected")
	return p
}

// Disconnect удаляет запись и сообщает об уходе той карте,
// на которой игрок был в момент удаления.
func (r *Registry) Disconnect(conn Sender) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.players[conn]
	if !ok {
		return
	}
	delete(r.players, conn)
	r.broadcastLocked(p.MapID, api.PlayerLeaveMessage{Type: api.TypePlayerLeave, ID: p.ID}, nil)

	logger.WithComponent("session").WithField("player_id", p.ID).Info("Player disconnected")
}

// HandleMessage - единая точка диспетчеризации входящих сообщений.
func (r *Registry) HandleMessage(conn Sender, msg api.ClientMessage) {
	switch m := msg.(type) {
	case api.MoveMessage:
		r.handleMove(conn, m)
	case api.MapTransitionMessage:
		r.handleTransition(conn, m)
	default:
		// Decode не пропускает неизвестные типы, но оставляем явную ветку.
		logger.WithComponent("session").Warnf("unhandled message %T", msg)
	}
}

// handleMove обновляет запись тем, что сообщил клиент, и ретранслирует
// остальным на той же карте (без эха отправителю).
func (r *Registry) handleMove(conn Sender, m api.MoveMessage) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.players[conn]
	if !ok {
		return
	}

	p.Pos = domain.Position{X: m.X, Y: m.Y}
	if d := domain.Direction(m.Direction); d.Valid() {
		p.Dir = d
	}
	p.Moving = m.IsMoving
	// Совместимость со старыми клиентами: mapId опционален.
	if m.MapID != nil {
		p.MapID = *m.MapID
	}

	r.broadcastLocked(p.MapID, api.PlayerMoveMessage{
		Type:      api.TypePlayerMove,
		ID:        p.ID,
		X:         p.Pos.X,
		Y:         p.Pos.Y,
		Direction: int(p.Dir),
		IsMoving:  p.Moving,
		MapID:     m.MapID,
	}, conn)
}

// handleTransition - строго упорядоченный переход между картами:
//
//  1. PLAYER_LEAVE наблюдателям СТАРОЙ карты;
//  2. мутация записи (карта + точка спавна);
//  3. PLAYER_JOIN наблюдателям НОВОЙ карты;
//  4. backfill переходящему: по одному PLAYER_JOIN на каждого,
//     кто уже на новой карте.
//
// Порядок исключает окно, когда игрок виден на двух картах сразу
// или не виден нигде.
func (r *Registry) handleTransition(conn Sender, m api.MapTransitionMessage) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.players[conn]
	if !ok {
		return
	}

	r.broadcastLocked(m.FromMap, api.PlayerLeaveMessage{Type: api.TypePlayerLeave, ID: p.ID}, conn)

	p.MapID = m.ToMap
	p.Pos = domain.Position{X: m.X, Y: m.Y}
	p.Moving = false

	r.broadcastLocked(m.ToMap, api.PlayerJoinMessage{Type: api.TypePlayerJoin, Player: p.Record()}, conn)

	for c, other := range r.players {
		if c == conn || other.MapID != m.ToMap {
			continue
		}
		conn.Send(api.PlayerJoinMessage{Type: api.TypePlayerJoin, Player: other.Record()})
	}

	logger.WithComponent("session").WithFields(logrus.Fields{
		"player_id": p.ID,
		"from_map":  m.FromMap,
		"to_map":    m.ToMap,
	}).Info("Player changed map")
}

// broadcastLocked рассылает msg всем соединениям карты mapID, кроме exclude.
// Линейный скан по соединениям: на целевом масштабе (десятки игроков
// на карту) индекс карта->соединения не нужен.
// Вызывается только под r.mu.
func (r *Registry) broadcastLocked(mapID int, msg api.ServerMessage, exclude Sender) {
	for c, p := range r.players {
		if c == exclude || p.MapID != mapID {
			continue
		}
		c.Send(msg)
	}
}

// Count возвращает число подключенных игроков (для health-логов).
func (r *Registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.players)
}
