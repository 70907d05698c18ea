package main

import (
	"flag"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/websocket"

	"overworld/internal/domain"
	"overworld/internal/systems"
	"overworld/pkg/api"
	"overworld/pkg/logger"
)

// Headless-агент: подключается к серверу как обычный клиент и
// бесцельно бродит по карте спавна. Полезен для нагрузочной проверки
// рассылок и как живой пример внешнего клиента протокола.
//
// Карт у бота нет, коллизии он не проверяет - сервер все равно
// доверяет координатам клиента. Чтобы не убрести в бесконечность,
// броуновское движение ограничено квадратом вокруг спавна.

const (
	tick       = 50 * time.Millisecond
	wanderSpan = 6 // тайлов от спавна в каждую сторону
	moveChance = 0.02
)

func init() {
	logger.Init()
}

func main() {
	var addr string
	flag.StringVar(&addr, "addr", "ws://localhost:8080/ws", "server websocket address")
	flag.Parse()

	conn, _, err := websocket.DefaultDialer.Dial(addr, nil)
	if err != nil {
		logger.Log.Fatal("Connect failed: ", err)
	}
	defer conn.Close()

	go readLoop(conn)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	motion := systems.NewMotionState(
		domain.Position{X: domain.DefaultSpawnX, Y: domain.DefaultSpawnY},
		domain.DirDown,
	)
	mapID := domain.DefaultSpawnMap

	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			logger.Log.Info("Bot shutting down")
			return
		case <-ticker.C:
			if ev, done := motion.Update(tick.Seconds()); done {
				sendMove(conn, ev, mapID)
			}
			if !motion.Moving && rand.Float64() < moveChance {
				dx, dy := randomStep(motion.Pos)
				if ev, ok := motion.Start(dx, dy); ok {
					sendMove(conn, ev, mapID)
				}
			}
		}
	}
}

// randomStep выбирает направление, не выводящее из квадрата блужданий.
func randomStep(pos domain.Position) (int, int) {
	for {
		dir := domain.Direction(rand.Intn(4))
		dx, dy := dir.Delta()
		next := pos.Shift(dx, dy)
		if abs(next.X-domain.DefaultSpawnX) <= wanderSpan && abs(next.Y-domain.DefaultSpawnY) <= wanderSpan {
			return dx, dy
		}
	}
}

func sendMove(conn *websocket.Conn, ev domain.MoveEvent, mapID int) {
	msg := api.MoveMessage{
		Type:      api.TypeMove,
		X:         ev.Pos.X,
		Y:         ev.Pos.Y,
		Direction: int(ev.Direction),
		IsMoving:  ev.Moving,
		MapID:     &mapID,
	}
	if err := conn.WriteJSON(msg); err != nil {
		logger.Log.WithError(err).Fatal("write failed")
	}
}

// readLoop дренирует входящие: бот реагирует только логами.
func readLoop(conn *websocket.Conn) {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			logger.Log.WithError(err).Fatal("connection lost")
		}
		msg, err := api.DecodeServerMessage(data)
		if err != nil {
			continue
		}
		switch m := msg.(type) {
		case api.InitMessage:
			logger.Log.Infof("Bot online as %s, %d peers on map", m.ID, len(m.Players))
		case api.PlayerJoinMessage:
			logger.Log.Debugf("peer joined: %s", m.Player.ID)
		case api.PlayerLeaveMessage:
			logger.Log.Debugf("peer left: %s", m.ID)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
