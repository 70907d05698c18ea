package client

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gorilla/websocket"

	"overworld/pkg/api"
	"overworld/pkg/logger"
)

// Network - сетевой слой клиента: читающая горутина применяет
// сообщения к Engine сразу по получении, пишущая дренирует
// исходящую очередь движка.
type Network struct {
	conn   *websocket.Conn
	engine *Engine

	done      chan struct{}
	closeOnce sync.Once
}

// Dial подключается к серверу (ws://host:port/ws).
func Dial(addr string, engine *Engine) (*Network, error) {
	conn, _, err := websocket.DefaultDialer.Dial(addr, nil)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", addr, err)
	}
	return &Network{conn: conn, engine: engine, done: make(chan struct{})}, nil
}

// Start запускает обе горутины. Неблокирующий.
func (n *Network) Start() {
	go n.readLoop()
	go n.writeLoop()
}

func (n *Network) readLoop() {
	defer n.Close()
	for {
		_, data, err := n.conn.ReadMessage()
		if err != nil {
			select {
			case <-n.done:
			default:
				logger.WithComponent("client").WithError(err).Warn("connection lost")
			}
			return
		}

		msg, err := api.DecodeServerMessage(data)
		if err != nil {
			var unknown api.ErrUnknownType
			if errors.As(err, &unknown) {
				logger.WithComponent("client").WithField("type", unknown.Type).
					Debug("ignoring unknown message type")
			} else {
				logger.WithComponent("client").WithError(err).Warn("malformed server message")
			}
			continue
		}

		n.engine.ApplyServer(msg)
	}
}

func (n *Network) writeLoop() {
	for {
		select {
		case msg := <-n.engine.Outgoing():
			if err := n.conn.WriteJSON(msg); err != nil {
				logger.WithComponent("client").WithError(err).Debug("write failed")
				n.Close()
				return
			}
		case <-n.done:
			return
		}
	}
}

// Close закрывает сокет. Идемпотентен, порядок teardown-шагов не важен.
func (n *Network) Close() {
	n.closeOnce.Do(func() {
		close(n.done)
		if err := n.conn.Close(); err != nil {
			logger.WithComponent("client").WithError(err).Debug("close failed")
		}
	})
}
