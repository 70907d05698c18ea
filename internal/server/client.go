package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"overworld/internal/session"
	"overworld/pkg/api"
	"overworld/pkg/logger"
)

// Настройки WebSocket.
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 1024
	sendQueueSize  = 256
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client - посредник между websocket-соединением и Registry.
// Реализует session.Sender через буферизованный канал: отправка
// никогда не блокирует обработчик сообщений.
type Client struct {
	registry *session.Registry
	conn     *websocket.Conn
	send     chan api.ServerMessage
}

func NewClient(registry *session.Registry, conn *websocket.Conn) *Client {
	return &Client{
		registry: registry,
		conn:     conn,
		send:     make(chan api.ServerMessage, sendQueueSize),
	}
}

// Send - fire-and-forget. Переполненная очередь медленного клиента
// роняет сообщение, а не рассылку.
func (c *Client) Send(msg api.ServerMessage) {
	select {
	case c.send <- msg:
	default:
		logger.WithComponent("server").Debug("send queue full, message dropped")
	}
}

// readPump читает сообщения клиента и гонит их в Registry.
// Завершение (любая ошибка чтения) = дисконнект игрока.
func (c *Client) readPump() {
	defer func() {
		c.registry.Disconnect(c)
		close(c.send)
		if err := c.conn.Close(); err != nil {
			logger.WithComponent("server").WithError(err).Debug("close after readPump")
		}
	}()

	c.conn.SetReadLimit(maxMessageSize)
	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logger.WithComponent("server").WithError(err).Warn("failed to set read deadline")
	}
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	// Запись игрока создается сразу: логина в протоколе нет,
	// личность выдает сервер.
	c.registry.Connect(c)

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.WithComponent("server").WithError(err).Error("websocket read")
			}
			return
		}

		msg, err := api.DecodeClientMessage(data)
		if err != nil {
			// Битый JSON и незнакомые типы глотаем: соединение живет дальше.
			var unknown api.ErrUnknownType
			if errors.As(err, &unknown) {
				logger.WithComponent("server").WithField("type", unknown.Type).
					Debug("ignoring unknown message type")
			} else {
				logger.WithComponent("server").WithError(err).Warn("malformed message")
			}
			continue
		}

		if v, ok := msg.(api.Validator); ok {
			if err := v.Validate(); err != nil {
				logger.WithComponent("server").WithError(err).Warn("rejected message")
				continue
			}
		}

		c.registry.HandleMessage(c, msg)
	}
}

// writePump пишет исходящую очередь + ping по таймеру.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if err := c.conn.Close(); err != nil {
			logger.WithComponent("server").WithError(err).Debug("close after writePump")
		}
	}()

	for {
		select {
		case msg, ok := <-c.send:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.WithComponent("server").WithError(err).Warn("failed to set write deadline")
			}
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(msg); err != nil {
				logger.WithComponent("server").WithError(err).Debug("write failed")
				return
			}

		case <-ticker.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.WithComponent("server").WithError(err).Warn("failed to set ping deadline")
			}
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
