package api

import (
	"encoding/json"
	"fmt"
)

// ClientMessage - закрытое объединение всех сообщений клиент->сервер.
type ClientMessage interface{ clientMessage() }

func (MoveMessage) clientMessage()          {}
func (MapTransitionMessage) clientMessage() {}

// ServerMessage - закрытое объединение всех сообщений сервер->клиент.
type ServerMessage interface{ serverMessage() }

func (InitMessage) serverMessage()        {}
func (PlayerJoinMessage) serverMessage()  {}
func (PlayerMoveMessage) serverMessage()  {}
func (PlayerLeaveMessage) serverMessage() {}

// ErrUnknownType возвращается для нераспознанного поля "type".
// Вызывающий обязан залогировать и проигнорировать сообщение,
// соединение при этом не рвется.
type ErrUnknownType struct {
	Type string
}

func (e ErrUnknownType) Error() string {
	return fmt.Sprintf("unknown message type %q", e.Type)
}

// envelope - первый проход декодирования: только дискриминатор.
type envelope struct {
	Type MessageType `json:"type"`
}

// DecodeClientMessage разбирает входящее сообщение клиента.
// Битый JSON -> ошибка; неизвестный type -> ErrUnknownType.
func DecodeClientMessage(data []byte) (ClientMessage, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("malformed message: %w", err)
	}

	switch env.Type {
	case TypeMove:
		var msg MoveMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			return nil, fmt.Errorf("malformed MOVE: %w", err)
		}
		return msg, nil
	case TypeMapTransition:
		var msg MapTransitionMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			return nil, fmt.Errorf("malformed MAP_TRANSITION: %w", err)
		}
		return msg, nil
	default:
		return nil, ErrUnknownType{Type: string(env.Type)}
	}
}

// DecodeServerMessage разбирает входящее сообщение сервера (на клиенте).
func DecodeServerMessage(data []byte) (ServerMessage, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("malformed message: %w", err)
	}

	switch env.Type {
	case TypeInit:
		var msg InitMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			return nil, fmt.Errorf("malformed INIT: %w", err)
		}
		return msg, nil
	case TypePlayerJoin:
		var msg PlayerJoinMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			return nil, fmt.Errorf("malformed PLAYER_JOIN: %w", err)
		}
		return msg, nil
	case TypePlayerMove:
		var msg PlayerMoveMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			return nil, fmt.Errorf("malformed PLAYER_MOVE: %w", err)
		}
		return msg, nil
	case TypePlayerLeave:
		var msg PlayerLeaveMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			return nil, fmt.Errorf("malformed PLAYER_LEAVE: %w", err)
		}
		return msg, nil
	default:
		return nil, ErrUnknownType{Type: string(env.Type)}
	}
}
