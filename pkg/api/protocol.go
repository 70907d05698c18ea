package api

// Wire-протокол: JSON-сообщения поверх websocket.
// Формат зафиксирован существующими клиентами, поля менять нельзя.

// MessageType - дискриминатор сообщения (поле "type").
type MessageType string

const (
	// Клиент -> Сервер
	TypeMove          MessageType = "MOVE"
	TypeMapTransition MessageType = "MAP_TRANSITION"

	// Сервер -> Клиент
	TypeInit        MessageType = "INIT"
	TypePlayerJoin  MessageType = "PLAYER_JOIN"
	TypePlayerMove  MessageType = "PLAYER_MOVE"
	TypePlayerLeave MessageType = "PLAYER_LEAVE"
)

// PlayerRecord - DTO игрока, как его видит протокол.
// direction: 0=down, 1=left, 2=right, 3=up.
type PlayerRecord struct {
	ID        string `json:"id"`
	X         int    `json:"x"`
	Y         int    `json:"y"`
	Direction int    `json:"direction"`
	IsMoving  bool   `json:"isMoving"`
	SpriteID  int    `json:"spriteId"`
	MapID     int    `json:"mapId"`
}

// --- КЛИЕНТ -> СЕРВЕР ---

// MoveMessage - клиент сообщает о начале/завершении шага.
// Несет ИСХОДНЫЙ тайл шага, не целевой.
// MapID опционален: старые клиенты его не шлют.
type MoveMessage struct {
	Type      MessageType `json:"type"`
	X         int         `json:"x"`
	Y         int         `json:"y"`
	Direction int         `json:"direction"`
	IsMoving  bool        `json:"isMoving"`
	MapID     *int        `json:"mapId,omitempty"`
}

// MapTransitionMessage - клиент пересек границу карты.
// X,Y - точка спавна на карте назначения.
type MapTransitionMessage struct {
	Type    MessageType `json:"type"`
	FromMap int         `json:"fromMap"`
	ToMap   int         `json:"toMap"`
	X       int         `json:"x"`
	Y       int         `json:"y"`
}

// --- СЕРВЕР -> КЛИЕНТ ---

// InitMessage отправляется один раз сразу после подключения.
// Players - снимок всех, кто уже на карте спавна (без самого подключившегося).
type InitMessage struct {
	Type    MessageType    `json:"type"`
	ID      string         `json:"id"`
	Players []PlayerRecord `json:"players"`
}

// PlayerJoinMessage - на карте появился игрок (подключение, переход,
// либо backfill после перехода самого получателя).
type PlayerJoinMessage struct {
	Type   MessageType  `json:"type"`
	Player PlayerRecord `json:"player"`
}

// PlayerMoveMessage - ретрансляция чужого шага в пределах карты.
type PlayerMoveMessage struct {
	Type      MessageType `json:"type"`
	ID        string      `json:"id"`
	X         int         `json:"x"`
	Y         int         `json:"y"`
	Direction int         `json:"direction"`
	IsMoving  bool        `json:"isMoving"`
	MapID     *int        `json:"mapId,omitempty"`
}

// PlayerLeaveMessage - игрок покинул карту (переход или дисконнект).
type PlayerLeaveMessage struct {
	Type MessageType `json:"type"`
	ID   string      `json:"id"`
}
