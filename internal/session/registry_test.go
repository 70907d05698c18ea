package session

import (
	"testing"

	"overworld/internal/domain"
	"overworld/pkg/api"
)

// fakeSender записывает все отправленное, сеть не нужна.
type fakeSender struct {
	msgs []api.ServerMessage
}

func (f *fakeSender) Send(msg api.ServerMessage) {
	f.msgs = append(f.msgs, msg)
}

func (f *fakeSender) reset() { f.msgs = nil }

// moveTo телепортирует игрока соединения на карту через MOVE с mapId.
func moveTo(r *Registry, conn Sender, mapID, x, y int) {
	r.HandleMessage(conn, api.MoveMessage{
		Type: api.TypeMove, X: x, Y: y, MapID: &mapID,
	})
}

func TestConnect_InitAndJoin(t *testing.T) {
	r := NewRegistry()

	// Сценарий B: первый на карте спавна получает пустой снимок.
	a := &fakeSender{}
	pa := r.Connect(a)

	if len(a.msgs) != 1 {
		t.Fatalf("A got %d messages, want 1 (INIT)", len(a.msgs))
	}
	init, ok := a.msgs[0].(api.InitMessage)
	if !ok {
		t.Fatalf("first message %T, want INIT", a.msgs[0])
	}
	if init.ID != pa.ID {
		t.Errorf("INIT id %q != record id %q", init.ID, pa.ID)
	}
	if len(init.Players) != 0 {
		t.Errorf("first connection INIT has %d players", len(init.Players))
	}
	if pa.MapID != domain.DefaultSpawnMap {
		t.Errorf("spawn map = %d", pa.MapID)
	}
	if pa.SpriteID < 0 || pa.SpriteID >= domain.SpriteCount {
		t.Errorf("sprite id %d out of range", pa.SpriteID)
	}

	// Второй на той же карте: его INIT видит ровно первого,
	// первый получает PLAYER_JOIN второго.
	b := &fakeSender{}
	pb := r.Connect(b)

	initB := b.msgs[0].(api.InitMessage)
	if len(initB.Players) != 1 || initB.Players[0].ID != pa.ID {
		t.Errorf("B INIT players = %+v", initB.Players)
	}

	if len(a.msgs) != 2 {
		t.Fatalf("A got %d messages, want INIT+JOIN", len(a.msgs))
	}
	join, ok := a.msgs[1].(api.PlayerJoinMessage)
	if !ok || join.Player.ID != pb.ID {
		t.Errorf("A second message: %+v", a.msgs[1])
	}
}

func TestMove_MapScopedBroadcast(t *testing.T) {
	r := NewRegistry()
	a, b, c := &fakeSender{}, &fakeSender{}, &fakeSender{}
	pa := r.Connect(a)
	r.Connect(b)
	r.Connect(c)

	// C уходит на карту 5, A и B остаются на 79.
	moveTo(r, c, 5, 3, 3)
	a.reset()
	b.reset()
	c.reset()

	// Сценарий A: MOVE от A на карте 79.
	mapID := 79
	r.HandleMessage(a, api.MoveMessage{
		Type: api.TypeMove, X: 5, Y: 5, Direction: 0, IsMoving: true, MapID: &mapID,
	})

	if len(a.msgs) != 0 {
		t.Errorf("sender got its own move echoed: %+v", a.msgs)
	}
	if len(b.msgs) != 1 {
		t.Fatalf("B got %d messages, want 1", len(b.msgs))
	}
	mv, ok := b.msgs[0].(api.PlayerMoveMessage)
	if !ok || mv.ID != pa.ID || mv.X != 5 || mv.Y != 5 || !mv.IsMoving {
		t.Errorf("B move message: %+v", b.msgs[0])
	}
	if len(c.msgs) != 0 {
		t.Errorf("C on another map got %d messages", len(c.msgs))
	}
}

func TestTransition_Handshake(t *testing.T) {
	r := NewRegistry()
	p := &fakeSender{}    // переходящий
	old1 := &fakeSender{} // остается на 79
	new1 := &fakeSender{} // уже на 5
	pp := r.Connect(p)
	r.Connect(old1)
	pn := r.Connect(new1)
	moveTo(r, new1, 5, 8, 8)

	p.reset()
	old1.reset()
	new1.reset()

	// Сценарий C: P переходит 79 -> 5.
	r.HandleMessage(p, api.MapTransitionMessage{
		Type: api.TypeMapTransition, FromMap: 79, ToMap: 5, X: 1, Y: 12,
	})

	// Шаг 1: старая карта видит уход.
	if len(old1.msgs) != 1 {
		t.Fatalf("old map got %d messages", len(old1.msgs))
	}
	if leave, ok := old1.msgs[0].(api.PlayerLeaveMessage); !ok || leave.ID != pp.ID {
		t.Errorf("old map message: %+v", old1.msgs[0])
	}

	// Шаг 3: новая карта видит приход с уже новой позицией.
	if len(new1.msgs) != 1 {
		t.Fatalf("new map got %d messages", len(new1.msgs))
	}
	join, ok := new1.msgs[0].(api.PlayerJoinMessage)
	if !ok || join.Player.ID != pp.ID {
		t.Fatalf("new map message: %+v", new1.msgs[0])
	}
	if join.Player.MapID != 5 || join.Player.X != 1 || join.Player.Y != 12 {
		t.Errorf("join carries stale record: %+v", join.Player)
	}

	// Шаг 4: backfill переходящему - по одному JOIN на старожила.
	if len(p.msgs) != 1 {
		t.Fatalf("mover got %d messages, want 1 backfill", len(p.msgs))
	}
	back, ok := p.msgs[0].(api.PlayerJoinMessage)
	if !ok || back.Player.ID != pn.ID {
		t.Errorf("backfill: %+v", p.msgs[0])
	}
}

func TestTransition_EmptyDestination(t *testing.T) {
	r := NewRegistry()
	p := &fakeSender{}
	r.Connect(p)
	p.reset()

	r.HandleMessage(p, api.MapTransitionMessage{
		Type: api.TypeMapTransition, FromMap: 79, ToMap: 5, X: 1, Y: 12,
	})

	// Карта 5 пуста: ноль backfill-сообщений.
	if len(p.msgs) != 0 {
		t.Errorf("mover got %d messages on empty map", len(p.msgs))
	}
}

func TestDisconnect_LeaveScopedToLastMap(t *testing.T) {
	r := NewRegistry()
	leaving := &fakeSender{}
	onFive := &fakeSender{}
	onSpawn := &fakeSender{}
	pl := r.Connect(leaving)
	r.Connect(onFive)
	r.Connect(onSpawn)

	moveTo(r, leaving, 5, 2, 2)
	moveTo(r, onFive, 5, 4, 4)
	onFive.reset()
	onSpawn.reset()

	// Сценарий D: дисконнект с карты 5.
	r.Disconnect(leaving)

	if len(onFive.msgs) != 1 {
		t.Fatalf("map-5 peer got %d messages", len(onFive.msgs))
	}
	if leave, ok := onFive.msgs[0].(api.PlayerLeaveMessage); !ok || leave.ID != pl.ID {
		t.Errorf("leave message: %+v", onFive.msgs[0])
	}
	if len(onSpawn.msgs) != 0 {
		t.Errorf("map-79 peer got %d messages", len(onSpawn.msgs))
	}

	// Повторный дисконнект того же соединения - no-op.
	onFive.reset()
	r.Disconnect(leaving)
	if len(onFive.msgs) != 0 {
		t.Error("double disconnect broadcast something")
	}
}
