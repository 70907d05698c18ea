package api

import (
	"errors"
	"testing"
)

func TestDecodeClientMessage_Move(t *testing.T) {
	data := []byte(`{"type":"MOVE","x":5,"y":7,"direction":2,"isMoving":true,"mapId":79}`)
	msg, err := DecodeClientMessage(data)
	if err != nil {
		t.Fatal(err)
	}
	mv, ok := msg.(MoveMessage)
	if !ok {
		t.Fatalf("decoded %T", msg)
	}
	if mv.X != 5 || mv.Y != 7 || mv.Direction != 2 || !mv.IsMoving {
		t.Errorf("fields: %+v", mv)
	}
	if mv.MapID == nil || *mv.MapID != 79 {
		t.Errorf("mapId: %v", mv.MapID)
	}
}

func TestDecodeClientMessage_OptionalMapID(t *testing.T) {
	// Старый клиент без mapId.
	data := []byte(`{"type":"MOVE","x":1,"y":1,"direction":0,"isMoving":false}`)
	msg, err := DecodeClientMessage(data)
	if err != nil {
		t.Fatal(err)
	}
	if mv := msg.(MoveMessage); mv.MapID != nil {
		t.Errorf("mapId must stay nil, got %v", *mv.MapID)
	}
}

func TestDecodeClientMessage_Transition(t *testing.T) {
	data := []byte(`{"type":"MAP_TRANSITION","fromMap":79,"toMap":5,"x":1,"y":12}`)
	msg, err := DecodeClientMessage(data)
	if err != nil {
		t.Fatal(err)
	}
	tr, ok := msg.(MapTransitionMessage)
	if !ok || tr.FromMap != 79 || tr.ToMap != 5 {
		t.Errorf("decoded: %+v", msg)
	}
}

func TestDecodeClientMessage_UnknownType(t *testing.T) {
	_, err := DecodeClientMessage([]byte(`{"type":"CHAT","text":"hi"}`))
	var unknown ErrUnknownType
	if !errors.As(err, &unknown) {
		t.Fatalf("want ErrUnknownType, got %v", err)
	}
	if unknown.Type != "CHAT" {
		t.Errorf("type = %q", unknown.Type)
	}
}

func TestDecodeClientMessage_Malformed(t *testing.T) {
	if _, err := DecodeClientMessage([]byte(`{"type":`)); err == nil {
		t.Error("malformed JSON decoded")
	}
	var unknown ErrUnknownType
	if _, err := DecodeClientMessage([]byte(`{"type":`)); errors.As(err, &unknown) {
		t.Error("malformed JSON reported as unknown type")
	}
}

func TestDecodeServerMessage(t *testing.T) {
	data := []byte(`{"type":"INIT","id":"abc","players":[{"id":"p1","x":1,"y":2,"direction":3,"isMoving":false,"spriteId":4,"mapId":79}]}`)
	msg, err := DecodeServerMessage(data)
	if err != nil {
		t.Fatal(err)
	}
	init, ok := msg.(InitMessage)
	if !ok || init.ID != "abc" || len(init.Players) != 1 {
		t.Fatalf("decoded: %+v", msg)
	}
	if p := init.Players[0]; p.SpriteID != 4 || p.MapID != 79 {
		t.Errorf("player record: %+v", p)
	}

	if _, err := DecodeServerMessage([]byte(`{"type":"NOPE"}`)); err == nil {
		t.Error("unknown server type decoded")
	}
}

func TestValidate(t *testing.T) {
	if err := (MoveMessage{Direction: 5}).Validate(); err == nil {
		t.Error("direction 5 passed validation")
	}
	if err := (MoveMessage{Direction: 2}).Validate(); err != nil {
		t.Error(err)
	}
	if err := (MapTransitionMessage{FromMap: 5, ToMap: 5}).Validate(); err == nil {
		t.Error("self-transition passed validation")
	}
}
