package network

import (
	"testing"

	"tabletop-server/pkg/api"
)

func TestBroadcaster_SendTo(t *testing.T) {
	b := NewBroadcaster()
	ch := b.Register("c1")

	b.SendTo("c1", api.ServerEvent{Event: "chat_message"})

	select {
	case ev := <-ch:
		if ev.Event != "chat_message" {
			t.Errorf("event = %q, want chat_message", ev.Event)
		}
	default:
		t.Fatal("expected event in subscriber channel")
	}
}

func TestBroadcaster_SendTo_UnknownID(t *testing.T) {
	b := NewBroadcaster()
	// Не должно паниковать и блокировать
	b.SendTo("ghost", api.ServerEvent{Event: "chat_message"})
}

func TestBroadcaster_SendToMany(t *testing.T) {
	b := NewBroadcaster()
	ch1 := b.Register("c1")
	ch2 := b.Register("c2")
	ch3 := b.Register("c3")

	b.SendToMany([]string{"c1", "c3"}, api.ServerEvent{Event: "update_token"})

	if len(ch1) != 1 || len(ch3) != 1 {
		t.Error("addressed subscribers must receive the event")
	}
	if len(ch2) != 0 {
		t.Error("unaddressed subscriber must not receive the event")
	}
}

func TestBroadcaster_Unregister_ClosesChannel(t *testing.T) {
	b := NewBroadcaster()
	ch := b.Register("c1")
	b.Unregister("c1")

	if _, ok := <-ch; ok {
		t.Error("channel must be closed after Unregister")
	}
	if b.SubscriberCount() != 0 {
		t.Errorf("SubscriberCount() = %d, want 0", b.SubscriberCount())
	}
}

func TestBroadcaster_SlowClientDoesNotBlock(t *testing.T) {
	b := NewBroadcaster()
	ch := b.Register("c1")

	// Переполняем буфер: лишние события отбрасываются, отправка не виснет
	for i := 0; i < cap(ch)+10; i++ {
		b.SendTo("c1", api.ServerEvent{Event: "update_token"})
	}

	if len(ch) != cap(ch) {
		t.Errorf("buffered = %d, want full buffer %d", len(ch), cap(ch))
	}
}
