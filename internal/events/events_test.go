package events

import (
	"testing"
	"time"
)

const testEventType EventType = "test_event"

func newTestEvent() BaseEvent {
	return BaseEvent{EventType: testEventType, Time: time.Now()}
}

func TestSubscribeAndPublish(t *testing.T) {
	eb := NewEventBus(10)
	defer eb.Close()

	ch := eb.Subscribe(testEventType)
	eb.Publish(newTestEvent())

	select {
	case ev := <-ch:
		if ev.Type() != testEventType {
			t.Errorf("event type = %q, want %q", ev.Type(), testEventType)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for published event")
	}
}

func TestSubscribeAllReceivesEveryType(t *testing.T) {
	eb := NewEventBus(10)
	defer eb.Close()

	ch := eb.SubscribeAll()
	eb.Publish(BaseEvent{EventType: "a", Time: time.Now()})
	eb.Publish(BaseEvent{EventType: "b", Time: time.Now()})

	for _, want := range []EventType{"a", "b"} {
		select {
		case ev := <-ch:
			if ev.Type() != want {
				t.Errorf("event type = %q, want %q", ev.Type(), want)
			}
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for event %q", want)
		}
	}
}

func TestPublishDoesNotBlockWhenBufferFull(t *testing.T) {
	eb := NewEventBus(1)
	defer eb.Close()

	_ = eb.Subscribe(testEventType)

	// Second publish overflows the buffer of 1; it must not block.
	eb.Publish(newTestEvent())
	eb.Publish(newTestEvent())

	if got := eb.GetDroppedEventCount(); got != 1 {
		t.Errorf("dropped count = %d, want 1", got)
	}

	if got := eb.ResetDroppedEventCount(); got != 1 {
		t.Errorf("ResetDroppedEventCount() = %d, want 1", got)
	}
	if got := eb.GetDroppedEventCount(); got != 0 {
		t.Errorf("dropped count after reset = %d, want 0", got)
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	eb := NewEventBus(10)
	defer eb.Close()

	ch := eb.Subscribe(testEventType)
	eb.Unsubscribe(testEventType, ch)

	eb.Publish(newTestEvent())

	select {
	case <-ch:
		t.Error("received event after Unsubscribe")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestCloseClosesSubscriberChannels(t *testing.T) {
	eb := NewEventBus(10)
	ch := eb.Subscribe(testEventType)
	all := eb.SubscribeAll()

	eb.Close()

	if _, ok := <-ch; ok {
		t.Error("typed channel still open after Close")
	}
	if _, ok := <-all; ok {
		t.Error("all-events channel still open after Close")
	}

	// Publishing after Close is a no-op, not a panic.
	eb.Publish(newTestEvent())

	// Subscribing after Close yields a closed channel.
	if _, ok := <-eb.Subscribe(testEventType); ok {
		t.Error("Subscribe after Close should return a closed channel")
	}
}
