package eventbus

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testEvent struct {
	payload string
}

func (e testEvent) Name() string { return "test.event" }

func TestBus_PublishDeliversToSubscriber(t *testing.T) {
	bus := New(zap.NewNop())
	received := make(chan Event, 1)

	bus.Subscribe("test.event", func(ctx context.Context, event Event) error {
		received <- event
		return nil
	})

	bus.Publish(context.Background(), testEvent{payload: "hello"})

	select {
	case event := <-received:
		te, ok := event.(testEvent)
		require.True(t, ok)
		assert.Equal(t, "hello", te.payload)
	case <-time.After(2 * time.Second):
		t.Fatal("событие не дошло до слушателя")
	}
}

func TestBus_NoSubscribersIsNoop(t *testing.T) {
	bus := New(zap.NewNop())
	// Публикация без подписчиков не должна паниковать или блокировать.
	bus.Publish(context.Background(), testEvent{})
}

func TestBus_MultipleSubscribers(t *testing.T) {
	bus := New(zap.NewNop())
	first := make(chan struct{}, 1)
	second := make(chan struct{}, 1)

	bus.Subscribe("test.event", func(ctx context.Context, event Event) error {
		first <- struct{}{}
		return nil
	})
	bus.Subscribe("test.event", func(ctx context.Context, event Event) error {
		second <- struct{}{}
		return nil
	})

	bus.Publish(context.Background(), testEvent{})

	for _, ch := range []chan struct{}{first, second} {
		select {
		case <-ch:
		case <-time.After(2 * time.Second):
			t.Fatal("не все слушатели получили событие")
		}
	}
}
