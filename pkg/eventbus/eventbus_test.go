package eventbus

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type testEvent struct{ name string }

func (e testEvent) Name() string { return e.name }

func TestPublishCallsListenersInOrder(t *testing.T) {
	bus := New(zap.NewNop())

	var calls []string
	bus.Subscribe("test.event", func(ctx context.Context, e Event) error {
		calls = append(calls, "pierwszy")
		return nil
	})
	bus.Subscribe("test.event", func(ctx context.Context, e Event) error {
		calls = append(calls, "drugi")
		return nil
	})

	bus.Publish(context.Background(), testEvent{name: "test.event"})
	assert.Equal(t, []string{"pierwszy", "drugi"}, calls)
}

func TestPublishSkipsOtherEvents(t *testing.T) {
	bus := New(zap.NewNop())

	called := false
	bus.Subscribe("inne.zdarzenie", func(ctx context.Context, e Event) error {
		called = true
		return nil
	})

	bus.Publish(context.Background(), testEvent{name: "test.event"})
	assert.False(t, called)
}

func TestPublishContinuesAfterListenerError(t *testing.T) {
	bus := New(zap.NewNop())

	var calls []string
	bus.Subscribe("test.event", func(ctx context.Context, e Event) error {
		calls = append(calls, "zawodny")
		return errors.New("awaria słuchacza")
	})
	bus.Subscribe("test.event", func(ctx context.Context, e Event) error {
		calls = append(calls, "kolejny")
		return nil
	})

	bus.Publish(context.Background(), testEvent{name: "test.event"})
	assert.Equal(t, []string{"zawodny", "kolejny"}, calls)
}
