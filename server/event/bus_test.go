package event_test

import (
	"testing"

	"github.com/basaltmc/basalt/server/event"
	"github.com/stretchr/testify/require"
)

type sampleEvent struct {
	event.CancellableBase
	Value int
}

func TestFireInvokesInRegistrationOrder(t *testing.T) {
	b := event.NewBus()
	var order []int
	event.Subscribe(b, func(e *sampleEvent) { order = append(order, 1); e.Value++ })
	event.Subscribe(b, func(e *sampleEvent) { order = append(order, 2); e.Value++ })

	e := &sampleEvent{Value: 0}
	event.Fire(b, e)

	require.Equal(t, []int{1, 2}, order)
	require.Equal(t, 2, e.Value)
}

func TestCancellable(t *testing.T) {
	b := event.NewBus()
	event.Subscribe(b, func(e *sampleEvent) { e.Cancel() })

	e := &sampleEvent{}
	event.Fire(b, e)
	require.True(t, e.Cancelled())
}

func TestFireWithNoSubscribersIsNoop(t *testing.T) {
	b := event.NewBus()
	require.NotPanics(t, func() { event.Fire(b, &sampleEvent{}) })
}
