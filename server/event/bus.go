// Package event implements the type-keyed event bus of §4.9: subscribers
// are indexed by event type, fire invokes each in registration order,
// and some events carry a cancellable flag.
package event

import (
	"reflect"
	"sync"
)

// Cancellable is implemented by events whose downstream logic must
// check a cancelled flag after firing.
type Cancellable interface {
	Cancelled() bool
	Cancel()
}

// CancellableBase is embedded by event types that support cancellation.
type CancellableBase struct {
	cancelled bool
}

// Cancelled reports whether a subscriber has cancelled this event.
func (c *CancellableBase) Cancelled() bool { return c.cancelled }

// Cancel marks the event cancelled.
func (c *CancellableBase) Cancel() { c.cancelled = true }

// Bus indexes subscriber handlers by the concrete type of the event
// they accept, exactly like the original's TypeId-keyed handler map.
type Bus struct {
	mu          sync.RWMutex
	subscribers map[reflect.Type][]func(any)
}

// NewBus returns an empty bus.
func NewBus() *Bus {
	return &Bus{subscribers: make(map[reflect.Type][]func(any))}
}

// Subscribe registers handler for events of type T, appending to the
// type's subscriber list.
func Subscribe[T any](b *Bus, handler func(*T)) {
	t := reflect.TypeOf((*T)(nil))
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers[t] = append(b.subscribers[t], func(e any) {
		handler(e.(*T))
	})
}

// Fire invokes every subscriber registered for *T, in registration
// order, passing the same pointer so handlers may mutate e.
func Fire[T any](b *Bus, e *T) {
	t := reflect.TypeOf(e)
	b.mu.RLock()
	handlers := b.subscribers[t]
	b.mu.RUnlock()
	for _, h := range handlers {
		h(e)
	}
}
