package state

import (
	"sync"
)

type EventPublisher interface {
	Publish(any)
}

type EventSubscriber interface {
	Subscribe(int) chan any
	Unsubscribe(chan any)
}

var _ EventPublisher = (*EventBus)(nil)
var _ EventSubscriber = (*EventBus)(nil)

type nullEventPublisher struct{}

func (nullEventPublisher) Publish(any) {}

// NullEventPublisher discards all events, for callers that do not care.
var NullEventPublisher = nullEventPublisher{}

// EventBus fans session and store change events out to subscribers. Publish
// never blocks; a subscriber whose channel buffer is full misses the event.
type EventBus struct {
	lock      sync.RWMutex
	listeners map[chan any]struct{}
}

func NewEventBus() *EventBus {
	return &EventBus{
		listeners: map[chan any]struct{}{},
	}
}

// Subscribe registers and returns a listening channel with the requested
// buffer. The caller owns the channel and must Unsubscribe before
// abandoning it.
func (b *EventBus) Subscribe(buffer int) chan any {
	ch := make(chan any, buffer)

	b.lock.Lock()
	defer b.lock.Unlock()

	b.listeners[ch] = struct{}{}

	return ch
}

func (b *EventBus) Unsubscribe(ch chan any) {
	b.lock.Lock()
	defer b.lock.Unlock()

	delete(b.listeners, ch)
}

func (b *EventBus) Publish(e any) {
	b.lock.RLock()
	defer b.lock.RUnlock()

	for ch := range b.listeners {
		select {
		case ch <- e:
		default:
		}
	}
}
