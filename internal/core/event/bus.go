package event

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

type Handler func(ctx context.Context, event Event) error

type Bus interface {
	Publish(ctx context.Context, event Event)
	Subscribe(eventType EventType, handler Handler) (unsubscribe func())
}

// NewBus creates an in-process event bus. Handlers run synchronously on
// the publishing goroutine, in subscription order.
func NewBus() Bus {
	return &syncBus{
		handlers: make(map[EventType][]subscription),
	}
}

type subscription struct {
	id      uint64
	handler Handler
}

type syncBus struct {
	mu       sync.RWMutex
	handlers map[EventType][]subscription
	seq      uint64
}

func (b *syncBus) Publish(ctx context.Context, ev Event) {
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now()
	}

	b.mu.RLock()
	subs := append([]subscription(nil), b.handlers[ev.Type]...)
	b.mu.RUnlock()

	for _, s := range subs {
		if err := s.handler(ctx, ev); err != nil {
			log.Warn().Err(err).
				Str("event", string(ev.Type)).
				Uint64("subscriber", s.id).
				Msg("event handler failed")
		}
	}
}

func (b *syncBus) Subscribe(eventType EventType, handler Handler) func() {
	b.mu.Lock()
	b.seq++
	id := b.seq
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			subs := b.handlers[eventType]
			for i, s := range subs {
				if s.id == id {
					b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
					return
				}
			}
		})
	}
}
