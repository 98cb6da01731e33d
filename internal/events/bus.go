package events

import (
	"log"
	"sync"
)

// Handler is called with the payload of a published notification
type Handler func(payload interface{})

// Bus is a fire-and-forget publish/subscribe channel set.
type Bus interface {
	// Subscribe registers h for topic and returns a function that removes it
	Subscribe(topic Topic, h Handler) (unsubscribe func())
	// Publish delivers payload to every handler of topic
	Publish(topic Topic, payload interface{})
}

type subscription struct {
	id      uint64
	handler Handler
}

// LocalBus is an in-process Bus. Handlers run synchronously on the
// publisher's goroutine, in subscription order.
type LocalBus struct {
	mu     sync.RWMutex
	nextID uint64
	subs   map[Topic][]subscription
}

// NewLocalBus creates an empty bus
func NewLocalBus() *LocalBus {
	return &LocalBus{
		subs: make(map[Topic][]subscription),
	}
}

// Subscribe registers a handler for the topic
func (b *LocalBus) Subscribe(topic Topic, h Handler) func() {
	if h == nil {
		log.Printf("Warning: nil handler subscribed to %s", topic)
		return func() {}
	}

	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.subs[topic] = append(b.subs[topic], subscription{id: id, handler: h})
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { b.unsubscribe(topic, id) })
	}
}

func (b *LocalBus) unsubscribe(topic Topic, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.subs[topic]
	for i, s := range subs {
		if s.id == id {
			// copy so a Publish iterating the old slice is unaffected
			next := make([]subscription, 0, len(subs)-1)
			next = append(next, subs[:i]...)
			next = append(next, subs[i+1:]...)
			b.subs[topic] = next
			return
		}
	}
}

// Publish triggers all handlers for the topic
func (b *LocalBus) Publish(topic Topic, payload interface{}) {
	b.mu.RLock()
	subs := b.subs[topic]
	b.mu.RUnlock()

	for _, s := range subs {
		s.handler(payload)
	}
}

// Subscribers returns the number of handlers registered for topic
func (b *LocalBus) Subscribers(topic Topic) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[topic])
}
