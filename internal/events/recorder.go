package events

import "sync"

// Event is one recorded publication
type Event struct {
	Topic   Topic
	Payload interface{}
}

// Recorder is a Bus that keeps every published event while still
// dispatching to subscribers. Tests inject it to assert payloads.
type Recorder struct {
	*LocalBus

	mu     sync.Mutex
	events []Event
}

// NewRecorder creates a recording bus
func NewRecorder() *Recorder {
	return &Recorder{LocalBus: NewLocalBus()}
}

// Publish records the event and dispatches it
func (r *Recorder) Publish(topic Topic, payload interface{}) {
	r.mu.Lock()
	r.events = append(r.events, Event{Topic: topic, Payload: payload})
	r.mu.Unlock()

	r.LocalBus.Publish(topic, payload)
}

// Events returns a copy of everything published so far
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// Of returns the payloads published on topic, in order
func (r *Recorder) Of(topic Topic) []interface{} {
	r.mu.Lock()
	defer r.mu.Unlock()

	var payloads []interface{}
	for _, e := range r.events {
		if e.Topic == topic {
			payloads = append(payloads, e.Payload)
		}
	}
	return payloads
}

// Reset forgets recorded events; subscriptions are kept
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.events = nil
	r.mu.Unlock()
}
