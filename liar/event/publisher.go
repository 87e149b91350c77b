package event

import (
	"fmt"
	"sync"

	"github.com/ratel-online/core/log"
)

type Listener interface {
	OnEvent(Event) error
}

type ListenerFunc func(Event) error

func (f ListenerFunc) OnEvent(e Event) error {
	return f(e)
}

// Publisher fans events out to its listeners in registration order. A
// listener that fails or panics is logged and skipped.
type Publisher struct {
	sync.RWMutex
	listeners []Listener
}

func NewPublisher() *Publisher {
	return &Publisher{listeners: make([]Listener, 0, 2)}
}

func (p *Publisher) AddListener(listener Listener) {
	p.Lock()
	defer p.Unlock()
	p.listeners = append(p.listeners, listener)
}

func (p *Publisher) Listeners() int {
	p.RLock()
	defer p.RUnlock()
	return len(p.listeners)
}

func (p *Publisher) Publish(e Event) {
	p.RLock()
	listeners := make([]Listener, len(p.listeners))
	copy(listeners, p.listeners)
	p.RUnlock()
	for i, listener := range listeners {
		if err := deliver(listener, e); err != nil {
			log.Errorf("event %s listener %d failed: %v\n", e.Type, i, err)
		}
	}
}

// Emit builds and publishes an event in one call.
func (p *Publisher) Emit(t Type, playerID int64, format string, args ...interface{}) {
	p.Publish(New(t, playerID, format, args...))
}

func deliver(listener Listener, e Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return listener.OnEvent(e)
}
