package event

import "sync"

type DummyListener struct {
	sync.Mutex
	receivedEvents []Event
}

func NewDummyListener() *DummyListener {
	return &DummyListener{receivedEvents: make([]Event, 0)}
}

func (l *DummyListener) OnEvent(e Event) error {
	l.Lock()
	defer l.Unlock()
	l.receivedEvents = append(l.receivedEvents, e)
	return nil
}

func (l *DummyListener) ReceivedEvents() []Event {
	l.Lock()
	defer l.Unlock()
	events := make([]Event, len(l.receivedEvents))
	copy(events, l.receivedEvents)
	return events
}

func (l *DummyListener) ReceivedTypes() []Type {
	events := l.ReceivedEvents()
	types := make([]Type, 0, len(events))
	for _, e := range events {
		types = append(types, e.Type)
	}
	return types
}

func (l *DummyListener) Count(t Type) int {
	count := 0
	for _, e := range l.ReceivedEvents() {
		if e.Type == t {
			count++
		}
	}
	return count
}

func (l *DummyListener) Reset() {
	l.Lock()
	defer l.Unlock()
	l.receivedEvents = l.receivedEvents[:0]
}
