// Package events carries committed content mutations from the host runtime to its observers.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/blogem/content-audit/models"
)

// MutationEvent is published once per committed create, update or delete
type MutationEvent struct {
	ContentType string
	RecordID    string
	Action      models.Action
	// State is the record after the mutation, or the last known state for deletes
	State      json.RawMessage
	ActingUser *string
}

// Handler observes a mutation event
type Handler func(ctx context.Context, ev MutationEvent)

// Subscriber registers handlers for mutation events
type Subscriber interface {
	Subscribe(h Handler) (unsubscribe func())
}

// Publisher emits mutation events
type Publisher interface {
	Publish(ctx context.Context, ev MutationEvent)
}

// Bus is a synchronous in-process event bus.
// Handlers run on the publishing goroutine in subscription order.
type Bus struct {
	mu       sync.RWMutex
	nextID   int
	handlers map[int]Handler
	order    []int
	log      logrus.FieldLogger
}

// NewBus creates an empty bus
func NewBus(log logrus.FieldLogger) *Bus {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Bus{handlers: make(map[int]Handler), log: log}
}

// Subscribe adds a handler and returns a function that removes it
func (b *Bus) Subscribe(h Handler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.handlers[id] = h
	b.order = append(b.order, id)

	var once sync.Once
	return func() {
		once.Do(func() { b.remove(id) })
	}
}

func (b *Bus) remove(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.handlers, id)
	for i, v := range b.order {
		if v == id {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
}

// Publish delivers ev to every current handler. A panicking handler is logged and skipped.
func (b *Bus) Publish(ctx context.Context, ev MutationEvent) {
	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.order))
	for _, id := range b.order {
		handlers = append(handlers, b.handlers[id])
	}
	b.mu.RUnlock()

	for _, h := range handlers {
		b.dispatch(ctx, h, ev)
	}
}

func (b *Bus) dispatch(ctx context.Context, h Handler, ev MutationEvent) {
	defer func() {
		if r := recover(); r != nil {
			b.log.WithFields(logrus.Fields{
				"content_type": ev.ContentType,
				"record_id":    ev.RecordID,
				"action":       ev.Action,
				"panic":        fmt.Sprint(r),
			}).Error("event handler panicked")
		}
	}()
	h(ctx, ev)
}

// Len returns the number of subscribed handlers
func (b *Bus) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.order)
}
