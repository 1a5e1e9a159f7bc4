//go:build unit

package fake

import (
	"context"
	"sync"

	"poolside/internal/usecase/commands"
)

type Emitter struct {
	mu     sync.Mutex
	events []commands.NotificationEvent

	Err error
}

func NewEmitter() *Emitter {
	return &Emitter{}
}

func (e *Emitter) Emit(_ context.Context, event commands.NotificationEvent) error {
	if e.Err != nil {
		return e.Err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.events = append(e.events, event)
	return nil
}

func (e *Emitter) Events() []commands.NotificationEvent {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]commands.NotificationEvent, len(e.events))
	copy(out, e.events)
	return out
}

func (e *Emitter) Kinds() []commands.NotificationKind {
	e.mu.Lock()
	defer e.mu.Unlock()
	kinds := make([]commands.NotificationKind, len(e.events))
	for i, event := range e.events {
		kinds[i] = event.Kind
	}
	return kinds
}

var _ commands.NotificationEmitter = (*Emitter)(nil)
