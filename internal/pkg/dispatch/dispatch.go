package dispatch

import (
	"context"
	"log/slog"
	"time"
)

// Dispatcher submits side-effect work (reconciliation, notifications) that the
// caller's response path must not wait on or fail from.
type Dispatcher interface {
	Dispatch(name string, fn func(ctx context.Context) error)
}

type GoDispatcher struct {
	timeout time.Duration
}

func NewGoDispatcher() Dispatcher {
	return &GoDispatcher{timeout: 30 * time.Second}
}

func (d *GoDispatcher) Dispatch(name string, fn func(ctx context.Context) error) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				slog.Error("panic in dispatched task", "task", name, "panic", r)
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()

		if err := fn(ctx); err != nil {
			slog.Error("dispatched task failed", "task", name, "error", err.Error())
		}
	}()
}

// SyncDispatcher runs tasks inline; used by tests and by call sites that need
// the side effect applied before returning (webhook handling).
type SyncDispatcher struct{}

func NewSyncDispatcher() Dispatcher {
	return &SyncDispatcher{}
}

func (d *SyncDispatcher) Dispatch(name string, fn func(ctx context.Context) error) {
	if err := fn(context.Background()); err != nil {
		slog.Error("dispatched task failed", "task", name, "error", err.Error())
	}
}
