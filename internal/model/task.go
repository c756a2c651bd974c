package model

import "context"

// Task is deferred work. Its context is not bound to any request.
type Task func(ctx context.Context) error

// Scheduler runs tasks after the current response has been sent.
// Delivery is at most once and failures are not reported back.
type Scheduler interface {
	Defer(ctx context.Context, name string, task Task)
}
