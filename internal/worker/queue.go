package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/flarewebs/flarewebs-server/internal/logger"
	"github.com/flarewebs/flarewebs-server/internal/model"
)

// taskTimeout bounds a single deferred task.
const taskTimeout = time.Minute

// Observer is notified when a task finishes.
type Observer interface {
	TaskDone(name string, took time.Duration, err error)
}

type job struct {
	name string
	task model.Task
}

var _ model.Scheduler = (*Queue)(nil)

// Queue runs deferred tasks on a fixed pool of goroutines. Every task is
// attempted at most once; failures are logged and never retried.
type Queue struct {
	jobs     chan job
	workers  int
	logger   *logger.Logger
	observer Observer

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

// NewQueue creates a queue with the given buffer size and worker count.
func NewQueue(size, workers int, l *logger.Logger, observer Observer) *Queue {
	if workers < 1 {
		workers = 1
	}
	if size < 0 {
		size = 0
	}

	return &Queue{
		jobs:     make(chan job, size),
		workers:  workers,
		logger:   l,
		observer: observer,
	}
}

// Start launches the workers.
func (q *Queue) Start() {
	for i := 0; i < q.workers; i++ {
		q.wg.Add(1)
		go q.work(i)
	}
}

func (q *Queue) work(id int) {
	defer q.wg.Done()
	for j := range q.jobs {
		q.run(id, j)
	}
}

func (q *Queue) run(id int, j job) {
	ctx, cancel := context.WithTimeout(context.Background(), taskTimeout)
	defer cancel()

	start := time.Now()
	err := safeCall(ctx, j.task)
	took := time.Since(start)

	if q.observer != nil {
		q.observer.TaskDone(j.name, took, err)
	}
	if err != nil {
		q.logger.Error("Worker: task failed", "worker", id, "task", j.name, "duration_ms", took.Milliseconds(), "error", err.Error())
		return
	}
	q.logger.Debug("Worker: task done", "worker", id, "task", j.name, "duration_ms", took.Milliseconds())
}

func safeCall(ctx context.Context, task model.Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("task panicked: %v", r)
		}
	}()
	return task(ctx)
}

// Submit enqueues a task, waiting for room when the buffer is full.
// Tasks submitted after Shutdown are dropped.
func (q *Queue) Submit(name string, task model.Task) {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		q.logger.Warn("Worker: queue closed, task dropped", "task", name)
		return
	}
	q.jobs <- job{name: name, task: task}
}

// Defer adds the task to the batch carried by ctx, so it runs once the
// response is written. Without a batch the task is submitted right away.
func (q *Queue) Defer(ctx context.Context, name string, task model.Task) {
	if b, ok := batchFromContext(ctx); ok {
		b.add(job{name: name, task: task})
		return
	}
	q.Submit(name, task)
}

// Flush submits every task collected in b.
func (q *Queue) Flush(b *Batch) {
	for _, j := range b.drain() {
		q.Submit(j.name, j.task)
	}
}

// Shutdown stops accepting tasks and waits for queued ones to finish or ctx to expire.
func (q *Queue) Shutdown(ctx context.Context) error {
	q.mu.Lock()
	if !q.closed {
		q.closed = true
		close(q.jobs)
	}
	q.mu.Unlock()

	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("worker queue did not drain: %w", ctx.Err())
	}
}
