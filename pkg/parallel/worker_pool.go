// Package parallel runs independent community detections concurrently.
package parallel

import (
	"fmt"
	"sync"

	"github.com/dd0wney/cluso-communities/pkg/logging"
)

// WorkerPool manages a pool of worker goroutines
type WorkerPool struct {
	workers   int
	taskQueue chan func()
	wg        sync.WaitGroup
	once      sync.Once
	mu        sync.RWMutex // Protects taskQueue from concurrent close during send
	closed    bool         // Protected by mu
	logger    logging.Logger

	panicMu sync.Mutex
	panics  []error
}

// NewWorkerPool starts a pool with the given number of workers. A
// non-positive count runs a single worker; a nil logger discards output.
func NewWorkerPool(workers int, logger logging.Logger) *WorkerPool {
	if workers <= 0 {
		workers = 1
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	pool := &WorkerPool{
		workers:   workers,
		taskQueue: make(chan func(), workers*2),
		logger:    logger,
	}

	for i := 0; i < pool.workers; i++ {
		pool.wg.Add(1)
		go pool.worker()
	}
	return pool
}

func (wp *WorkerPool) worker() {
	defer wp.wg.Done()

	for task := range wp.taskQueue {
		wp.run(task)
	}
}

// run executes one task, turning a panic into a recorded error so the
// worker survives.
func (wp *WorkerPool) run(task func()) {
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("task panicked: %v", r)
			wp.logger.Error("worker task panicked", logging.Error(err))

			wp.panicMu.Lock()
			wp.panics = append(wp.panics, err)
			wp.panicMu.Unlock()
		}
	}()
	task()
}

// Submit adds a task to the pool.
// Returns false if the pool is closed, true if task was submitted
func (wp *WorkerPool) Submit(task func()) bool {
	wp.mu.RLock()
	defer wp.mu.RUnlock()

	if wp.closed {
		return false
	}

	wp.taskQueue <- task
	return true
}

// Close stops accepting tasks and waits for queued ones to finish.
func (wp *WorkerPool) Close() {
	wp.once.Do(func() {
		wp.mu.Lock()
		wp.closed = true
		close(wp.taskQueue)
		wp.mu.Unlock()
	})
	wp.wg.Wait()
}

// Panics returns the errors recovered from panicking tasks so far.
func (wp *WorkerPool) Panics() []error {
	wp.panicMu.Lock()
	defer wp.panicMu.Unlock()

	out := make([]error, len(wp.panics))
	copy(out, wp.panics)
	return out
}
