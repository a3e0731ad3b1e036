// Package executor runs keyed jobs on a bounded pool of workers. Jobs wait
// in a FIFO queue, each gets a wall-clock limit, and finished jobs stay
// available under their key until popped.
package executor

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/zyedidia/generic/queue"

	"github.com/junglerando/rando-api/internal/errors"
	"github.com/junglerando/rando-api/internal/pkg/clock"
)

const (
	// DefaultMaxWorkers matches the number of generations a small host can run at once.
	DefaultMaxWorkers = 2

	// DefaultTimeout bounds a single job.
	DefaultTimeout = 300 * time.Second
)

// Func is the work a job performs. It should return promptly once ctx is done.
type Func[T any] func(ctx context.Context) (T, error)

// Config holds the pool settings
type Config struct {
	MaxWorkers int
	Timeout    time.Duration
	Clock      clock.Clock
}

// Validate ensures the settings are usable
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.MaxWorkers <= 0 {
		vb.Field("MaxWorkers", "must be positive")
	}
	if c.Timeout <= 0 {
		vb.Field("Timeout", "must be positive")
	}

	return vb.Build()
}

// Stats counts jobs by state.
type Stats struct {
	Pending  int `json:"pending"`
	Running  int `json:"running"`
	Finished int `json:"finished"`
}

// Pool is a bounded worker pool keyed by job key. A job that outlives its
// timeout is abandoned rather than stopped, so while it keeps running the pool
// can have more than MaxWorkers functions in flight.
type Pool[T any] struct {
	mu      sync.Mutex
	cond    *sync.Cond
	jobs    map[string]*Job[T]
	order   []string
	pending *queue.Queue[*Job[T]]
	closed  bool

	timeout time.Duration
	clock   clock.Clock

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New starts a pool with cfg.MaxWorkers workers.
func New[T any](cfg *Config) (*Pool[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	ctx, cancel := context.WithCancel(context.Background())
	p := &Pool[T]{
		jobs:    make(map[string]*Job[T]),
		pending: queue.New[*Job[T]](),
		timeout: cfg.Timeout,
		clock:   c,
		ctx:     ctx,
		cancel:  cancel,
	}
	p.cond = sync.NewCond(&p.mu)

	for i := 0; i < cfg.MaxWorkers; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
	return p, nil
}

// SubmitStored queues fn under key. A key can only be used again once its job has
// been popped.
func (p *Pool[T]) SubmitStored(key string, fn Func[T]) (*Job[T], error) {
	if key == "" {
		return nil, errors.InvalidArgument("job key is required")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil, errors.Unavailable("executor is shutting down")
	}
	if _, exists := p.jobs[key]; exists {
		return nil, errors.AlreadyExistsf("job %s already submitted", key)
	}

	job := &Job[T]{
		key:         key,
		fn:          fn,
		state:       StatePending,
		submittedAt: p.clock.Now(),
		done:        make(chan struct{}),
	}
	p.jobs[key] = job
	p.order = append(p.order, key)
	p.pending.Enqueue(job)
	p.cond.Signal()

	return job, nil
}

// State returns the job's state; false when no job has the key.
func (p *Pool[T]) State(key string) (State, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	job, ok := p.jobs[key]
	if !ok {
		return "", false
	}
	return job.state, true
}

// Done reports whether the job exists and has finished.
func (p *Pool[T]) Done(key string) bool {
	state, ok := p.State(key)
	return ok && state == StateFinished
}

// Position is the job's index among unfinished jobs in submission order,
// -1 when the job is unknown or finished.
func (p *Pool[T]) Position(key string) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	index := 0
	for _, k := range p.order {
		job := p.jobs[k]
		if job.state == StateFinished {
			continue
		}
		if k == key {
			return index
		}
		index++
	}
	return -1
}

// Pop removes a finished job and returns it.
func (p *Pool[T]) Pop(key string) (*Job[T], error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	job, ok := p.jobs[key]
	if !ok {
		return nil, errors.NotFoundf("no job for key %s", key)
	}
	if job.state != StateFinished {
		return nil, errors.FailedPreconditionf("job %s is %s", key, job.state)
	}

	delete(p.jobs, key)
	for i, k := range p.order {
		if k == key {
			p.order = append(p.order[:i], p.order[i+1:]...)
			break
		}
	}
	return job, nil
}

// Stats counts the jobs the pool is holding
func (p *Pool[T]) Stats() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()

	var s Stats
	for _, job := range p.jobs {
		switch job.state {
		case StatePending:
			s.Pending++
		case StateRunning:
			s.Running++
		case StateFinished:
			s.Finished++
		}
	}
	return s
}

// Shutdown stops accepting jobs and waits for queued and running jobs to
// finish. When ctx ends first, running jobs are canceled and ctx's error is
// returned.
func (p *Pool[T]) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	p.closed = true
	p.cond.Broadcast()
	p.mu.Unlock()

	drained := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(drained)
	}()

	select {
	case <-drained:
		p.cancel()
		return nil
	case <-ctx.Done():
		p.cancel()
		<-drained
		return errors.FromContext(ctx)
	}
}

func (p *Pool[T]) worker(id int) {
	defer p.wg.Done()

	for {
		p.mu.Lock()
		for p.pending.Empty() && !p.closed {
			p.cond.Wait()
		}
		if p.pending.Empty() {
			p.mu.Unlock()
			return
		}
		job := p.pending.Dequeue()
		job.state = StateRunning
		job.startedAt = p.clock.Now()
		p.mu.Unlock()

		slog.Debug("job started", "worker", id, "type", job.GetType(), "key", job.GetID())
		result, err := p.run(job)

		p.mu.Lock()
		job.result = result
		job.err = err
		job.state = StateFinished
		job.finishedAt = p.clock.Now()
		job.fn = nil
		close(job.done)
		p.mu.Unlock()

		if err != nil {
			slog.Warn("job failed", "worker", id, "type", job.GetType(), "key", job.GetID(), "error", err)
		} else {
			slog.Info("job finished", "worker", id, "type", job.GetType(), "key", job.GetID(), "duration", job.finishedAt.Sub(job.startedAt))
		}
	}
}

type outcome[T any] struct {
	result T
	err    error
}

// run enforces the wall-clock limit. A function that ignores its context is
// abandoned when the limit passes and its late result is dropped.
func (p *Pool[T]) run(job *Job[T]) (T, error) {
	ctx, cancel := context.WithTimeout(context.WithValue(p.ctx, jobContextKey{}, core.Entity(job)), p.timeout)
	defer cancel()

	fn := job.fn
	finished := make(chan outcome[T], 1)
	go func() {
		var o outcome[T]
		defer func() {
			if r := recover(); r != nil {
				o.err = errors.Internalf("job panicked: %v", r)
			}
			finished <- o
		}()
		o.result, o.err = fn(ctx)
	}()

	var zero T
	select {
	case o := <-finished:
		if o.err != nil && ctx.Err() != nil {
			return zero, timeoutOr(ctx, o.err, p.timeout)
		}
		return o.result, o.err
	case <-ctx.Done():
		return zero, timeoutOr(ctx, ctx.Err(), p.timeout)
	}
}

func timeoutOr(ctx context.Context, err error, limit time.Duration) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return errors.Timeout(fmt.Sprintf("Timed out after %s", limit))
	}
	if errors.Is(ctx.Err(), context.Canceled) {
		return errors.Canceled("executor shut down")
	}
	return err
}
