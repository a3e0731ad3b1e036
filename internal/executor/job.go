package executor

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// State is where a job is in its lifecycle.
type State string

// Job states.
const (
	StatePending  State = "PENDING"
	StateRunning  State = "RUNNING"
	StateFinished State = "FINISHED"
)

// JobType is the entity type every job reports.
const JobType = "generation_job"

// Job is one submitted function and, once finished, its outcome. Fields
// other than key and done are guarded by the owning pool's lock.
type Job[T any] struct {
	key         string
	fn          Func[T]
	state       State
	submittedAt time.Time
	startedAt   time.Time
	finishedAt  time.Time
	result      T
	err         error
	done        chan struct{}
}

var _ core.Entity = (*Job[struct{}])(nil)

// GetID returns the key the job was submitted under
func (j *Job[T]) GetID() string {
	return j.key
}

// GetType returns the entity type for rpg-toolkit
func (j *Job[T]) GetType() string {
	return JobType
}

type jobContextKey struct{}

// JobFromContext returns the job whose function is running with ctx.
func JobFromContext(ctx context.Context) (core.Entity, bool) {
	job, ok := ctx.Value(jobContextKey{}).(core.Entity)
	return job, ok
}

// Done is closed once the job has finished.
func (j *Job[T]) Done() <-chan struct{} {
	return j.done
}

// Result blocks until the job finishes and returns its outcome.
func (j *Job[T]) Result() (T, error) {
	<-j.done
	return j.result, j.err
}

// Duration is how long the job ran. Zero until it finishes.
func (j *Job[T]) Duration() time.Duration {
	select {
	case <-j.done:
		return j.finishedAt.Sub(j.startedAt)
	default:
		return 0
	}
}
