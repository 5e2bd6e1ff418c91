package job

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"github.com/Surajsachintha/itams-haci-project/pkg/logger"
)

type Func func(ctx context.Context) error

type job struct {
	name     string
	interval time.Duration
	fn       Func
}

// Runner runs registered jobs on their own ticker until the context passed to Start is done.
type Runner struct {
	jobs []job
	wg   sync.WaitGroup
}

func NewRunner() *Runner {
	return &Runner{}
}

func (r *Runner) RegisterJob(name string, interval time.Duration, fn Func) *Runner {
	return r.TryRegisterJob(true, name, interval, fn)
}

func (r *Runner) TryRegisterJob(isEnabled bool, name string, interval time.Duration, fn Func) *Runner {
	if !isEnabled || interval <= 0 {
		return r
	}

	r.jobs = append(r.jobs, job{
		name:     name,
		interval: interval,
		fn:       fn,
	})

	return r
}

// Jobs returns the names of the registered jobs.
func (r *Runner) Jobs() []string {
	names := make([]string, 0, len(r.jobs))
	for _, j := range r.jobs {
		names = append(names, j.name)
	}

	return names
}

func (r *Runner) Start(ctx context.Context) {
	for _, j := range r.jobs {
		r.wg.Add(1)

		go r.startJob(ctx, j)
	}
}

func (r *Runner) startJob(ctx context.Context, j job) {
	defer r.wg.Done()

	ctx = logger.SetLogType(ctx, "job")
	l := slog.Default().With("job", j.name)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		l.DebugContext(ctx, "job started")

		err := r.withRecover(ctx, j)
		if err != nil {
			l.ErrorContext(ctx, "job failed", "error", err)
		} else {
			l.DebugContext(ctx, "job done")
		}

		select {
		case <-ctx.Done():
			l.DebugContext(ctx, "context done")
			return

		case <-ticker.C:
		}
	}
}

func (r *Runner) withRecover(ctx context.Context, j job) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("job panic: %v\n%s", rec, debug.Stack())
		}
	}()

	return j.fn(ctx)
}

// Stop waits for every job goroutine to return. Cancel the Start context first.
func (r *Runner) Stop() {
	r.wg.Wait()
}
