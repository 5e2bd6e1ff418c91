package job_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Surajsachintha/itams-haci-project/pkg/job"
)

func TestRunner_RunsUntilCancelled(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32

	r := job.NewRunner().
		RegisterJob("counter", time.Millisecond*10, func(context.Context) error {
			calls.Add(1)
			return nil
		}).
		RegisterJob("failing", time.Millisecond*10, func(context.Context) error {
			return errors.New("boom")
		}).
		RegisterJob("panicking", time.Millisecond*10, func(context.Context) error {
			panic("boom")
		})

	ctx, cancel := context.WithCancel(context.Background())
	r.Start(ctx)

	require.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, time.Millisecond*5)

	cancel()
	r.Stop()

	n := calls.Load()

	time.Sleep(time.Millisecond * 30)
	require.Equal(t, n, calls.Load())
}

func TestRunner_TryRegisterJob(t *testing.T) {
	t.Parallel()

	noop := func(context.Context) error { return nil }

	r := job.NewRunner().
		TryRegisterJob(false, "disabled", time.Second, noop).
		TryRegisterJob(true, "zero-interval", 0, noop).
		TryRegisterJob(true, "enabled", time.Second, noop)

	require.Equal(t, []string{"enabled"}, r.Jobs())
}
