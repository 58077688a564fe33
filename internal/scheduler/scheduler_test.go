package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/MinesocBot_Go/internal/testing/leaktest"
	"github.com/osse101/MinesocBot_Go/internal/worker"
)

// MockJob is a simple job for testing
type MockJob struct {
	RunCount atomic.Int32
	Done     chan struct{}
}

func (m *MockJob) Process(ctx context.Context) error {
	m.RunCount.Add(1)
	// Signal that job ran
	select {
	case m.Done <- struct{}{}:
	default:
	}
	return nil
}

func TestScheduler(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)
	defer checker.Check(0)

	// Create worker pool
	pool := worker.NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	// Create scheduler
	sched := New(pool)
	defer sched.Stop()

	job := &MockJob{Done: make(chan struct{}, 10)}

	// Schedule job every 10ms
	sched.Schedule("mock", 10*time.Millisecond, job)
	sched.Start()

	// Wait for at least 2 runs
	timeout := time.After(200 * time.Millisecond)
	runCount := 0

	for runCount < 2 {
		select {
		case <-job.Done:
			runCount++
		case <-timeout:
			t.Fatal("Timeout waiting for job execution")
		}
	}

	assert.GreaterOrEqual(t, runCount, 2)
}

func TestScheduler_NothingRunsBeforeStart(t *testing.T) {
	pool := worker.NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	sched := New(pool)
	defer sched.Stop()

	job := &MockJob{Done: make(chan struct{}, 10)}
	sched.Schedule("mock", 5*time.Millisecond, job)

	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, int32(0), job.RunCount.Load())
}

func TestScheduler_ImmediateRun(t *testing.T) {
	pool := worker.NewPool(1, 10)
	pool.Start()
	defer pool.Stop()

	sched := New(pool)
	defer sched.Stop()

	job := &MockJob{Done: make(chan struct{}, 10)}
	sched.ScheduleImmediate("mock", time.Hour, job)
	sched.Start()

	select {
	case <-job.Done:
	case <-time.After(time.Second):
		t.Fatal("immediate job did not run")
	}
}

func TestScheduler_StopIsIdempotent(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)

	pool := worker.NewPool(1, 1)
	pool.Start()

	sched := New(pool)
	sched.Schedule("mock", time.Millisecond, &MockJob{Done: make(chan struct{})})
	sched.Start()
	sched.Start()

	sched.Stop()
	checker.StopAndCheck(0, sched, pool, pool)
}
