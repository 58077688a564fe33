package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/MinesocBot_Go/internal/logger"
	"github.com/osse101/MinesocBot_Go/internal/worker"
)

// LogMsgJobSkipped is logged when a tick finds the worker queue full
const LogMsgJobSkipped = "Scheduled job skipped, worker queue full"

type entry struct {
	name      string
	interval  time.Duration
	job       worker.Job
	immediate bool
}

// Scheduler submits registered jobs to a worker pool at fixed intervals
type Scheduler struct {
	workerPool *worker.Pool
	entries    []entry
	quit       chan struct{}
	wg         sync.WaitGroup
	mu         sync.Mutex
	started    bool
	stopOnce   sync.Once
}

// New creates a new scheduler
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		quit:       make(chan struct{}),
	}
}

// Schedule registers a job to run every interval once Start is called.
// A tick that finds the queue full is skipped, so slow jobs never pile up.
func (s *Scheduler) Schedule(name string, interval time.Duration, job worker.Job) {
	s.add(entry{name: name, interval: interval, job: job})
}

// ScheduleImmediate is Schedule plus one run right at Start
func (s *Scheduler) ScheduleImmediate(name string, interval time.Duration, job worker.Job) {
	s.add(entry{name: name, interval: interval, job: job, immediate: true})
}

func (s *Scheduler) add(e entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, e)
	if s.started {
		s.run(e)
	}
}

// Start launches one ticker goroutine per registered job. Jobs scheduled afterwards start immediately.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return
	}
	s.started = true
	for _, e := range s.entries {
		s.run(e)
	}
}

func (s *Scheduler) run(e entry) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(e.interval)
		defer ticker.Stop()

		if e.immediate {
			s.submit(e)
		}
		for {
			select {
			case <-ticker.C:
				s.submit(e)
			case <-s.quit:
				return
			}
		}
	}()
}

func (s *Scheduler) submit(e entry) {
	if !s.workerPool.TryEnqueue(e.job) {
		logger.FromContext(context.Background()).Warn(LogMsgJobSkipped, "job", e.name)
	}
}

// Stop stops all scheduled jobs
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.quit) })
	s.wg.Wait()
}
