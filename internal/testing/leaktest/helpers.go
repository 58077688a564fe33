// Package leaktest checks that the worker pool and the scheduler leave no
// goroutines behind once they are stopped.
package leaktest

import (
	"runtime"
	"strings"
	"testing"
	"time"
)

// SettleTimeout bounds how long Check waits for stopped goroutines to exit
const SettleTimeout = time.Second

const pollInterval = 5 * time.Millisecond

// watchedFrames match the long-lived goroutines started by worker.Pool and scheduler.Scheduler
var watchedFrames = []string{
	"/internal/worker.(*Pool).worker",
	"/internal/scheduler.(*Scheduler).run",
}

// Stopper is satisfied by worker.Pool and scheduler.Scheduler
type Stopper interface {
	Stop()
}

// GoroutineChecker compares the goroutine count against the count when the test began
type GoroutineChecker struct {
	t       testing.TB
	before  int
	timeout time.Duration
}

// NewGoroutineChecker records the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	return &GoroutineChecker{t: t, before: runtime.NumGoroutine(), timeout: SettleTimeout}
}

// Check waits for the goroutine count to fall back to within tolerance of the
// starting count. On timeout it fails the test and lists any pool workers or
// scheduler tickers still running.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	deadline := time.Now().Add(g.timeout)
	for {
		after := runtime.NumGoroutine()
		if after-g.before <= tolerance {
			return
		}
		if time.Now().After(deadline) {
			g.t.Errorf("goroutine leak: before=%d, after=%d (tolerance=%d)\n%s",
				g.before, after, tolerance, strings.Join(Lingering(), "\n\n"))
			return
		}
		time.Sleep(pollInterval)
	}
}

// StopAndCheck stops components in the order given, so a scheduler goes before
// the pool it feeds, then runs Check
func (g *GoroutineChecker) StopAndCheck(tolerance int, components ...Stopper) {
	g.t.Helper()
	for _, c := range components {
		c.Stop()
	}
	g.Check(tolerance)
}

// Lingering returns the stacks of running pool workers and scheduler tickers
func Lingering() []string {
	buf := make([]byte, 1<<20)
	for {
		n := runtime.Stack(buf, true)
		if n < len(buf) {
			buf = buf[:n]
			break
		}
		buf = make([]byte, 2*len(buf))
	}

	var stacks []string
	for _, stack := range strings.Split(string(buf), "\n\n") {
		for _, frame := range watchedFrames {
			if strings.Contains(stack, frame) {
				stacks = append(stacks, stack)
				break
			}
		}
	}
	return stacks
}
