package worker

import "time"

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

const (
	// LogMsgWorkerJobFailed is logged when a worker fails to process a job
	LogMsgWorkerJobFailed = "Worker job failed"

	// LogMsgWorkerJobPanicked is logged when a job panics; the worker keeps running
	LogMsgWorkerJobPanicked = "Worker job panicked"

	// LogMsgQueueFull is logged when TryEnqueue drops a job
	LogMsgQueueFull = "Worker queue full, job dropped"
)

// DefaultJobTimeout bounds a single job run when the pool is created without one
const DefaultJobTimeout = 30 * time.Second

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
