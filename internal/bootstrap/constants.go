package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files (read/write for owner, read for group/others)
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of log files kept, including the new one
	LogFileRetentionCount = 10

	// ServiceName is attached to every log line
	ServiceName = "minesoc"
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingMinesoc     = "Starting Minesoc"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"

	ErrMsgFailedCreateLogsDir = "failed to create logs directory"
	ErrMsgFailedOpenLogFile   = "failed to open log file"
)

// =============================================================================
// Event System Configuration
// =============================================================================

const (
	// EventDefaultMaxRetries is the default number of retry attempts for failed event publishing
	EventDefaultMaxRetries = 5

	// EventDefaultRetryDelay is the default base delay between retry attempts (exponential backoff)
	EventDefaultRetryDelay = 2 * time.Second
)

const (
	LogMsgEventSystemInitialized         = "Event system initialized"
	ErrMsgFailedCreateDeadLetterDir      = "failed to create dead-letter directory"
	ErrMsgFailedCreateResilientPublisher = "failed to create resilient publisher"
)

// =============================================================================
// Background Work
// =============================================================================

const (
	// WorkerCount is the number of goroutines serving scheduled jobs
	WorkerCount = 4

	// WorkerQueueSize bounds the pending job queue
	WorkerQueueSize = 16

	// EventLogCleanupInterval is how often expired audit rows are removed
	EventLogCleanupInterval = 24 * time.Hour

	// ShutdownTimeout bounds the whole graceful shutdown
	ShutdownTimeout = 15 * time.Second

	JobNameReminderDispatch = "reminder_dispatch"
	JobNameEventLogCleanup  = "eventlog_cleanup"
	JobNameStatusRotation   = "status_rotation"
)

// =============================================================================
// Catalog Check Messages
// =============================================================================

const (
	LogMsgCheckingCatalog   = "Checking shop backgrounds against the image catalog"
	LogMsgBackgroundNoImage = "Shop background has no image file and will render as default"
	LogMsgCatalogConsistent = "Every shop background has an image file"
	ErrMsgFailedListShop    = "failed to list shop items"
)

// =============================================================================
// Startup Messages
// =============================================================================

const (
	LogMsgMigrationsApplied      = "Database migrations applied"
	LogMsgEventLoggerInitialized = "Event logger initialized"
	LogMsgAnnouncerInitialized   = "Level-up announcer initialized"
	LogMsgJobsScheduled          = "Background jobs scheduled"
	LogMsgAppStarted             = "Minesoc is running"
	LogMsgServerFailed           = "HTTP server failed"

	ErrMsgFailedConnectDB         = "failed to connect to database"
	ErrMsgFailedMigrate           = "failed to apply migrations"
	ErrMsgFailedLoadCatalog       = "failed to load background catalog"
	ErrMsgFailedCreateRenderer    = "failed to create profile renderer"
	ErrMsgFailedCreateTimeParser  = "failed to create reminder time parser"
	ErrMsgFailedCreateBot         = "failed to create discord bot"
	ErrMsgFailedStartBot          = "failed to start discord bot"
	ErrMsgFailedSubscribeEventLog = "failed to subscribe event logger"
	ErrMsgInvalidOwnerID          = "invalid OWNER_ID"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDown               = "Shutting down..."
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher..."
	LogMsgStopped                    = "Minesoc stopped"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgBotStopFailed              = "Discord bot shutdown failed"
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"
)
