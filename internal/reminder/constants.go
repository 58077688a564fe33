package reminder

import "time"

const (
	// MaxMessageLength keeps a delivered reminder inside one chat message
	MaxMessageLength = 1500

	// MinRepeat is the shortest allowed repeat interval
	MinRepeat = time.Minute

	// MaxRepeat is the longest allowed repeat interval; the store keeps whole seconds in an INTEGER column
	MaxRepeat = 365 * 24 * time.Hour

	// DefaultDispatchBatch caps how many due reminders one dispatch run claims
	DefaultDispatchBatch = 50

	storeKindReminder = "reminder"
)

// Log messages
const (
	LogMsgReminderCreated   = "Reminder created"
	LogMsgReminderDeleted   = "Reminder deleted"
	LogMsgDispatchClaimed   = "Claimed due reminders"
	LogMsgDeliveryFailed    = "Reminder delivery failed"
	LogMsgDeliveredViaDM    = "Reminder delivered by direct message"
	LogMsgDispatchClaimFail = "Failed to claim due reminders"
)

// Error messages
const (
	ErrMsgParserInitFailed  = "failed to initialize time parser: %w"
	ErrMsgCreateFailed      = "failed to create reminder: %w"
	ErrMsgListFailed        = "failed to list reminders: %w"
	ErrMsgDeleteFailed      = "failed to delete reminder: %w"
	ErrMsgClaimFailed       = "failed to claim due reminders: %w"
	ErrMsgUnparsableFmt     = "%w: %q"
	ErrMsgEmptyMessage      = "reminder message must not be empty"
	ErrMsgMessageTooLongFmt = "reminder message must be at most %d characters"
	ErrMsgRepeatTooShortFmt = "repeat interval must be at least %s"
	ErrMsgRepeatTooLongFmt  = "repeat interval must be at most %s"
)
