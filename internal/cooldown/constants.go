package cooldown

import "time"

// DefaultCooldownDuration applies to actions with no configured or built-in duration
const DefaultCooldownDuration = 5 * time.Minute

// Advisory lock keys are sha256(userID + lockKeySeparator + action) truncated to a
// positive int64
const (
	lockKeySeparator = ":"
	lockKeyMask      = 0x7FFFFFFFFFFFFFFF
)

const (
	sqlAdvisoryLock = "SELECT pg_advisory_xact_lock($1)"

	sqlSelectLastUsed = `
		SELECT last_used_at
		FROM user_cooldowns
		WHERE user_id = $1 AND action_name = $2
	`

	sqlDeleteCooldown = `DELETE FROM user_cooldowns WHERE user_id = $1 AND action_name = $2`

	sqlUpsertCooldown = `
		INSERT INTO user_cooldowns (user_id, action_name, last_used_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, action_name) DO UPDATE
		SET last_used_at = EXCLUDED.last_used_at
	`
)

const (
	ErrMsgCheckCooldownFailed = "failed to check cooldown: %w"
	ErrMsgBeginClaimFailed    = "failed to begin cooldown claim: %w"
	ErrMsgAcquireLockFailed   = "failed to lock cooldown: %w"
	ErrMsgRecheckFailed       = "failed to recheck cooldown under lock: %w"
	ErrMsgStampFailed         = "failed to stamp cooldown: %w"
	ErrMsgCommitClaimFailed   = "failed to commit cooldown claim: %w"
	ErrMsgResetCooldownFailed = "failed to reset cooldown: %w"
	ErrMsgGetLastUsedFailed   = "failed to get last used: %w"
)

const (
	// LogMsgLostClaimRace means another request claimed the action between the unlocked check and the lock
	LogMsgLostClaimRace    = "Cooldown claimed by a concurrent request"
	LogMsgCooldownEnforced = "Cooldown enforced"
)

// ErrOnCooldown.Error formats, from the largest unit present in the remaining time
const (
	ErrFmtCooldownHours   = "%s is on cooldown for %dh %dm"
	ErrFmtCooldownMinutes = "%s is on cooldown for %dm %ds"
	ErrFmtCooldownSeconds = "%s is on cooldown for %ds"
)
