package postgres

// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
const PgErrorCodeUniqueViolation = "23505"

// Operation names used in wrapped error messages ("failed to <op>: ...")
const (
	opBeginTx   = "begin transaction"
	opCommitTx  = "commit transaction"
	opScanRow   = "scan row"
	opIterRows  = "iterate rows"
	opLockUser  = "lock user"
	opApplyXP   = "apply xp award"
	opGrantXP   = "grant xp"
	opSyncLevel = "reconcile level"
	opGetMember = "get member progress"
	opTopN      = "get top members"
	opRank      = "get member rank"
	opCosmetic  = "update cosmetic"

	opGetGuildConfig    = "get guild config"
	opUpdateGuildConfig = "update guild config"
	opToggleCommand     = "toggle command"

	opGetBlacklist    = "get blacklist entry"
	opUpdateBlacklist = "update blacklist"
	opListBlacklist   = "list blacklist"

	opGetWallet   = "get wallet"
	opRecordDaily = "record daily"
	opListItems   = "list items"
	opGetItem     = "get item"
	opPurchase    = "purchase item"
	opInventory   = "read inventory"

	opCreateReminder = "create reminder"
	opListReminders  = "list reminders"
	opDeleteReminder = "delete reminder"
	opClaimReminders = "claim due reminders"

	opCreateTag = "create tag"
	opGetTag    = "get tag"
	opUseTag    = "use tag"
	opUpdateTag = "update tag"
	opDeleteTag = "delete tag"
	opListTags  = "list tags"

	opLogEvent      = "log event"
	opQueryEvents   = "query events"
	opCleanupEvents = "clean up events"
	opEncodeEvent   = "encode event metadata"
	opDecodeEvent   = "decode event metadata"
)
