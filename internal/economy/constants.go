package economy

// ==================== Error Messages ====================

const (
	ErrMsgGetWalletFailed   = "failed to get wallet: %w"
	ErrMsgRecordDailyFailed = "failed to record daily: %w"
	ErrMsgListItemsFailed   = "failed to list items: %w"
	ErrMsgGetItemFailed     = "failed to get item: %w"
	ErrMsgPurchaseFailed    = "failed to purchase item: %w"
	ErrMsgOwnedItemsFailed  = "failed to list owned items: %w"
	ErrMsgHasItemFailed     = "failed to check ownership: %w"
	ErrMsgItemNotFoundFmt   = "item not found: %s: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgDailyClaimed  = "Daily reward claimed"
	LogMsgDailyDenied   = "Daily reward on cooldown"
	LogMsgStreakLost    = "Daily streak reset"
	LogMsgItemPurchased = "Item purchased"
	LogMsgBuyRejected   = "Purchase rejected"
)

// ==================== Metric Labels ====================

const (
	storeKindWallet    = "wallet"
	storeKindInventory = "inventory"
)
