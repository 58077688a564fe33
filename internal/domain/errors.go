package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Member progress errors
	ErrMsgNotFound        = "not found"
	ErrMsgInvalidCosmetic = "invalid cosmetic"
	ErrMsgRaceLoss        = "award window already consumed"

	// Store errors
	ErrMsgStoreUnavailable = "store unavailable"

	// Economy errors
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgAlreadyOwned      = "item already owned"

	// Cooldown errors
	ErrMsgOnCooldown = "action on cooldown"

	// Guild configuration errors
	ErrMsgInvalidPrefix           = "invalid prefix"
	ErrMsgCommandNotToggleable    = "command cannot be toggled"
	ErrMsgUnknownCommand          = "unknown command"
	ErrMsgBlacklisted             = "blacklisted"
	ErrMsgReminderCapReached      = "reminder limit reached"
	ErrMsgReminderTimeUnparseable = "could not parse reminder time"
	ErrMsgReminderInPast          = "reminder time is in the past"

	// Tag errors
	ErrMsgTagExists      = "tag already exists"
	ErrMsgTagNotOwned    = "tag belongs to another member"
	ErrMsgTagNameInvalid = "invalid tag name"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrNotFound means the member has no progress row yet; callers show "no XP yet".
	ErrNotFound = errors.New(ErrMsgNotFound)

	// ErrInvalidCosmetic covers unparsable colors and unknown or unowned backgrounds.
	ErrInvalidCosmetic = errors.New(ErrMsgInvalidCosmetic)

	// ErrStoreUnavailable marks connectivity failures of the persistence store.
	ErrStoreUnavailable = errors.New(ErrMsgStoreUnavailable)

	// ErrRaceLoss is returned by the store when a concurrent award already consumed the cooldown window.
	ErrRaceLoss = errors.New(ErrMsgRaceLoss)

	// Economy errors
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrAlreadyOwned      = errors.New(ErrMsgAlreadyOwned)

	// Cooldown errors
	ErrOnCooldown = errors.New(ErrMsgOnCooldown)

	// Guild configuration errors
	ErrInvalidPrefix        = errors.New(ErrMsgInvalidPrefix)
	ErrCommandNotToggleable = errors.New(ErrMsgCommandNotToggleable)
	ErrUnknownCommand       = errors.New(ErrMsgUnknownCommand)
	ErrBlacklisted          = errors.New(ErrMsgBlacklisted)

	// Reminder errors
	ErrReminderCap            = errors.New(ErrMsgReminderCapReached)
	ErrReminderTimeUnparsable = errors.New(ErrMsgReminderTimeUnparseable)
	ErrReminderInPast         = errors.New(ErrMsgReminderInPast)

	// Tag errors
	ErrTagExists      = errors.New(ErrMsgTagExists)
	ErrTagNotOwned    = errors.New(ErrMsgTagNotOwned)
	ErrTagNameInvalid = errors.New(ErrMsgTagNameInvalid)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
