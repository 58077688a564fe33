package tags

// ReservedNames are the /tag subcommands, which a tag may not shadow
var ReservedNames = []string{"show", "raw", "create", "edit", "rename", "delete", "list", "all", "leaderboard", "lb"}

// Listing limits
const (
	// MaxListed caps how many names one listing returns
	MaxListed = 100
)

// Log messages
const (
	LogMsgTagCreated = "Tag created"
	LogMsgTagEdited  = "Tag edited"
	LogMsgTagRenamed = "Tag renamed"
	LogMsgTagDeleted = "Tag deleted"
)

// Error messages
const (
	ErrMsgCreateFailed      = "failed to create tag: %w"
	ErrMsgReadFailed        = "failed to read tag: %w"
	ErrMsgUpdateFailed      = "failed to update tag: %w"
	ErrMsgDeleteFailed      = "failed to delete tag: %w"
	ErrMsgListFailed        = "failed to list tags: %w"
	ErrMsgNameEmpty         = "tag name must not be empty"
	ErrMsgNameTooLongFmt    = "tag name must be at most %d characters"
	ErrMsgNameWhitespace    = "tag name must not contain spaces"
	ErrMsgNameReservedFmt   = "%q is a reserved word"
	ErrMsgContentEmpty      = "tag content must not be empty"
	ErrMsgContentTooLongFmt = "tag content must be at most %d characters"
)
