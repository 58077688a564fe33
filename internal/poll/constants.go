package poll

// Error messages
const (
	ErrMsgNoQuestion       = "a poll needs a question"
	ErrMsgOptionCountFmt   = "a poll needs between %d and %d options"
	ErrMsgOptionTooLongFmt = "poll options must be at most %d characters"
)
