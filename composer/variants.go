package composer

// Extra payload keys stamped by the composed variants.
const (
	ExtraChannel   = "channel"
	ExtraThread    = "thread"
	ExtraMessageID = "message_id"
)

// NewChannelComposer creates a composer for posting a new message to a
// channel. Every submit payload carries the channel identifier.
func NewChannelComposer(channelID string, opts ...Option) (*Composer, error) {
	cfg := DefaultConfig()
	return New(&cfg, append([]Option{WithExtra(ExtraChannel, channelID)}, opts...)...)
}

// NewThreadComposer creates a composer for replying inside a thread. Every
// submit payload carries both the channel and thread identifiers.
func NewThreadComposer(channelID, threadID string, opts ...Option) (*Composer, error) {
	cfg := DefaultConfig()
	return New(&cfg, append([]Option{
		WithExtra(ExtraChannel, channelID),
		WithExtra(ExtraThread, threadID),
	}, opts...)...)
}

// NewEditComposer creates a composer for editing an existing message. The
// draft is seeded with the message's current content and every submit
// payload carries the message identifier.
func NewEditComposer(messageID, originalContent string, opts ...Option) (*Composer, error) {
	cfg := DefaultConfig()
	cfg.Session.InitialContent = originalContent
	return New(&cfg, append([]Option{WithExtra(ExtraMessageID, messageID)}, opts...)...)
}
