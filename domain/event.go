package domain

// Event is anything a backend pushes upward asynchronously. The session
// owning the originating backend consumes events and applies them to
// its caches; nothing below the session ever mutates a cache.
type Event interface {
	Provider() ProviderID
}

// MessageEvent carries a new or updated message for one channel. This
// is also how a sent message comes back: SendMessage never inserts
// speculatively, the confirmed copy arrives here.
type MessageEvent struct {
	Source    ProviderID
	ChannelID string
	Message   Message
}

func (e MessageEvent) Provider() ProviderID { return e.Source }

// PresenceEvent carries a presence change for one user.
type PresenceEvent struct {
	Source   ProviderID
	UserID   string
	Presence Presence
}

func (e PresenceEvent) Provider() ProviderID { return e.Source }

// ChannelMarkedEvent carries a backend-confirmed read marker. The
// unread count in it overwrites any locally estimated value.
type ChannelMarkedEvent struct {
	Source      ProviderID
	ChannelID   string
	ReadTS      string
	UnreadCount int
}

func (e ChannelMarkedEvent) Provider() ProviderID { return e.Source }
