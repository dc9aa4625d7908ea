package domain

// Presence is a user's live availability state.
type Presence string

const (
	PresenceActive  Presence = "active"
	PresenceAway    Presence = "away"
	PresenceDnd     Presence = "dnd"
	PresenceOffline Presence = "offline"
	PresenceUnknown Presence = "unknown"
)

// User is a member of a provider's directory.
type User struct {
	ID       string
	Name     string
	Presence Presence
}
