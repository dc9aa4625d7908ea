//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"chathub/domain"
	"context"
)

// ChatBackend is the capability set every provider adapter implements.
// All results confirmed by the remote service come back through the
// EventSink handed to the adapter at construction time, never by the
// session guessing ahead.
type ChatBackend interface {
	ValidateToken(ctx context.Context) (domain.CurrentUser, error)
	FetchUsers(ctx context.Context) ([]domain.User, error)
	FetchChannels(ctx context.Context) ([]domain.Channel, error)
	SendMessage(ctx context.Context, text, channelID, parentTS string) error
	LoadChannelHistory(ctx context.Context, channelID string) error
	FetchThreadReplies(ctx context.Context, channelID, parentTS string) error
	SubscribeForPresence(ctx context.Context) error
	GetUserPresence(ctx context.Context, userID string) (domain.Presence, error)
	UpdateSelfPresence(ctx context.Context, presence domain.Presence, durationMinutes int) error
	AddReaction(ctx context.Context, channelID, timestamp, name string) error
	RemoveReaction(ctx context.Context, channelID, timestamp, name string) error
	CreateIMChannel(ctx context.Context, user domain.User) (*domain.Channel, error)
	Destroy() error
}

// EventSink consumes asynchronous backend events. A session is the sink
// for its own backend.
type EventSink interface {
	Consume(ctx context.Context, e domain.Event) error
}

// SecretStore owns credentials. The aggregation layer reads and clears
// through it, never persisting tokens itself.
type SecretStore interface {
	Token(ctx context.Context, provider domain.ProviderID) (*domain.Credential, error)
	StoreToken(ctx context.Context, cred domain.Credential) error
	ClearToken(ctx context.Context, provider domain.ProviderID) error
}

// StateStore persists per-provider derived state between runs: the
// authenticated identity, directory caches, the last-viewed channel and
// read markers. Backends never read it back.
type StateStore interface {
	SaveCurrentUser(provider domain.ProviderID, user domain.CurrentUser) error
	CurrentUser(provider domain.ProviderID) (*domain.CurrentUser, error)
	SaveUsers(provider domain.ProviderID, users []domain.User) error
	Users(provider domain.ProviderID) ([]domain.User, error)
	SaveChannels(provider domain.ProviderID, channels []domain.Channel) error
	Channels(provider domain.ProviderID) ([]domain.Channel, error)
	SaveLastChannel(provider domain.ProviderID, channelID string) error
	LastChannel(provider domain.ProviderID) (string, error)
	SaveReadMarker(provider domain.ProviderID, channelID, readTS string) error

	// ClearWorkspace resets users, channels and the last-viewed channel
	// for one provider, keeping the identity record. Used when switching
	// teams inside an authenticated provider.
	ClearWorkspace(provider domain.ProviderID) error

	// ClearProvider removes everything persisted for one provider.
	ClearProvider(provider domain.ProviderID) error
}

// ViewSync receives computed UI state. The manager only pushes; it
// never reads view state back.
type ViewSync interface {
	Initialize(providers []domain.ProviderID, teams map[domain.ProviderID][]domain.Team)
	UpdateWebview(currentUser domain.CurrentUser, provider domain.ProviderID,
		users map[string]domain.User, channel domain.Channel, messages domain.ChannelMessages)
	UpdateStatusItem(provider domain.ProviderID, team domain.Team)
	UpdateTreeViews(provider domain.ProviderID)
}

// PresenceReceiver is the optional capability a presence-only backend
// exposes so the bridge can reflect another provider's availability
// into it. Discovered by type assertion on the ChatBackend.
type PresenceReceiver interface {
	AnnounceSelf(ctx context.Context, user domain.CurrentUser) error
	SyncPresence(ctx context.Context, displayName string, presence domain.Presence) error
}

// EnvironmentDetector reports providers enabled by the runtime
// environment rather than stored credentials (e.g. a companion tool
// being installed).
type EnvironmentDetector interface {
	DetectProviders() []domain.ProviderID
}
