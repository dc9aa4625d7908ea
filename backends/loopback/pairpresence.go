package loopback

import (
	"chathub/contract"
	"chathub/domain"
	"chathub/errors"
	"context"
	"sync"
)

// PairPresenceBackend is the presence-only flavour: no channels, no
// messages, just a contact list the bridge pushes availability into.
// It implements contract.PresenceReceiver on top of ChatBackend.
type PairPresenceBackend struct {
	mu       sync.Mutex
	sink     contract.EventSink
	self     *domain.CurrentUser
	contacts map[string]domain.Presence // display name -> reflected presence
	closed   bool
}

// NewPairPresence builds the pairing-presence adapter. It authenticates
// from the environment, so the (empty) credential is accepted as-is.
func NewPairPresence(cred domain.Credential, sink contract.EventSink) contract.ChatBackend {
	return &PairPresenceBackend{
		sink:     sink,
		contacts: make(map[string]domain.Presence),
	}
}

func (b *PairPresenceBackend) ValidateToken(ctx context.Context) (domain.CurrentUser, error) {
	return domain.CurrentUser{ID: "pair-local", Name: "me"}, nil
}

// FetchUsers exposes the reflected contact list.
func (b *PairPresenceBackend) FetchUsers(ctx context.Context) ([]domain.User, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil, errors.ErrSessionDestroyed
	}
	users := make([]domain.User, 0, len(b.contacts))
	for name, presence := range b.contacts {
		users = append(users, domain.User{ID: name, Name: name, Presence: presence})
	}
	return users, nil
}

func (b *PairPresenceBackend) FetchChannels(ctx context.Context) ([]domain.Channel, error) {
	return nil, nil
}

func (b *PairPresenceBackend) SendMessage(ctx context.Context, text, channelID, parentTS string) error {
	return errors.ErrUnsupportedOperation
}

func (b *PairPresenceBackend) LoadChannelHistory(ctx context.Context, channelID string) error {
	return errors.ErrUnsupportedOperation
}

func (b *PairPresenceBackend) FetchThreadReplies(ctx context.Context, channelID, parentTS string) error {
	return errors.ErrUnsupportedOperation
}

func (b *PairPresenceBackend) SubscribeForPresence(ctx context.Context) error {
	return errors.ErrUnsupportedOperation
}

func (b *PairPresenceBackend) GetUserPresence(ctx context.Context, userID string) (domain.Presence, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if presence, ok := b.contacts[userID]; ok {
		return presence, nil
	}
	return domain.PresenceUnknown, nil
}

func (b *PairPresenceBackend) UpdateSelfPresence(ctx context.Context, presence domain.Presence, durationMinutes int) error {
	return nil
}

func (b *PairPresenceBackend) AddReaction(ctx context.Context, channelID, timestamp, name string) error {
	return errors.ErrUnsupportedOperation
}

func (b *PairPresenceBackend) RemoveReaction(ctx context.Context, channelID, timestamp, name string) error {
	return errors.ErrUnsupportedOperation
}

func (b *PairPresenceBackend) CreateIMChannel(ctx context.Context, user domain.User) (*domain.Channel, error) {
	return nil, nil
}

func (b *PairPresenceBackend) Destroy() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	return nil
}

// AnnounceSelf records the bridged identity.
func (b *PairPresenceBackend) AnnounceSelf(ctx context.Context, user domain.CurrentUser) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return errors.ErrSessionDestroyed
	}
	b.self = &user
	return nil
}

// SyncPresence reflects one matched contact's availability.
func (b *PairPresenceBackend) SyncPresence(ctx context.Context, displayName string, presence domain.Presence) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return errors.ErrSessionDestroyed
	}
	b.contacts[displayName] = presence
	return nil
}

// Self returns the announced identity, nil before the bridge binds.
func (b *PairPresenceBackend) Self() *domain.CurrentUser {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.self
}

// Contacts snapshots the reflected presence map.
func (b *PairPresenceBackend) Contacts() map[string]domain.Presence {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make(map[string]domain.Presence, len(b.contacts))
	for name, presence := range b.contacts {
		out[name] = presence
	}
	return out
}
