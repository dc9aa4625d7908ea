// Package loopback ships in-process backend adapters so the hub runs
// end-to-end without a real chat service: sent messages echo back
// through the event path the way a live backend would confirm them.
// Useful for demos and local development; tests mostly script their own
// fakes instead.
package loopback

import (
	"chathub/contract"
	"chathub/domain"
	"chathub/errors"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Backend is a deterministic in-memory ChatBackend. One instance per
// credential; all confirmations are delivered through the sink.
type Backend struct {
	mu              sync.Mutex
	provider        domain.ProviderID
	cred            domain.Credential
	sink            contract.EventSink
	presenceCapable bool

	me       domain.CurrentUser
	users    []domain.User
	channels []domain.Channel
	history  map[string][]domain.Message
	seq      int
	closed   bool
}

// NewTeamChat builds the team-chat flavour: full directory, presence
// capable.
func NewTeamChat(cred domain.Credential, sink contract.EventSink) contract.ChatBackend {
	b := newBackend(domain.ProviderTeamChat, cred, sink)
	b.presenceCapable = true
	return b
}

// NewVoiceChat builds the voice-chat flavour: channels but no presence
// subscription capability.
func NewVoiceChat(cred domain.Credential, sink contract.EventSink) contract.ChatBackend {
	return newBackend(domain.ProviderVoiceChat, cred, sink)
}

func newBackend(p domain.ProviderID, cred domain.Credential, sink contract.EventSink) *Backend {
	team := domain.Team{ID: uuid.NewString(), Name: string(p) + "-workspace"}
	me := domain.CurrentUser{
		ID:     uuid.NewString(),
		Name:   "me",
		TeamID: team.ID,
		Teams:  []domain.Team{team},
	}
	users := []domain.User{
		{ID: me.ID, Name: me.Name, Presence: domain.PresenceActive},
		{ID: uuid.NewString(), Name: "ada", Presence: domain.PresenceActive},
		{ID: uuid.NewString(), Name: "grace", Presence: domain.PresenceAway},
	}
	channels := []domain.Channel{
		{ID: uuid.NewString(), Name: "general", Kind: domain.ChannelPublic},
		{ID: uuid.NewString(), Name: "ops", Kind: domain.ChannelPrivate},
	}
	return &Backend{
		provider: p,
		cred:     cred,
		sink:     sink,
		me:       me,
		users:    users,
		channels: channels,
		history:  make(map[string][]domain.Message),
	}
}

// ValidateToken accepts any non-empty token. Empty tokens fail the way
// an expired credential would.
func (b *Backend) ValidateToken(ctx context.Context) (domain.CurrentUser, error) {
	if b.cred.Token == "" {
		return domain.CurrentUser{}, fmt.Errorf("empty token for %s", b.provider)
	}
	return b.me, nil
}

func (b *Backend) FetchUsers(ctx context.Context) ([]domain.User, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil, errors.ErrSessionDestroyed
	}
	return append([]domain.User(nil), b.users...), nil
}

func (b *Backend) FetchChannels(ctx context.Context) ([]domain.Channel, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil, errors.ErrSessionDestroyed
	}
	return append([]domain.Channel(nil), b.channels...), nil
}

// SendMessage stores the message and echoes the confirmed copy through
// the event path, like a live backend acking over its socket.
func (b *Backend) SendMessage(ctx context.Context, text, channelID, parentTS string) error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return errors.ErrSessionDestroyed
	}
	b.seq++
	message := domain.Message{
		Timestamp: fmt.Sprintf("%d.%06d", time.Now().Unix(), b.seq),
		UserID:    b.me.ID,
		Text:      text,
	}
	b.history[channelID] = append(b.history[channelID], message)
	sink := b.sink
	b.mu.Unlock()

	return sink.Consume(ctx, domain.MessageEvent{
		Source:    b.provider,
		ChannelID: channelID,
		Message:   message,
	})
}

// LoadChannelHistory replays everything stored for the channel through
// the event path.
func (b *Backend) LoadChannelHistory(ctx context.Context, channelID string) error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return errors.ErrSessionDestroyed
	}
	messages := append([]domain.Message(nil), b.history[channelID]...)
	sink := b.sink
	b.mu.Unlock()

	for _, message := range messages {
		if err := sink.Consume(ctx, domain.MessageEvent{
			Source:    b.provider,
			ChannelID: channelID,
			Message:   message,
		}); err != nil {
			return err
		}
	}
	return nil
}

func (b *Backend) FetchThreadReplies(ctx context.Context, channelID, parentTS string) error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return errors.ErrSessionDestroyed
	}
	var replies []domain.Message
	for _, m := range b.history[channelID] {
		if m.Timestamp > parentTS {
			replies = append(replies, m)
		}
	}
	sink := b.sink
	b.mu.Unlock()

	for _, message := range replies {
		if err := sink.Consume(ctx, domain.MessageEvent{
			Source:    b.provider,
			ChannelID: channelID,
			Message:   message,
		}); err != nil {
			return err
		}
	}
	return nil
}

func (b *Backend) SubscribeForPresence(ctx context.Context) error {
	if !b.presenceCapable {
		return errors.ErrUnsupportedOperation
	}
	return nil
}

func (b *Backend) GetUserPresence(ctx context.Context, userID string) (domain.Presence, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, u := range b.users {
		if u.ID == userID {
			return u.Presence, nil
		}
	}
	return domain.PresenceUnknown, nil
}

// UpdateSelfPresence changes our own presence and pushes the change
// back through the event path.
func (b *Backend) UpdateSelfPresence(ctx context.Context, presence domain.Presence, durationMinutes int) error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return errors.ErrSessionDestroyed
	}
	for i, u := range b.users {
		if u.ID == b.me.ID {
			b.users[i].Presence = presence
		}
	}
	sink := b.sink
	me := b.me
	b.mu.Unlock()

	return sink.Consume(ctx, domain.PresenceEvent{
		Source:   b.provider,
		UserID:   me.ID,
		Presence: presence,
	})
}

// AddReaction applies the reaction and confirms it by replaying the
// updated message.
func (b *Backend) AddReaction(ctx context.Context, channelID, timestamp, name string) error {
	return b.mutateReaction(ctx, channelID, timestamp, name, true)
}

func (b *Backend) RemoveReaction(ctx context.Context, channelID, timestamp, name string) error {
	return b.mutateReaction(ctx, channelID, timestamp, name, false)
}

func (b *Backend) mutateReaction(ctx context.Context, channelID, timestamp, name string, add bool) error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return errors.ErrSessionDestroyed
	}
	var updated *domain.Message
	for i, m := range b.history[channelID] {
		if m.Timestamp != timestamp {
			continue
		}
		if add {
			m.Reactions = append(m.Reactions, domain.Reaction{Name: name, UserIDs: []string{b.me.ID}})
		} else {
			var kept []domain.Reaction
			for _, r := range m.Reactions {
				if r.Name != name {
					kept = append(kept, r)
				}
			}
			m.Reactions = kept
		}
		b.history[channelID][i] = m
		updated = &m
		break
	}
	sink := b.sink
	b.mu.Unlock()

	if updated == nil {
		return fmt.Errorf("no message %s in channel %s", timestamp, channelID)
	}
	return sink.Consume(ctx, domain.MessageEvent{
		Source:    b.provider,
		ChannelID: channelID,
		Message:   *updated,
	})
}

func (b *Backend) CreateIMChannel(ctx context.Context, user domain.User) (*domain.Channel, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil, errors.ErrSessionDestroyed
	}
	for _, c := range b.channels {
		if c.Kind == domain.ChannelIM && c.Name == user.Name {
			return &c, nil
		}
	}
	channel := domain.Channel{ID: uuid.NewString(), Name: user.Name, Kind: domain.ChannelIM}
	b.channels = append(b.channels, channel)
	return &channel, nil
}

// Destroy is idempotent; a closed backend rejects every further call.
func (b *Backend) Destroy() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	return nil
}
