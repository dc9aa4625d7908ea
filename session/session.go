// Package session wraps one authenticated backend and owns every cache
// derived from it: users, channels, messages, presence and read state.
// Nothing outside the session mutates those caches; nothing inside the
// session touches another provider's state.
package session

import (
	"chathub/contract"
	"chathub/domain"
	"chathub/errors"
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/samber/lo"
)

// Session is the live, credentialed connection for one enabled
// provider. It implements contract.EventSink for its own backend.
type Session struct {
	mu       sync.RWMutex
	log      *slog.Logger
	provider domain.ProviderID
	backend  contract.ChatBackend
	store    contract.StateStore

	currentUser   domain.CurrentUser
	users         map[string]domain.User
	channels      map[string]domain.Channel
	messages      map[string]domain.ChannelMessages
	readMarkers   map[string]string
	unreadCounts  map[string]int
	lastChannelID string

	destroyed bool
	notify    func(e domain.Event)
}

// New creates the session shell. The backend is attached afterwards so
// the factory can hand the session itself to the adapter as its event
// sink.
func New(log *slog.Logger, provider domain.ProviderID, me domain.CurrentUser, store contract.StateStore) *Session {
	return &Session{
		log:          log,
		provider:     provider,
		store:        store,
		currentUser:  me,
		users:        make(map[string]domain.User),
		channels:     make(map[string]domain.Channel),
		messages:     make(map[string]domain.ChannelMessages),
		readMarkers:  make(map[string]string),
		unreadCounts: make(map[string]int),
	}
}

// Attach binds the constructed backend. Called exactly once, before the
// session is registered.
func (s *Session) Attach(backend contract.ChatBackend) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.backend = backend
}

// SetNotifier installs the hook the manager uses to recompute view
// state when an asynchronous event lands.
func (s *Session) SetNotifier(fn func(e domain.Event)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notify = fn
}

// Restore loads previously persisted caches so the UI has something to
// show before the first network round-trip completes.
func (s *Session) Restore() error {
	users, err := s.store.Users(s.provider)
	if err != nil {
		return err
	}
	channels, err := s.store.Channels(s.provider)
	if err != nil {
		return err
	}
	lastChannel, err := s.store.LastChannel(s.provider)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range users {
		s.users[u.ID] = u
	}
	for _, c := range channels {
		s.channels[c.ID] = c
	}
	s.lastChannelID = lastChannel
	return nil
}

func (s *Session) Provider() domain.ProviderID { return s.provider }

// Backend exposes the owned adapter for capability discovery (e.g. the
// presence bridge asserting contract.PresenceReceiver). Callers must
// not drive cache-affecting operations through it directly.
func (s *Session) Backend() contract.ChatBackend {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.backend
}

func (s *Session) CurrentUser() domain.CurrentUser {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentUser
}

// Team resolves the current team id against the identity's known
// teams. The second result is false until a team has been selected.
func (s *Session) Team() (domain.Team, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.currentUser.TeamID == "" {
		return domain.Team{}, false
	}
	for _, t := range s.currentUser.Teams {
		if t.ID == s.currentUser.TeamID {
			return t, true
		}
	}
	return domain.Team{}, false
}

// SelectTeam switches the active team. The id must reference a team the
// identity actually belongs to.
func (s *Session) SelectTeam(teamID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, found := lo.Find(s.currentUser.Teams, func(t domain.Team) bool { return t.ID == teamID })
	if !found {
		return fmt.Errorf("unknown team %q for provider %s", teamID, s.provider)
	}
	s.currentUser.TeamID = teamID
	return s.store.SaveCurrentUser(s.provider, s.currentUser)
}

// InitializeUsers refreshes the user directory from the backend.
// Idempotent: a second call replaces the cache, it never duplicates.
// On failure the cache is left exactly as it was.
func (s *Session) InitializeUsers(ctx context.Context) error {
	users, err := s.backend.FetchUsers(ctx)
	if err != nil {
		return &errors.BackendError{Provider: s.provider, Cause: err}
	}

	s.mu.Lock()
	if s.destroyed {
		s.mu.Unlock()
		return nil
	}
	s.users = make(map[string]domain.User, len(users))
	for _, u := range users {
		s.users[u.ID] = u
	}
	s.mu.Unlock()

	return s.store.SaveUsers(s.provider, users)
}

// InitializeChannels refreshes the channel list from the backend.
func (s *Session) InitializeChannels(ctx context.Context) error {
	channels, err := s.backend.FetchChannels(ctx)
	if err != nil {
		return &errors.BackendError{Provider: s.provider, Cause: err}
	}

	s.mu.Lock()
	if s.destroyed {
		s.mu.Unlock()
		return nil
	}
	s.channels = make(map[string]domain.Channel, len(channels))
	for _, c := range channels {
		s.channels[c.ID] = c
	}
	s.mu.Unlock()

	return s.store.SaveChannels(s.provider, channels)
}

// SubscribeForPresence starts asynchronous presence pushes. Backends
// without the capability make this a no-op.
func (s *Session) SubscribeForPresence(ctx context.Context) error {
	err := s.backend.SubscribeForPresence(ctx)
	if err != nil {
		if stderrors.Is(err, errors.ErrUnsupportedOperation) {
			return nil
		}
		return &errors.BackendError{Provider: s.provider, Cause: err}
	}
	return nil
}

// SendMessage delegates to the backend. The confirmed message arrives
// later through Consume; nothing is inserted speculatively.
func (s *Session) SendMessage(ctx context.Context, text, channelID, parentTS string) error {
	if err := s.backend.SendMessage(ctx, text, channelID, parentTS); err != nil {
		return &errors.BackendError{Provider: s.provider, Cause: err}
	}
	return nil
}

// LoadChannelHistory asks the backend to replay a channel's history.
// Messages land through the event path and merge into the cache there.
func (s *Session) LoadChannelHistory(ctx context.Context, channelID string) error {
	if err := s.backend.LoadChannelHistory(ctx, channelID); err != nil {
		return &errors.BackendError{Provider: s.provider, Cause: err}
	}
	return nil
}

// FetchThreadReplies replays one thread. Same event-path merge as
// LoadChannelHistory.
func (s *Session) FetchThreadReplies(ctx context.Context, channelID, parentTS string) error {
	if err := s.backend.FetchThreadReplies(ctx, channelID, parentTS); err != nil {
		return &errors.BackendError{Provider: s.provider, Cause: err}
	}
	return nil
}

// AddReaction delegates; the cache is updated when the backend confirms
// through the event path, mirroring the message merge policy.
func (s *Session) AddReaction(ctx context.Context, channelID, timestamp, name string) error {
	if err := s.backend.AddReaction(ctx, channelID, timestamp, name); err != nil {
		return &errors.BackendError{Provider: s.provider, Cause: err}
	}
	return nil
}

func (s *Session) RemoveReaction(ctx context.Context, channelID, timestamp, name string) error {
	if err := s.backend.RemoveReaction(ctx, channelID, timestamp, name); err != nil {
		return &errors.BackendError{Provider: s.provider, Cause: err}
	}
	return nil
}

// CreateIMChannel opens (or finds) a direct conversation with a user
// and caches it.
func (s *Session) CreateIMChannel(ctx context.Context, user domain.User) (*domain.Channel, error) {
	channel, err := s.backend.CreateIMChannel(ctx, user)
	if err != nil {
		return nil, &errors.BackendError{Provider: s.provider, Cause: err}
	}
	if channel == nil {
		return nil, nil
	}

	s.mu.Lock()
	if !s.destroyed {
		s.channels[channel.ID] = *channel
	}
	s.mu.Unlock()
	return channel, nil
}

func (s *Session) GetUserPresence(ctx context.Context, userID string) (domain.Presence, error) {
	presence, err := s.backend.GetUserPresence(ctx, userID)
	if err != nil {
		return domain.PresenceUnknown, &errors.BackendError{Provider: s.provider, Cause: err}
	}
	return presence, nil
}

func (s *Session) UpdateSelfPresence(ctx context.Context, presence domain.Presence, durationMinutes int) error {
	if err := s.backend.UpdateSelfPresence(ctx, presence, durationMinutes); err != nil {
		return &errors.BackendError{Provider: s.provider, Cause: err}
	}
	return nil
}

// UpdateChannelMarked records a backend-confirmed read marker. The
// backend's unread count is authoritative and overwrites any local
// estimate.
func (s *Session) UpdateChannelMarked(channelID, readTS string, unreadCount int) error {
	s.mu.Lock()
	if s.destroyed {
		s.mu.Unlock()
		return nil
	}
	s.readMarkers[channelID] = readTS
	s.unreadCounts[channelID] = unreadCount
	s.mu.Unlock()

	return s.store.SaveReadMarker(s.provider, channelID, readTS)
}

// UnreadCount returns the cached badge count, 0 for channels never
// marked.
func (s *Session) UnreadCount(channelID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.unreadCounts[channelID]
}

func (s *Session) Users() map[string]domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]domain.User, len(s.users))
	for id, u := range s.users {
		out[id] = u
	}
	return out
}

func (s *Session) Channel(channelID string) (domain.Channel, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.channels[channelID]
	return c, ok
}

func (s *Session) Channels() []domain.Channel {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := lo.Values(s.channels)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ChannelLabels renders this session's channels in stable name order.
func (s *Session) ChannelLabels() []string {
	return lo.Map(s.Channels(), func(c domain.Channel, _ int) string { return c.Label() })
}

func (s *Session) Messages(channelID string) domain.ChannelMessages {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(domain.ChannelMessages, len(s.messages[channelID]))
	for ts, m := range s.messages[channelID] {
		out[ts] = m
	}
	return out
}

// LastChannel is the remembered last-viewed channel, empty when none.
func (s *Session) LastChannel() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastChannelID
}

func (s *Session) SetLastChannel(channelID string) error {
	s.mu.Lock()
	if s.destroyed {
		s.mu.Unlock()
		return nil
	}
	s.lastChannelID = channelID
	s.mu.Unlock()

	return s.store.SaveLastChannel(s.provider, channelID)
}

// ClearWorkspaceCaches drops users, channels and the last channel from
// memory. The persisted copy is cleared by the caller through the
// store; the identity and the backend connection survive.
func (s *Session) ClearWorkspaceCaches() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = make(map[string]domain.User)
	s.channels = make(map[string]domain.Channel)
	s.messages = make(map[string]domain.ChannelMessages)
	s.lastChannelID = ""
}

// Consume applies one asynchronous backend event to the caches. Events
// arriving after Destroy are discarded: the result of an in-flight call
// is moot once the session is torn down.
func (s *Session) Consume(ctx context.Context, e domain.Event) error {
	s.mu.Lock()
	if s.destroyed {
		s.mu.Unlock()
		return nil
	}

	switch ev := e.(type) {
	case domain.MessageEvent:
		// Confirmed data overwrites whatever was cached under the same
		// timestamp, including optimistic local edits.
		channel, ok := s.messages[ev.ChannelID]
		if !ok {
			channel = make(domain.ChannelMessages)
			s.messages[ev.ChannelID] = channel
		}
		channel[ev.Message.Timestamp] = ev.Message
	case domain.PresenceEvent:
		if u, ok := s.users[ev.UserID]; ok {
			u.Presence = ev.Presence
			s.users[ev.UserID] = u
		}
	case domain.ChannelMarkedEvent:
		s.readMarkers[ev.ChannelID] = ev.ReadTS
		s.unreadCounts[ev.ChannelID] = ev.UnreadCount
	}
	notify := s.notify
	s.mu.Unlock()

	if notify != nil {
		notify(e)
	}
	return nil
}

// Destroy releases the backend and marks the session torn down. Safe to
// call more than once; the second call does nothing.
func (s *Session) Destroy() error {
	s.mu.Lock()
	if s.destroyed {
		s.mu.Unlock()
		return nil
	}
	s.destroyed = true
	backend := s.backend
	s.mu.Unlock()

	if backend == nil {
		return nil
	}
	if err := backend.Destroy(); err != nil {
		s.log.Warn("Backend teardown reported an error", "provider", s.provider, "error", err)
	}
	return nil
}

// Destroyed reports whether teardown has happened.
func (s *Session) Destroyed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.destroyed
}
