package runtime

import (
	"chathub/contract"
	"chathub/domain"
	"chathub/factory"
	"context"
	"fmt"
	"log/slog"
	"sync"
)

func testLogger() *slog.Logger {
	return slog.Default()
}

// fakeBackend is a scriptable ChatBackend. Each constructor call builds
// a fresh instance so the factory's transient validation probe never
// shares state with the registered backend.
type fakeBackend struct {
	mu        sync.Mutex
	provider  domain.ProviderID
	sink      contract.EventSink
	me        domain.CurrentUser
	users     []domain.User
	channels  []domain.Channel
	failToken error
	failUsers error
	destroyed int
}

type fakeScript struct {
	me        domain.CurrentUser
	users     []domain.User
	channels  []domain.Channel
	failToken error
	failUsers error

	mu      sync.Mutex
	created []*fakeBackend
}

func (s *fakeScript) constructor(p domain.ProviderID) factory.Constructor {
	return func(cred domain.Credential, sink contract.EventSink) contract.ChatBackend {
		b := &fakeBackend{
			provider:  p,
			sink:      sink,
			me:        s.me,
			users:     s.users,
			channels:  s.channels,
			failToken: s.failToken,
			failUsers: s.failUsers,
		}
		s.mu.Lock()
		s.created = append(s.created, b)
		s.mu.Unlock()
		return b
	}
}

func (b *fakeBackend) ValidateToken(ctx context.Context) (domain.CurrentUser, error) {
	if b.failToken != nil {
		return domain.CurrentUser{}, b.failToken
	}
	return b.me, nil
}

func (b *fakeBackend) FetchUsers(ctx context.Context) ([]domain.User, error) {
	if b.failUsers != nil {
		return nil, b.failUsers
	}
	return b.users, nil
}

func (b *fakeBackend) FetchChannels(ctx context.Context) ([]domain.Channel, error) {
	return b.channels, nil
}

func (b *fakeBackend) SendMessage(ctx context.Context, text, channelID, parentTS string) error {
	return b.sink.Consume(ctx, domain.MessageEvent{
		Source:    b.provider,
		ChannelID: channelID,
		Message:   domain.Message{Timestamp: fmt.Sprintf("%d", len(text)), UserID: b.me.ID, Text: text},
	})
}

func (b *fakeBackend) LoadChannelHistory(ctx context.Context, channelID string) error { return nil }
func (b *fakeBackend) FetchThreadReplies(ctx context.Context, channelID, parentTS string) error {
	return nil
}
func (b *fakeBackend) SubscribeForPresence(ctx context.Context) error { return nil }
func (b *fakeBackend) GetUserPresence(ctx context.Context, userID string) (domain.Presence, error) {
	return domain.PresenceUnknown, nil
}
func (b *fakeBackend) UpdateSelfPresence(ctx context.Context, presence domain.Presence, durationMinutes int) error {
	return nil
}
func (b *fakeBackend) AddReaction(ctx context.Context, channelID, timestamp, name string) error {
	return nil
}
func (b *fakeBackend) RemoveReaction(ctx context.Context, channelID, timestamp, name string) error {
	return nil
}
func (b *fakeBackend) CreateIMChannel(ctx context.Context, user domain.User) (*domain.Channel, error) {
	return nil, nil
}

func (b *fakeBackend) Destroy() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.destroyed++
	return nil
}

// fakeSecrets is an in-memory SecretStore.
type fakeSecrets struct {
	mu     sync.Mutex
	tokens map[domain.ProviderID]string
}

func newFakeSecrets(tokens map[domain.ProviderID]string) *fakeSecrets {
	if tokens == nil {
		tokens = make(map[domain.ProviderID]string)
	}
	return &fakeSecrets{tokens: tokens}
}

func (s *fakeSecrets) Token(ctx context.Context, p domain.ProviderID) (*domain.Credential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	token, ok := s.tokens[p]
	if !ok {
		return nil, nil
	}
	return &domain.Credential{Provider: p, Token: token}, nil
}

func (s *fakeSecrets) StoreToken(ctx context.Context, cred domain.Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[cred.Provider] = cred.Token
	return nil
}

func (s *fakeSecrets) ClearToken(ctx context.Context, p domain.ProviderID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, p)
	return nil
}

// fakeStore is an in-memory StateStore recording clear calls.
type fakeStore struct {
	mu                sync.Mutex
	identities        map[domain.ProviderID]domain.CurrentUser
	users             map[domain.ProviderID][]domain.User
	channels          map[domain.ProviderID][]domain.Channel
	lastChannels      map[domain.ProviderID]string
	readMarkers       map[string]string
	workspacesCleared []domain.ProviderID
	providersCleared  []domain.ProviderID
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		identities:   make(map[domain.ProviderID]domain.CurrentUser),
		users:        make(map[domain.ProviderID][]domain.User),
		channels:     make(map[domain.ProviderID][]domain.Channel),
		lastChannels: make(map[domain.ProviderID]string),
		readMarkers:  make(map[string]string),
	}
}

func (s *fakeStore) SaveCurrentUser(p domain.ProviderID, user domain.CurrentUser) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identities[p] = user
	return nil
}

func (s *fakeStore) CurrentUser(p domain.ProviderID) (*domain.CurrentUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.identities[p]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (s *fakeStore) SaveUsers(p domain.ProviderID, users []domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[p] = users
	return nil
}

func (s *fakeStore) Users(p domain.ProviderID) ([]domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.users[p], nil
}

func (s *fakeStore) SaveChannels(p domain.ProviderID, channels []domain.Channel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.channels[p] = channels
	return nil
}

func (s *fakeStore) Channels(p domain.ProviderID) ([]domain.Channel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.channels[p], nil
}

func (s *fakeStore) SaveLastChannel(p domain.ProviderID, channelID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastChannels[p] = channelID
	return nil
}

func (s *fakeStore) LastChannel(p domain.ProviderID) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastChannels[p], nil
}

func (s *fakeStore) SaveReadMarker(p domain.ProviderID, channelID, readTS string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.readMarkers[string(p)+":"+channelID] = readTS
	return nil
}

func (s *fakeStore) ClearWorkspace(p domain.ProviderID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, p)
	delete(s.channels, p)
	delete(s.lastChannels, p)
	s.workspacesCleared = append(s.workspacesCleared, p)
	return nil
}

func (s *fakeStore) ClearProvider(p domain.ProviderID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.identities, p)
	delete(s.users, p)
	delete(s.channels, p)
	delete(s.lastChannels, p)
	s.providersCleared = append(s.providersCleared, p)
	return nil
}

// fakeView counts pushes without rendering anything.
type fakeView struct {
	mu           sync.Mutex
	initialized  int
	webviews     []domain.ProviderID
	statusItems  []domain.ProviderID
	treeRefreshs []domain.ProviderID
}

func (v *fakeView) Initialize(providers []domain.ProviderID, teams map[domain.ProviderID][]domain.Team) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.initialized++
}

func (v *fakeView) UpdateWebview(currentUser domain.CurrentUser, p domain.ProviderID,
	users map[string]domain.User, channel domain.Channel, messages domain.ChannelMessages) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.webviews = append(v.webviews, p)
}

func (v *fakeView) UpdateStatusItem(p domain.ProviderID, team domain.Team) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.statusItems = append(v.statusItems, p)
}

func (v *fakeView) UpdateTreeViews(p domain.ProviderID) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.treeRefreshs = append(v.treeRefreshs, p)
}

// staticEnv implements contract.EnvironmentDetector.
type staticEnv []domain.ProviderID

func (e staticEnv) DetectProviders() []domain.ProviderID { return e }
