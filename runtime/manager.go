// Package runtime orchestrates provider sessions: lifecycle, fan-out,
// per-provider dispatch and derived view state. It contains no wire
// protocol and no rendering; backends and views are collaborators.
package runtime

import (
	"chathub/contract"
	"chathub/domain"
	"chathub/factory"
	"chathub/session"
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/samber/lo"
)

// Manager owns the provider -> session registry and is the only
// component allowed to mutate it. Sessions own their caches; the
// manager never reaches into them.
type Manager struct {
	mu      sync.RWMutex
	log     *slog.Logger
	factory *factory.Factory
	secrets contract.SecretStore
	store   contract.StateStore
	view    contract.ViewSync
	env     contract.EnvironmentDetector

	sessions map[domain.ProviderID]*session.Session
	order    []domain.ProviderID

	tokenInitialized bool
	bridge           *PresenceBridge
	onReset          func(newProvider *domain.ProviderID)
}

func NewManager(log *slog.Logger, f *factory.Factory, secrets contract.SecretStore,
	store contract.StateStore, view contract.ViewSync, env contract.EnvironmentDetector) *Manager {
	return &Manager{
		log:      log,
		factory:  f,
		secrets:  secrets,
		store:    store,
		view:     view,
		env:      env,
		sessions: make(map[domain.ProviderID]*session.Session),
		bridge:   NewPresenceBridge(log),
	}
}

// OnReset installs the process-wide reset hook, fired exactly once per
// SignOut that actually cleared a credential.
func (m *Manager) OnReset(fn func(newProvider *domain.ProviderID)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onReset = fn
}

// EnabledProviders is the union of credentialed providers and
// environment-detected providers, each id exactly once, first-seen
// order preserved.
func (m *Manager) EnabledProviders(ctx context.Context) []domain.ProviderID {
	var enabled []domain.ProviderID
	for _, p := range domain.KnownProviders() {
		cred, err := m.secrets.Token(ctx, p)
		if err != nil {
			m.log.Warn("Secret store lookup failed", "provider", p, "error", err)
			continue
		}
		if cred != nil {
			enabled = append(enabled, p)
		}
	}
	enabled = append(enabled, m.env.DetectProviders()...)
	return lo.Uniq(enabled)
}

// IsTokenInitialized reports whether InitializeToken has completed at
// least once since the last ClearAll.
func (m *Manager) IsTokenInitialized() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.tokenInitialized
}

// InitializeToken activates every enabled provider that does not hold a
// session yet. Live sessions are never replaced; a provider failing to
// activate never stops the others. Finishes with a view recomputation.
func (m *Manager) InitializeToken(ctx context.Context, newProvider *domain.ProviderID) error {
	providers := m.EnabledProviders(ctx)
	if newProvider != nil {
		providers = lo.Uniq(append(providers, *newProvider))
	}

	for _, p := range providers {
		if _, ok := m.Session(p); ok {
			continue
		}
		cred, err := m.secrets.Token(ctx, p)
		if err != nil {
			m.log.Error("Skipping provider, secret store failed", "provider", p, "error", err)
			continue
		}
		if cred == nil {
			// Presence-only providers are enabled by the environment and
			// authenticate with an empty credential.
			if !p.PresenceOnly() {
				continue
			}
			cred = &domain.Credential{Provider: p}
		}
		if err := m.activate(ctx, p, *cred); err != nil {
			m.log.Error("Provider activation failed", "provider", p, "error", err)
			continue
		}
	}

	m.mu.Lock()
	m.tokenInitialized = true
	m.mu.Unlock()

	if err := m.bridge.Activate(ctx, m.registered()); err != nil {
		m.log.Warn("Presence bridge activation failed", "error", err)
	}

	m.initializeViews(ctx)
	return nil
}

// activate validates, constructs and registers one session. No session
// is left behind if any step fails.
func (m *Manager) activate(ctx context.Context, p domain.ProviderID, cred domain.Credential) error {
	me, err := m.factory.ValidateCredential(ctx, p, cred)
	if err != nil {
		return err
	}

	s := session.New(m.log, p, me, m.store)
	backend, err := m.factory.Create(p, cred, s)
	if err != nil {
		return err
	}
	s.Attach(backend)
	s.SetNotifier(func(e domain.Event) { m.onBackendEvent(e) })

	if err := s.Restore(); err != nil {
		m.log.Warn("Could not restore persisted caches", "provider", p, "error", err)
	}
	if err := m.store.SaveCurrentUser(p, me); err != nil {
		m.log.Warn("Could not persist identity", "provider", p, "error", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[p]; ok {
		// Lost the race to another activation; the live session wins.
		_ = s.Destroy()
		return nil
	}
	m.sessions[p] = s
	m.order = append(m.order, p)
	m.log.Info("Provider session registered", "provider", p, "user", me.ID)
	return nil
}

// Session resolves one provider's live session.
func (m *Manager) Session(p domain.ProviderID) (*session.Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[p]
	return s, ok
}

// registered snapshots the sessions in registration order.
func (m *Manager) registered() []*session.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*session.Session, 0, len(m.order))
	for _, p := range m.order {
		out = append(out, m.sessions[p])
	}
	return out
}

// SignOut clears stored credentials for every registered provider
// except the presence-only one. The reset notification fires exactly
// once, and only if at least one credential was actually cleared.
func (m *Manager) SignOut(ctx context.Context) error {
	cleared := 0
	for _, s := range m.registered() {
		p := s.Provider()
		if p.PresenceOnly() {
			continue
		}
		cred, err := m.secrets.Token(ctx, p)
		if err != nil {
			m.log.Error("Sign-out token lookup failed", "provider", p, "error", err)
			continue
		}
		if cred == nil {
			continue
		}
		if err := m.secrets.ClearToken(ctx, p); err != nil {
			m.log.Error("Sign-out token clear failed", "provider", p, "error", err)
			continue
		}
		cleared++
	}

	if cleared == 0 {
		return nil
	}

	m.mu.RLock()
	onReset := m.onReset
	m.mu.RUnlock()
	if onReset != nil {
		onReset(nil)
	}
	return nil
}

// ClearAll destroys and removes every non-presence session and resets
// the initialization flag. The presence-only session survives with its
// caches intact; only its persisted copy in the store is dropped.
func (m *Manager) ClearAll(ctx context.Context) error {
	m.mu.Lock()
	var kept []domain.ProviderID
	var doomed []*session.Session
	for _, p := range m.order {
		if p.PresenceOnly() {
			kept = append(kept, p)
			continue
		}
		doomed = append(doomed, m.sessions[p])
		delete(m.sessions, p)
	}
	m.order = kept
	m.tokenInitialized = false
	m.mu.Unlock()

	for _, s := range doomed {
		if err := s.Destroy(); err != nil {
			m.log.Warn("Session teardown failed", "provider", s.Provider(), "error", err)
		}
	}

	if err := m.store.ClearProvider(domain.ProviderPairPresence); err != nil {
		return fmt.Errorf("clearing presence provider state: %w", err)
	}
	return nil
}

// ClearOldWorkspace resets one provider's persisted and cached
// users/channels/last-channel without destroying its session. Used when
// switching teams inside an authenticated provider.
func (m *Manager) ClearOldWorkspace(p domain.ProviderID) error {
	if err := m.store.ClearWorkspace(p); err != nil {
		return err
	}
	if s, ok := m.Session(p); ok {
		s.ClearWorkspaceCaches()
	}
	return nil
}

// GetChannelLabels aggregates channel labels across every session in
// registration order, or returns a single session's labels when a
// provider is given.
func (m *Manager) GetChannelLabels(p *domain.ProviderID) []string {
	if p != nil {
		s, ok := m.Session(*p)
		if !ok {
			return nil
		}
		return s.ChannelLabels()
	}
	var labels []string
	for _, s := range m.registered() {
		labels = append(labels, s.ChannelLabels()...)
	}
	return labels
}

// onBackendEvent is the session notifier: any asynchronous event
// refreshes that provider's derived view state.
func (m *Manager) onBackendEvent(e domain.Event) {
	ctx := context.Background()
	p := e.Provider()

	if pe, ok := e.(domain.PresenceEvent); ok {
		m.bridge.HandlePresence(ctx, pe)
	}

	s, ok := m.Session(p)
	if !ok {
		return
	}
	m.pushSessionViews(s)

	if me, ok := e.(domain.MessageEvent); ok && me.ChannelID == s.LastChannel() {
		m.pushWebview(s, me.ChannelID)
	}
}

// UpdateAllUI recomputes derived view state for every session: the
// webview only when a last-viewed channel is remembered, status bar and
// tree views always.
func (m *Manager) UpdateAllUI(ctx context.Context) {
	for _, s := range m.registered() {
		if last := s.LastChannel(); last != "" {
			m.pushWebview(s, last)
		}
		m.pushSessionViews(s)
	}
}

func (m *Manager) pushWebview(s *session.Session, channelID string) {
	channel, ok := s.Channel(channelID)
	if !ok {
		return
	}
	m.view.UpdateWebview(s.CurrentUser(), s.Provider(), s.Users(), channel, s.Messages(channelID))
}

func (m *Manager) pushSessionViews(s *session.Session) {
	team, _ := s.Team()
	m.view.UpdateStatusItem(s.Provider(), team)
	m.view.UpdateTreeViews(s.Provider())
}

// initializeViews announces the enabled provider set and their teams to
// the view layer, then refreshes everything.
func (m *Manager) initializeViews(ctx context.Context) {
	teams := make(map[domain.ProviderID][]domain.Team)
	var providers []domain.ProviderID
	for _, s := range m.registered() {
		providers = append(providers, s.Provider())
		teams[s.Provider()] = s.CurrentUser().Teams
	}
	m.view.Initialize(providers, teams)
	m.UpdateAllUI(ctx)
}
