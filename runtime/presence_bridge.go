package runtime

import (
	"chathub/contract"
	"chathub/domain"
	"chathub/session"
	"context"
	"log/slog"
	"sync"
)

// PresenceBridge reflects one chat provider's availability into a
// presence-only service, matching identities by display name. At most
// one exists; it binds to the first enabled non-presence provider in
// registration order and stays bound (single-source, no merging).
type PresenceBridge struct {
	mu          sync.Mutex
	log         *slog.Logger
	initialized bool
	primary     *session.Session
	receiver    contract.PresenceReceiver
}

func NewPresenceBridge(log *slog.Logger) *PresenceBridge {
	return &PresenceBridge{log: log}
}

// Activate binds the bridge when both sides exist: a backend exposing
// the PresenceReceiver capability and at least one chat provider.
// Re-activation after a successful bind is a no-op.
func (b *PresenceBridge) Activate(ctx context.Context, sessions []*session.Session) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.initialized {
		return nil
	}

	var primary *session.Session
	var receiver contract.PresenceReceiver
	for _, s := range sessions {
		if s.Provider().PresenceOnly() {
			if r, ok := s.Backend().(contract.PresenceReceiver); ok && receiver == nil {
				receiver = r
			}
			continue
		}
		if primary == nil {
			primary = s
		}
	}
	if primary == nil || receiver == nil {
		return nil
	}

	// Announce who we are, then push the full snapshot once. Live
	// updates ride the primary provider's presence events afterwards.
	if err := receiver.AnnounceSelf(ctx, primary.CurrentUser()); err != nil {
		return err
	}
	for _, u := range primary.Users() {
		if u.Presence == "" || u.Presence == domain.PresenceUnknown {
			continue
		}
		if err := receiver.SyncPresence(ctx, u.Name, u.Presence); err != nil {
			b.log.Warn("Presence snapshot push failed", "user", u.Name, "error", err)
		}
	}

	b.primary = primary
	b.receiver = receiver
	b.initialized = true
	b.log.Info("Presence bridge bound", "primary", primary.Provider())
	return nil
}

// HandlePresence forwards a live presence change from the bound primary
// provider. Events from any other provider are ignored.
func (b *PresenceBridge) HandlePresence(ctx context.Context, e domain.PresenceEvent) {
	b.mu.Lock()
	primary := b.primary
	receiver := b.receiver
	initialized := b.initialized
	b.mu.Unlock()

	if !initialized || e.Source != primary.Provider() {
		return
	}
	users := primary.Users()
	u, ok := users[e.UserID]
	if !ok {
		return
	}
	if err := receiver.SyncPresence(ctx, u.Name, e.Presence); err != nil {
		b.log.Warn("Presence sync failed", "user", u.Name, "error", err)
	}
}

// Initialized reports whether the bridge is bound.
func (b *PresenceBridge) Initialized() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.initialized
}

// Primary exposes the bound chat session, nil before activation.
func (b *PresenceBridge) Primary() *session.Session {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.primary
}
