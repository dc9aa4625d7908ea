package runtime

import (
	"chathub/session"
	"context"
)

// forEachSession is the sequential fan-out used by every *ForAll
// operation: sessions are processed one at a time in registration
// order, each awaited before the next, and one session's failure is
// logged without stopping the rest.
func (m *Manager) forEachSession(ctx context.Context, op string, fn func(ctx context.Context, s *session.Session) error) {
	for _, s := range m.registered() {
		if err := fn(ctx, s); err != nil {
			m.log.Error("Fan-out step failed", "op", op, "provider", s.Provider(), "error", err)
		}
	}
}

// InitializeUsersStateForAll refreshes every session's user directory.
func (m *Manager) InitializeUsersStateForAll(ctx context.Context) {
	m.forEachSession(ctx, "initializeUsers", func(ctx context.Context, s *session.Session) error {
		return s.InitializeUsers(ctx)
	})
}

// InitializeChannelsStateForAll refreshes every session's channels.
func (m *Manager) InitializeChannelsStateForAll(ctx context.Context) {
	m.forEachSession(ctx, "initializeChannels", func(ctx context.Context, s *session.Session) error {
		return s.InitializeChannels(ctx)
	})
}

// SubscribeForPresenceForAll starts presence pushes everywhere the
// capability exists.
func (m *Manager) SubscribeForPresenceForAll(ctx context.Context) {
	m.forEachSession(ctx, "subscribeForPresence", func(ctx context.Context, s *session.Session) error {
		return s.SubscribeForPresence(ctx)
	})
}
