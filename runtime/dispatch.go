package runtime

import (
	"chathub/domain"
	"context"
)

// Per-provider dispatch. A provider with no registered session is an
// expected condition (the UI may still reference a disabled provider),
// so every operation here is a silent no-op returning its absent
// result, never an error.

// SendMessage posts into one provider's channel. ok is false when the
// provider holds no session.
func (m *Manager) SendMessage(ctx context.Context, p domain.ProviderID, text, channelID, parentTS string) (bool, error) {
	s, ok := m.Session(p)
	if !ok {
		return false, nil
	}
	return true, s.SendMessage(ctx, text, channelID, parentTS)
}

// FetchUsers refreshes and returns one provider's user directory.
func (m *Manager) FetchUsers(ctx context.Context, p domain.ProviderID) (map[string]domain.User, bool, error) {
	s, ok := m.Session(p)
	if !ok {
		return nil, false, nil
	}
	if err := s.InitializeUsers(ctx); err != nil {
		return nil, true, err
	}
	return s.Users(), true, nil
}

// FetchChannels refreshes and returns one provider's channel list.
func (m *Manager) FetchChannels(ctx context.Context, p domain.ProviderID) ([]domain.Channel, bool, error) {
	s, ok := m.Session(p)
	if !ok {
		return nil, false, nil
	}
	if err := s.InitializeChannels(ctx); err != nil {
		return nil, true, err
	}
	return s.Channels(), true, nil
}

// GetChannel resolves a cached channel.
func (m *Manager) GetChannel(p domain.ProviderID, channelID string) (domain.Channel, bool) {
	s, ok := m.Session(p)
	if !ok {
		return domain.Channel{}, false
	}
	return s.Channel(channelID)
}

// CreateIMChannel opens a direct conversation. Returns nil without
// error when the provider is not enabled.
func (m *Manager) CreateIMChannel(ctx context.Context, p domain.ProviderID, user domain.User) (*domain.Channel, error) {
	s, ok := m.Session(p)
	if !ok {
		return nil, nil
	}
	return s.CreateIMChannel(ctx, user)
}

func (m *Manager) UpdateSelfPresence(ctx context.Context, p domain.ProviderID, presence domain.Presence, durationMinutes int) (bool, error) {
	s, ok := m.Session(p)
	if !ok {
		return false, nil
	}
	return true, s.UpdateSelfPresence(ctx, presence, durationMinutes)
}

func (m *Manager) GetUserPresence(ctx context.Context, p domain.ProviderID, userID string) (domain.Presence, bool, error) {
	s, ok := m.Session(p)
	if !ok {
		return domain.PresenceUnknown, false, nil
	}
	presence, err := s.GetUserPresence(ctx, userID)
	return presence, true, err
}

func (m *Manager) LoadChannelHistory(ctx context.Context, p domain.ProviderID, channelID string) (bool, error) {
	s, ok := m.Session(p)
	if !ok {
		return false, nil
	}
	return true, s.LoadChannelHistory(ctx, channelID)
}

func (m *Manager) FetchThreadReplies(ctx context.Context, p domain.ProviderID, channelID, parentTS string) (bool, error) {
	s, ok := m.Session(p)
	if !ok {
		return false, nil
	}
	return true, s.FetchThreadReplies(ctx, channelID, parentTS)
}

func (m *Manager) AddReaction(ctx context.Context, p domain.ProviderID, channelID, timestamp, name string) (bool, error) {
	s, ok := m.Session(p)
	if !ok {
		return false, nil
	}
	return true, s.AddReaction(ctx, channelID, timestamp, name)
}

func (m *Manager) RemoveReaction(ctx context.Context, p domain.ProviderID, channelID, timestamp, name string) (bool, error) {
	s, ok := m.Session(p)
	if !ok {
		return false, nil
	}
	return true, s.RemoveReaction(ctx, channelID, timestamp, name)
}

// UpdateChannelMarked records a backend-confirmed read marker. The
// supplied count is authoritative over any local estimate.
func (m *Manager) UpdateChannelMarked(p domain.ProviderID, channelID, readTS string, unreadCount int) bool {
	s, ok := m.Session(p)
	if !ok {
		return false
	}
	if err := s.UpdateChannelMarked(channelID, readTS, unreadCount); err != nil {
		m.log.Warn("Persisting read marker failed", "provider", p, "channel", channelID, "error", err)
	}
	return true
}

// UnreadCount returns the cached badge count, 0 for unknown providers
// or channels never marked.
func (m *Manager) UnreadCount(p domain.ProviderID, channelID string) int {
	s, ok := m.Session(p)
	if !ok {
		return 0
	}
	return s.UnreadCount(channelID)
}

// SetLastChannel remembers the selected channel for one provider.
func (m *Manager) SetLastChannel(p domain.ProviderID, channelID string) bool {
	s, ok := m.Session(p)
	if !ok {
		return false
	}
	if err := s.SetLastChannel(channelID); err != nil {
		m.log.Warn("Persisting last channel failed", "provider", p, "error", err)
	}
	return true
}
