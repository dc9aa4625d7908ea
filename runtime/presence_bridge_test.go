package runtime

import (
	"chathub/backends/loopback"
	"chathub/domain"
	"chathub/session"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func chatSession(t *testing.T, p domain.ProviderID, script *fakeScript) *session.Session {
	t.Helper()
	s := session.New(testLogger(), p, script.me, newFakeStore())
	s.Attach(script.constructor(p)(domain.Credential{Provider: p, Token: "t"}, s))
	require.NoError(t, s.InitializeUsers(context.Background()))
	return s
}

func presenceSession(t *testing.T) (*session.Session, *loopback.PairPresenceBackend) {
	t.Helper()
	s := session.New(testLogger(), domain.ProviderPairPresence, domain.CurrentUser{ID: "pair-local"}, newFakeStore())
	backend := loopback.NewPairPresence(domain.Credential{Provider: domain.ProviderPairPresence}, s)
	s.Attach(backend)
	return s, backend.(*loopback.PairPresenceBackend)
}

func TestPresenceBridge_BindsFirstChatProvider(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()

	script := defaultScript()
	teamchat := chatSession(t, domain.ProviderTeamChat, script)
	voicechat := chatSession(t, domain.ProviderVoiceChat, script)
	pair, receiver := presenceSession(t)

	bridge := NewPresenceBridge(testLogger())

	// When the bridge activates over all sessions in registration order
	req.NoError(bridge.Activate(ctx, []*session.Session{teamchat, voicechat, pair}))

	// Then it binds to the first non-presence provider, not a merge
	req.True(bridge.Initialized())
	req.Same(teamchat, bridge.Primary())

	// And the local identity plus the full snapshot were pushed once
	req.NotNil(receiver.Self())
	req.Equal(script.me.ID, receiver.Self().ID)
	contacts := receiver.Contacts()
	req.Equal(domain.PresenceActive, contacts["me"])
	req.Equal(domain.PresenceAway, contacts["ada"])
}

func TestPresenceBridge_ReactivationIsNoop(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()

	teamchat := chatSession(t, domain.ProviderTeamChat, defaultScript())
	pair, receiver := presenceSession(t)
	bridge := NewPresenceBridge(testLogger())
	req.NoError(bridge.Activate(ctx, []*session.Session{teamchat, pair}))
	self := receiver.Self()

	// When activation runs again
	req.NoError(bridge.Activate(ctx, nil))

	// Then nothing rebinds
	req.Same(teamchat, bridge.Primary())
	req.Same(self, receiver.Self())
}

func TestPresenceBridge_NotReadyWithoutBothSides(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()

	t.Run("no chat provider", func(t *testing.T) {
		pair, _ := presenceSession(t)
		bridge := NewPresenceBridge(testLogger())
		req.NoError(bridge.Activate(ctx, []*session.Session{pair}))
		req.False(bridge.Initialized())
	})

	t.Run("no presence receiver", func(t *testing.T) {
		teamchat := chatSession(t, domain.ProviderTeamChat, defaultScript())
		bridge := NewPresenceBridge(testLogger())
		req.NoError(bridge.Activate(ctx, []*session.Session{teamchat}))
		req.False(bridge.Initialized())
	})
}

func TestPresenceBridge_LivePresenceFlowsThrough(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()

	teamchat := chatSession(t, domain.ProviderTeamChat, defaultScript())
	pair, receiver := presenceSession(t)
	bridge := NewPresenceBridge(testLogger())
	req.NoError(bridge.Activate(ctx, []*session.Session{teamchat, pair}))

	// When a live presence change arrives from the bound provider
	bridge.HandlePresence(ctx, domain.PresenceEvent{
		Source:   domain.ProviderTeamChat,
		UserID:   "U-ada",
		Presence: domain.PresenceDnd,
	})

	// Then the matched contact is updated by display name
	req.Equal(domain.PresenceDnd, receiver.Contacts()["ada"])

	// And events from an unbound provider are ignored
	bridge.HandlePresence(ctx, domain.PresenceEvent{
		Source:   domain.ProviderVoiceChat,
		UserID:   "U-ada",
		Presence: domain.PresenceOffline,
	})
	req.Equal(domain.PresenceDnd, receiver.Contacts()["ada"])
}
