package runtime

import (
	"chathub/domain"
	"chathub/factory"
	"chathub/mocks"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestManager(t *testing.T, script *fakeScript, secrets *fakeSecrets, store *fakeStore, env staticEnv) (*Manager, *fakeView) {
	t.Helper()
	f, err := factory.New(map[domain.ProviderID]factory.Constructor{
		domain.ProviderTeamChat:     script.constructor(domain.ProviderTeamChat),
		domain.ProviderVoiceChat:    script.constructor(domain.ProviderVoiceChat),
		domain.ProviderPairPresence: script.constructor(domain.ProviderPairPresence),
	})
	require.NoError(t, err)
	view := &fakeView{}
	return NewManager(testLogger(), f, secrets, store, view, env), view
}

func defaultScript() *fakeScript {
	team := domain.Team{ID: "T1", Name: "acme"}
	return &fakeScript{
		me: domain.CurrentUser{ID: "U-me", Name: "me", TeamID: team.ID, Teams: []domain.Team{team}},
		users: []domain.User{
			{ID: "U-me", Name: "me", Presence: domain.PresenceActive},
			{ID: "U-ada", Name: "ada", Presence: domain.PresenceAway},
		},
		channels: []domain.Channel{
			{ID: "C1", Name: "general", Kind: domain.ChannelPublic},
			{ID: "C2", Name: "ops", Kind: domain.ChannelPrivate},
		},
	}
}

func TestManager_EnabledProviders_Deduplicates(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()

	// Given teamchat is enabled by a stored credential AND detected in
	// the environment
	secrets := newFakeSecrets(map[domain.ProviderID]string{domain.ProviderTeamChat: "xoxb-1"})
	m, _ := newTestManager(t, defaultScript(), secrets, newFakeStore(), staticEnv{domain.ProviderTeamChat})

	// When the enabled set is computed
	enabled := m.EnabledProviders(ctx)

	// Then the provider appears exactly once
	req.Equal([]domain.ProviderID{domain.ProviderTeamChat}, enabled)
}

func TestManager_InitializeToken_CreatesSessionOnce(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()

	secrets := newFakeSecrets(map[domain.ProviderID]string{domain.ProviderTeamChat: "xoxb-1"})
	script := defaultScript()
	m, _ := newTestManager(t, script, secrets, newFakeStore(), nil)

	// When tokens are initialized twice with the same stored credential
	req.NoError(m.InitializeToken(ctx, nil))
	first, ok := m.Session(domain.ProviderTeamChat)
	req.True(ok)
	req.NoError(m.InitializeToken(ctx, nil))

	// Then the live session is never replaced
	second, ok := m.Session(domain.ProviderTeamChat)
	req.True(ok)
	req.Same(first, second)
	req.True(m.IsTokenInitialized())

	// And only the validation probe plus the registered backend were
	// ever constructed for that provider
	req.Len(script.created, 2)
	req.Equal(1, script.created[0].destroyed)
	req.Equal(0, script.created[1].destroyed)
}

func TestManager_InitializeToken_FailureIsolation(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()

	// Given teamchat's credential no longer validates
	badScript := defaultScript()
	badScript.failToken = fmt.Errorf("token revoked")
	goodScript := defaultScript()

	f, err := factory.New(map[domain.ProviderID]factory.Constructor{
		domain.ProviderTeamChat:  badScript.constructor(domain.ProviderTeamChat),
		domain.ProviderVoiceChat: goodScript.constructor(domain.ProviderVoiceChat),
	})
	req.NoError(err)
	secrets := newFakeSecrets(map[domain.ProviderID]string{
		domain.ProviderTeamChat:  "expired",
		domain.ProviderVoiceChat: "valid",
	})
	m := NewManager(testLogger(), f, secrets, newFakeStore(), &fakeView{}, staticEnv(nil))

	// When tokens are initialized
	req.NoError(m.InitializeToken(ctx, nil))

	// Then the failing provider holds no session and the other one does
	_, ok := m.Session(domain.ProviderTeamChat)
	req.False(ok)
	_, ok = m.Session(domain.ProviderVoiceChat)
	req.True(ok)
}

func TestManager_Dispatch_GhostProviderIsSilent(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()

	m, _ := newTestManager(t, defaultScript(), newFakeSecrets(nil), newFakeStore(), nil)

	// When dispatching to a provider with no registered session
	handled, err := m.SendMessage(ctx, domain.ProviderTeamChat, "hello", "C1", "")

	// Then it is a silent no-op with an absent result, never an error
	req.False(handled)
	req.NoError(err)

	_, ok := m.GetChannel(domain.ProviderTeamChat, "C1")
	req.False(ok)
	req.Zero(m.UnreadCount(domain.ProviderTeamChat, "C1"))
	req.Nil(m.GetChannelLabels(&[]domain.ProviderID{domain.ProviderVoiceChat}[0]))
}

func TestManager_SignOut_FiresResetOnce(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()

	secrets := newFakeSecrets(map[domain.ProviderID]string{
		domain.ProviderTeamChat:  "t1",
		domain.ProviderVoiceChat: "t2",
	})
	m, _ := newTestManager(t, defaultScript(), secrets, newFakeStore(), staticEnv{domain.ProviderPairPresence})
	resets := 0
	m.OnReset(func(newProvider *domain.ProviderID) { resets++ })
	req.NoError(m.InitializeToken(ctx, nil))

	// When signing out with two credentialed providers
	req.NoError(m.SignOut(ctx))

	// Then both credentials are gone and the reset fired exactly once
	req.Equal(1, resets)
	cred, err := secrets.Token(ctx, domain.ProviderTeamChat)
	req.NoError(err)
	req.Nil(cred)

	// And a second sign-out clears nothing, so no reset fires
	req.NoError(m.SignOut(ctx))
	req.Equal(1, resets)
}

func TestManager_ClearAll_SparesPresenceSession(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()

	secrets := newFakeSecrets(map[domain.ProviderID]string{domain.ProviderTeamChat: "t1"})
	store := newFakeStore()
	script := defaultScript()
	m, _ := newTestManager(t, script, secrets, store, staticEnv{domain.ProviderPairPresence})
	req.NoError(m.InitializeToken(ctx, nil))

	presence, ok := m.Session(domain.ProviderPairPresence)
	req.True(ok)

	// When everything is cleared
	req.NoError(m.ClearAll(ctx))

	// Then the chat session is destroyed and removed
	_, ok = m.Session(domain.ProviderTeamChat)
	req.False(ok)

	// And the presence session survives untouched in memory
	kept, ok := m.Session(domain.ProviderPairPresence)
	req.True(ok)
	req.Same(presence, kept)
	req.False(kept.Destroyed())

	// And only its persisted copy was dropped, and the flag reset
	req.Equal([]domain.ProviderID{domain.ProviderPairPresence}, store.providersCleared)
	req.False(m.IsTokenInitialized())
}

func TestManager_ClearOldWorkspace_IsolatesProviders(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()

	secrets := newFakeSecrets(map[domain.ProviderID]string{
		domain.ProviderTeamChat:  "t1",
		domain.ProviderVoiceChat: "t2",
	})
	store := newFakeStore()
	m, _ := newTestManager(t, defaultScript(), secrets, store, nil)
	req.NoError(m.InitializeToken(ctx, nil))
	m.InitializeUsersStateForAll(ctx)
	m.InitializeChannelsStateForAll(ctx)
	m.SetLastChannel(domain.ProviderTeamChat, "C1")

	// When one provider's workspace is cleared
	req.NoError(m.ClearOldWorkspace(domain.ProviderTeamChat))

	// Then its caches are empty and its last channel unset
	teamchat, _ := m.Session(domain.ProviderTeamChat)
	req.Empty(teamchat.Users())
	req.Empty(teamchat.Channels())
	req.Empty(teamchat.LastChannel())

	// But the session itself survives
	req.False(teamchat.Destroyed())

	// And the other provider's caches are untouched
	voicechat, _ := m.Session(domain.ProviderVoiceChat)
	req.Len(voicechat.Users(), 2)
	req.Len(voicechat.Channels(), 2)
	req.Equal([]domain.ProviderID{domain.ProviderTeamChat}, store.workspacesCleared)
}

func TestManager_GetChannelLabels(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()

	secrets := newFakeSecrets(map[domain.ProviderID]string{
		domain.ProviderTeamChat:  "t1",
		domain.ProviderVoiceChat: "t2",
	})
	m, _ := newTestManager(t, defaultScript(), secrets, newFakeStore(), nil)
	req.NoError(m.InitializeToken(ctx, nil))
	m.InitializeChannelsStateForAll(ctx)

	t.Run("aggregates across sessions in registration order", func(t *testing.T) {
		labels := m.GetChannelLabels(nil)
		require.Equal(t, []string{"#general", "ops (private)", "#general", "ops (private)"}, labels)
	})

	t.Run("filters to one provider when given", func(t *testing.T) {
		p := domain.ProviderTeamChat
		labels := m.GetChannelLabels(&p)
		require.Equal(t, []string{"#general", "ops (private)"}, labels)
	})
}

func TestManager_UpdateChannelMarked_BackendCountWins(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()

	secrets := newFakeSecrets(map[domain.ProviderID]string{domain.ProviderTeamChat: "t1"})
	m, _ := newTestManager(t, defaultScript(), secrets, newFakeStore(), nil)
	req.NoError(m.InitializeToken(ctx, nil))

	// Given a locally observed unread count
	req.True(m.UpdateChannelMarked(domain.ProviderTeamChat, "C1", "T1", 3))
	req.Equal(3, m.UnreadCount(domain.ProviderTeamChat, "C1"))

	// When the backend confirms the channel as fully read
	req.True(m.UpdateChannelMarked(domain.ProviderTeamChat, "C1", "T2", 0))

	// Then the confirmed count overwrites the cached one
	req.Zero(m.UnreadCount(domain.ProviderTeamChat, "C1"))
}

func TestManager_UpdateAllUI(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	secrets := newFakeSecrets(map[domain.ProviderID]string{
		domain.ProviderTeamChat:  "t1",
		domain.ProviderVoiceChat: "t2",
	})
	script := defaultScript()
	f, err := factory.New(map[domain.ProviderID]factory.Constructor{
		domain.ProviderTeamChat:  script.constructor(domain.ProviderTeamChat),
		domain.ProviderVoiceChat: script.constructor(domain.ProviderVoiceChat),
	})
	req.NoError(err)

	view := mocks.NewMockViewSync(ctrl)
	m := NewManager(testLogger(), f, secrets, newFakeStore(), view, staticEnv(nil))

	// One status/tree push per session at activation, one more during
	// the explicit UpdateAllUI below. The webview fires only for the
	// provider remembering a last-viewed channel, and only once.
	view.EXPECT().Initialize(gomock.Any(), gomock.Any()).Times(1)
	view.EXPECT().UpdateStatusItem(domain.ProviderTeamChat, gomock.Any()).Times(2)
	view.EXPECT().UpdateStatusItem(domain.ProviderVoiceChat, gomock.Any()).Times(2)
	view.EXPECT().UpdateTreeViews(domain.ProviderTeamChat).Times(2)
	view.EXPECT().UpdateTreeViews(domain.ProviderVoiceChat).Times(2)
	view.EXPECT().UpdateWebview(gomock.Any(), domain.ProviderTeamChat, gomock.Any(), gomock.Any(), gomock.Any()).Times(1)

	req.NoError(m.InitializeToken(ctx, nil))
	m.InitializeChannelsStateForAll(ctx)

	// Given only teamchat remembers a last-viewed channel
	m.SetLastChannel(domain.ProviderTeamChat, "C1")

	m.UpdateAllUI(ctx)
}

func TestManager_MessageEventRefreshesWebview(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()

	secrets := newFakeSecrets(map[domain.ProviderID]string{domain.ProviderTeamChat: "t1"})
	m, view := newTestManager(t, defaultScript(), secrets, newFakeStore(), nil)
	req.NoError(m.InitializeToken(ctx, nil))
	m.InitializeChannelsStateForAll(ctx)
	m.SetLastChannel(domain.ProviderTeamChat, "C1")
	before := len(view.webviews)

	// When a message is sent and the backend echoes it back
	handled, err := m.SendMessage(ctx, domain.ProviderTeamChat, "hello", "C1", "")
	req.True(handled)
	req.NoError(err)

	// Then the confirmed copy landed in the cache through the event path
	teamchat, _ := m.Session(domain.ProviderTeamChat)
	messages := teamchat.Messages("C1")
	req.Len(messages, 1)

	// And the selected channel's webview was recomputed
	req.Greater(len(view.webviews), before)
}
