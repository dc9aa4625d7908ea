package main

import (
	"chathub/backends/loopback"
	"chathub/domain"
	"chathub/factory"
	"chathub/internal"
	"chathub/repositories"
	"chathub/runtime"
	"chathub/ui"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes to provide meaningful status to the operating system or
// service manager.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// The main function acts as a thin wrapper: call run() and hand the
	// exit code to the OS, so every defer still executes.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Hub terminated with error: %v\n", err)
	}
	os.Exit(code)
}

func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return exitConfig, fmt.Errorf("config validation: %w", err)
	}

	logger := logs.GetLoggerFromString(config.LogLevel)
	ctx := context.Background()

	// 2. Database (BadgerDB)
	options := badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING)
	db, err := badger.Open(options)
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	secrets := repositories.NewSecretRepository(db)
	store := repositories.NewStateRepository(db)

	// Seed demo credentials when provided; a real deployment writes the
	// secret store from its sign-in flow instead.
	if config.TeamChatToken != "" {
		if err := secrets.StoreToken(ctx, domain.Credential{Provider: domain.ProviderTeamChat, Token: config.TeamChatToken}); err != nil {
			return exitRuntime, err
		}
	}
	if config.VoiceChatToken != "" {
		if err := secrets.StoreToken(ctx, domain.Credential{Provider: domain.ProviderVoiceChat, Token: config.VoiceChatToken}); err != nil {
			return exitRuntime, err
		}
	}

	var detected []domain.ProviderID
	if config.PairPresenceAvailable {
		detected = append(detected, domain.ProviderPairPresence)
	}

	// 3. Factory over the closed provider set (loopback adapters here;
	// real adapters register the same way).
	f, err := factory.New(map[domain.ProviderID]factory.Constructor{
		domain.ProviderTeamChat:     loopback.NewTeamChat,
		domain.ProviderVoiceChat:    loopback.NewVoiceChat,
		domain.ProviderPairPresence: loopback.NewPairPresence,
	})
	if err != nil {
		return exitConfig, err
	}

	// 4. Manager wiring
	view := ui.NewConsoleView(os.Stdout)
	manager := runtime.NewManager(logger, f, secrets, store, view, internal.StaticDetector{Providers: detected})
	manager.OnReset(func(newProvider *domain.ProviderID) {
		logger.Info("Reset signal received, host should rebuild the manager", "newProvider", newProvider)
	})

	if err := manager.InitializeToken(ctx, nil); err != nil {
		return exitRuntime, err
	}
	manager.InitializeUsersStateForAll(ctx)
	manager.InitializeChannelsStateForAll(ctx)
	manager.SubscribeForPresenceForAll(ctx)

	logger.Info("Hub initialized",
		"providers", manager.EnabledProviders(ctx),
		"channels", manager.GetChannelLabels(nil))

	demo(ctx, manager)

	// 5. Block until the host asks us to stop.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down, destroying sessions")
	if err := manager.ClearAll(ctx); err != nil {
		return exitRuntime, err
	}
	return exitOK, nil
}

// demo drives one round-trip through the first team-chat channel so a
// fresh checkout shows something on screen.
func demo(ctx context.Context, manager *runtime.Manager) {
	channels, ok, err := manager.FetchChannels(ctx, domain.ProviderTeamChat)
	if err != nil || !ok || len(channels) == 0 {
		return
	}
	target := channels[0]
	if _, err := manager.SendMessage(ctx, domain.ProviderTeamChat, "hello from the hub", target.ID, ""); err != nil {
		return
	}
	manager.SetLastChannel(domain.ProviderTeamChat, target.ID)
	manager.UpdateAllUI(ctx)
}
