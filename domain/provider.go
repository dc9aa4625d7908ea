// Package domain contains core concepts of the aggregation layer.
// This file defines the closed set of supported chat providers.
// No runtime, network, or UI logic should be added here.
package domain

import "fmt"

// ProviderID names one backend kind. It is the unique key into the
// provider registry.
type ProviderID string

const (
	ProviderTeamChat     ProviderID = "teamchat"
	ProviderVoiceChat    ProviderID = "voicechat"
	ProviderPairPresence ProviderID = "pairpresence"
)

// KnownProviders lists every provider the factory can construct,
// in the order the registry iterates them by default.
func KnownProviders() []ProviderID {
	return []ProviderID{ProviderTeamChat, ProviderVoiceChat, ProviderPairPresence}
}

// ParseProviderID rejects tags outside the closed set.
func ParseProviderID(s string) (ProviderID, error) {
	switch ProviderID(s) {
	case ProviderTeamChat, ProviderVoiceChat, ProviderPairPresence:
		return ProviderID(s), nil
	default:
		return "", fmt.Errorf("unknown provider %q", s)
	}
}

// PresenceOnly reports whether the provider is enabled by environment
// detection rather than a stored credential. Such a provider survives
// sign-out and ClearAll.
func (p ProviderID) PresenceOnly() bool {
	return p == ProviderPairPresence
}
