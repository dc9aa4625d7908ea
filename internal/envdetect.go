package internal

import "chathub/domain"

// StaticDetector reports environment-enabled providers from a fixed
// list decided at wiring time (e.g. the pairing companion being
// installed). Implements contract.EnvironmentDetector.
type StaticDetector struct {
	Providers []domain.ProviderID
}

func (d StaticDetector) DetectProviders() []domain.ProviderID {
	return append([]domain.ProviderID(nil), d.Providers...)
}
