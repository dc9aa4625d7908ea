// Package factory constructs backend adapters for the closed set of
// supported providers. It is stateless: the registry decides when a
// constructed backend becomes a session.
package factory

import (
	"chathub/contract"
	"chathub/domain"
	"chathub/errors"
	"context"
	"fmt"
)

// Constructor builds one backend adapter. The sink receives every
// asynchronous event the adapter produces for its whole lifetime.
type Constructor func(cred domain.Credential, sink contract.EventSink) contract.ChatBackend

type Factory struct {
	constructors map[domain.ProviderID]Constructor
}

// New wires the closed provider set. Registering a tag outside the
// known set is a programming error and fails immediately.
func New(constructors map[domain.ProviderID]Constructor) (*Factory, error) {
	for id := range constructors {
		if _, err := domain.ParseProviderID(string(id)); err != nil {
			return nil, fmt.Errorf("%w: %s", errors.ErrUnsupportedProvider, id)
		}
	}
	return &Factory{constructors: constructors}, nil
}

// Create builds a backend for the given provider. An unknown id is a
// caller bug, not a recoverable condition, and fails loudly.
func (f *Factory) Create(provider domain.ProviderID, cred domain.Credential, sink contract.EventSink) (contract.ChatBackend, error) {
	ctor, ok := f.constructors[provider]
	if !ok {
		return nil, fmt.Errorf("%w: %s", errors.ErrUnsupportedProvider, provider)
	}
	return ctor(cred, sink), nil
}

// ValidateCredential probes a credential without registering anything.
// A transient backend is constructed, asked to confirm the token, and
// torn down again. Registry state is never touched.
func (f *Factory) ValidateCredential(ctx context.Context, provider domain.ProviderID, cred domain.Credential) (domain.CurrentUser, error) {
	backend, err := f.Create(provider, cred, discardSink{})
	if err != nil {
		return domain.CurrentUser{}, err
	}
	defer func() {
		_ = backend.Destroy()
	}()

	me, err := backend.ValidateToken(ctx)
	if err != nil {
		return domain.CurrentUser{}, fmt.Errorf("%w for %s: %v", errors.ErrAuthentication, provider, err)
	}
	return me, nil
}

// discardSink drops events produced by transient probe backends.
type discardSink struct{}

func (discardSink) Consume(ctx context.Context, e domain.Event) error { return nil }
