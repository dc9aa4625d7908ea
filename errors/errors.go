package errors

import (
	"chathub/domain"
	"fmt"
)

var (
	// ErrUnsupportedProvider signals a caller bug: a provider id outside
	// the closed set was passed where a known one is required.
	ErrUnsupportedProvider = fmt.Errorf("unsupported provider")

	// ErrAuthentication covers invalid or expired credentials detected
	// during validation.
	ErrAuthentication = fmt.Errorf("authentication failed")

	// ErrSessionDestroyed is returned by operations reaching a session
	// that has already been torn down.
	ErrSessionDestroyed = fmt.Errorf("session destroyed")

	// ErrUnsupportedOperation is wrapped by backends that genuinely
	// cannot serve an optional capability (e.g. threads on a
	// presence-only service).
	ErrUnsupportedOperation = fmt.Errorf("operation not supported by backend")
)

// BackendError wraps any failed delegated backend call with the
// provider it belongs to. The cache is left untouched whenever one of
// these is returned.
type BackendError struct {
	Provider domain.ProviderID
	Cause    error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend %s: %v", e.Provider, e.Cause)
}

func (e *BackendError) Unwrap() error { return e.Cause }
