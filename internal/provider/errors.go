package provider

import (
	"errors"
	"fmt"
)

// ErrNoProviderConfigured means neither the structured provider nor the
// scraping proxy has credentials; the request cannot be served at all.
var ErrNoProviderConfigured = errors.New("no job provider configured")

// UpstreamError wraps a failed outbound call to a provider or the proxy.
type UpstreamError struct {
	Provider string
	Status   int
	Err      error
}

func (e *UpstreamError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: upstream status %d", e.Provider, e.Status)
	}
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }
