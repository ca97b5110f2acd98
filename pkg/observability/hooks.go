// Package observability provides hooks for logging and metrics.
//
// Libraries emit events through package-level hook registries; the binary
// registers concrete implementations at startup. Defaults are no-ops, so
// library code never needs to check for nil.
//
// # Usage
//
// Register hooks at application startup:
//
//	observability.SetSearchHooks(&logHooks{logger: l})
//	observability.SetHTTPHooks(&logHooks{logger: l})
//
// Libraries call hooks to emit events:
//
//	observability.Search().OnSearchStart(ctx, id, query)
//	// ... fetch and parse ...
//	observability.Search().OnSearchComplete(ctx, id, query, len(results), time.Since(start), err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Search Hooks
// =============================================================================

// SearchHooks receives events from the search controller.
type SearchHooks interface {
	// OnSearchStart records a submitted query.
	OnSearchStart(ctx context.Context, id, query string)

	// OnSearchComplete records a search whose result was committed.
	OnSearchComplete(ctx context.Context, id, query string, resultCount int, duration time.Duration, err error)

	// OnSearchStale records a search whose result arrived after a newer query
	// was submitted and was therefore discarded.
	OnSearchStale(ctx context.Context, id, query string)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from HTTP client operations.
type HTTPHooks interface {
	// OnRequest records an outgoing HTTP request.
	OnRequest(ctx context.Context, method, host, path string)

	// OnResponse records an HTTP response.
	OnResponse(ctx context.Context, method, host, path string, statusCode int, duration time.Duration)

	// OnError records an HTTP error (network failure, timeout).
	OnError(ctx context.Context, method, host, path string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopSearchHooks is a no-op implementation of SearchHooks.
type NoopSearchHooks struct{}

func (NoopSearchHooks) OnSearchStart(context.Context, string, string) {}
func (NoopSearchHooks) OnSearchComplete(context.Context, string, string, int, time.Duration, error) {
}
func (NoopSearchHooks) OnSearchStale(context.Context, string, string) {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnError(context.Context, string, string, string, error)                 {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	searchHooks SearchHooks = NoopSearchHooks{}
	httpHooks   HTTPHooks   = NoopHTTPHooks{}
	hooksMu     sync.RWMutex
)

// SetSearchHooks registers custom search hooks.
// This should be called once at application startup before any search runs.
func SetSearchHooks(h SearchHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		searchHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
// This should be called once at application startup before any HTTP operations.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Search returns the registered search hooks.
func Search() SearchHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return searchHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	searchHooks = NoopSearchHooks{}
	httpHooks = NoopHTTPHooks{}
}
